package router

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"recipeshare/internal/auth"
	"recipeshare/internal/config"
	apperrors "recipeshare/internal/errors"
	"recipeshare/internal/handler"
	"recipeshare/internal/metrics"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth   *handler.AuthHandler
	Recipe *handler.RecipeHandler
	User   *handler.UserHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
	h Handlers,
) {
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(collector.Middleware())
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:    cfg.StaticDir,
		Index:   "index.html",
		HTML5:   true,
		Skipper: skipFrontend,
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(gatherer)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/recipes", h.Recipe.ListRecipes)
	api.GET("/recipes/:id", h.Recipe.GetRecipe)

	// Secured routes (require a bearer token)
	secured := api.Group("", auth.Middleware(jwtService))
	secured.POST("/recipes", h.Recipe.CreateRecipe)
	secured.DELETE("/recipes/:id", h.Recipe.DeleteRecipe)
	secured.GET("/user/profile", h.User.GetProfile)
}

// skipFrontend keeps API and tooling paths out of the static file fallback.
func skipFrontend(c echo.Context) bool {
	p := c.Request().URL.Path
	for _, prefix := range []string{"/api/", "/swagger/", "/metrics", "/healthz"} {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return p == "/api"
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// ErrorHandler renders every error as {"error": ..., "code": ...}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := apperrors.ErrorResponse{Error: "Server error", Code: "INTERNAL_ERROR"}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch msg := he.Message.(type) {
		case apperrors.ErrorResponse:
			body = msg
		case string:
			body = apperrors.ErrorResponse{Error: msg}
		default:
			body = apperrors.ErrorResponse{Error: http.StatusText(status)}
		}
	} else {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
