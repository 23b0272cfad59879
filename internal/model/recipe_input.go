package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RecipeInput is the body of a recipe submission.
type RecipeInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  TextList `json:"ingredients"`
	Instructions TextList `json:"instructions"`
	Category     string   `json:"category"`
	CookingTime  FlexInt  `json:"cookingTime"`
	Difficulty   string   `json:"difficulty"`
	Image        string   `json:"image"`
}

// TextList accepts either a JSON array of strings or a single string.
// The form-based frontend posts plain text, API clients post arrays.
type TextList struct {
	Items  []string
	Text   string
	IsText bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *TextList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = TextList{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = TextList{Text: s, IsText: true}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*l = TextList{Items: items}
	return nil
}

// Split returns the list items. Free text is split on sep and each entry is
// trimmed; array items are returned as given.
func (l TextList) Split(sep string) []string {
	if !l.IsText {
		return append([]string{}, l.Items...)
	}
	if l.Text == "" {
		return []string{}
	}
	parts := strings.Split(l.Text, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// SplitNonBlank is Split with blank free-text entries dropped.
func (l TextList) SplitNonBlank(sep string) []string {
	parts := l.Split(sep)
	if !l.IsText {
		return parts
	}
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FlexInt accepts a JSON number or a numeric string. Zero means absent.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("cookingTime must be an integer: %w", err)
		}
		*n = FlexInt(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("cookingTime must be an integer: %w", err)
	}
	*n = FlexInt(f)
	return nil
}
