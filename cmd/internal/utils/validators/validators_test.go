package validators

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	When *string `json:"when" validate:"required,timestamp"`
}

func ptr(s string) *string { return &s }

func newValidate() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func TestTimestampRule(t *testing.T) {
	v := newValidate()

	tests := []struct {
		name  string
		when  *string
		valid bool
	}{
		{"naive", ptr("2025-09-25T10:00:00"), true},
		{"with offset", ptr("2025-09-25T10:00:00-03:00"), true},
		{"date only", ptr("2025-09-25"), true},
		{"garbage", ptr("next tuesday"), false},
		{"empty", ptr(""), false},
		{"missing", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&sample{When: tt.when})
			if tt.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestFieldNamesComeFromJSONTags(t *testing.T) {
	v := newValidate()

	err := v.Struct(&sample{})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if got := verrs[0].Field(); got != "when" {
		t.Errorf("field = %q, want %q", got, "when")
	}
}
