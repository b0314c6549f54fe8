package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/diarize2kaldi/errors"
)

type inner struct {
	OnInverted string `mapstructure:"on_inverted" validate:"oneof=error drop keep"`
	Suffix     string `mapstructure:"suffix" validate:"len=5"`
}

type outer struct {
	Name    string `mapstructure:"name" validate:"required"`
	Convert inner  `mapstructure:"convert"`
}

func TestValidate_Valid(t *testing.T) {
	cfg := outer{Name: "d2k", Convert: inner{OnInverted: "drop", Suffix: ".json"}}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	cfg := outer{Convert: inner{OnInverted: "clamp", Suffix: ".js"}}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}

	msg := err.Error()
	for _, want := range []string{
		"name: is required",
		"convert.on_inverted: must be one of: error drop keep",
		"convert.suffix: must be exactly 5 characters",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}

	appErr, _ := errors.AsAppError(err)
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected []FieldError details, got %T", appErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("expected 3 field errors, got %d", len(fields))
	}
}

func TestValidate_NotAStruct(t *testing.T) {
	err := Validate("just a string")
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG for non-struct input, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"OnInverted", "on_inverted"},
		{"Suffix", "suffix"},
		{"SPK", "s_p_k"},
	}
	for _, tc := range tests {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
