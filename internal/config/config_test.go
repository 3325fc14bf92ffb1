package config

import (
	"errors"
	"strings"
	"testing"
)

// TestConfigValidate tests stage configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid config passes", func(t *testing.T) {
		t.Parallel()

		c := NewConfig()
		c.InputPath = "in.csv"
		c.OutputPath = "out.csv"

		if err := c.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		c := NewConfig()
		c.OutputPath = "out.csv"

		if err := c.Validate(); !errors.Is(err, ErrNoInput) {
			t.Errorf("expected ErrNoInput, got %v", err)
		}
	})

	t.Run("missing output", func(t *testing.T) {
		t.Parallel()

		c := NewConfig()
		c.InputPath = "in.csv"

		if err := c.Validate(); !errors.Is(err, ErrNoOutput) {
			t.Errorf("expected ErrNoOutput, got %v", err)
		}
	})

	t.Run("zero delimiter", func(t *testing.T) {
		t.Parallel()

		c := &Config{InputPath: "in.csv", OutputPath: "out.csv"}

		if err := c.Validate(); !errors.Is(err, ErrInvalidDelimiter) {
			t.Errorf("expected ErrInvalidDelimiter, got %v", err)
		}
	})
}

// TestNewConfigDefaults tests constructor defaults.
func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	c := NewConfig()

	if c.Delimiter != ',' {
		t.Errorf("expected comma delimiter, got %q", c.Delimiter)
	}
	if c.SaveHistory {
		t.Error("expected history saving to default off")
	}
	if c.DataDir == "" {
		t.Error("expected data dir to default to the XDG path")
	}
	if !strings.HasSuffix(c.DataDir, AppName) {
		t.Errorf("expected data dir to end with %q, got %q", AppName, c.DataDir)
	}
}

// TestParseDelimiter tests delimiter flag parsing.
func TestParseDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    rune
		wantErr bool
	}{
		{name: "comma", input: ",", want: ','},
		{name: "semicolon", input: ";", want: ';'},
		{name: "tab", input: "\t", want: '\t'},
		{name: "multibyte rune", input: "é", want: 'é'},
		{name: "empty", input: "", wantErr: true},
		{name: "two characters", input: ",,", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDelimiter(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDelimiter) {
					t.Errorf("expected ErrInvalidDelimiter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
