package commands

import (
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestFormatSpecPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"stdin marker", StdinFilePath, "<stdin>"},
		{"regular path", "api.yaml", "api.yaml"},
		{"url", "https://example.com/api.json", "https://example.com/api.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSpecPath(tt.path); got != tt.want {
				t.Errorf("FormatSpecPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"test": "value"}

	t.Run("invalid format", func(t *testing.T) {
		err := OutputStructured(data, "invalid")
		if err == nil {
			t.Error("expected error for invalid format")
		}
	})

	t.Run("text is not structured", func(t *testing.T) {
		err := OutputStructured(data, FormatText)
		if err == nil {
			t.Error("expected error for text format")
		}
	})
}
