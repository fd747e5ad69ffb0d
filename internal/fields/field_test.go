package fields_test

import (
	"testing"

	"github.com/quillsign/quillsign/internal/fields"
)

func TestType_Valid(t *testing.T) {
	tests := []struct {
		name string
		typ  fields.Type
		want bool
	}{
		{"signature", fields.TypeSignature, true},
		{"initials", fields.TypeInitials, true},
		{"date", fields.TypeDate, true},
		{"text", fields.TypeText, true},
		{"checkbox", fields.TypeCheckbox, true},
		{"unknown", fields.Type("stamp"), false},
		{"empty", fields.Type(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestType_DefaultSize(t *testing.T) {
	tests := []struct {
		name       string
		typ        fields.Type
		wantWidth  float64
		wantHeight float64
	}{
		{"checkbox is square", fields.TypeCheckbox, 30, 30},
		{"signature is wide", fields.TypeSignature, 200, 60},
		{"text uses standard box", fields.TypeText, 200, 35},
		{"date uses standard box", fields.TypeDate, 200, 35},
		{"initials use standard box", fields.TypeInitials, 200, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, height := tt.typ.DefaultSize()
			if width != tt.wantWidth || height != tt.wantHeight {
				t.Errorf("DefaultSize() = (%v, %v), want (%v, %v)",
					width, height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}
