package query_test

import (
	"testing"

	"github.com/quillsign/quillsign/pkg/query"
)

func TestProjectionMap_Table(t *testing.T) {
	pm := query.NewProjectionMap("public", "users", "u")

	if got := pm.Table(); got != "public.users u" {
		t.Errorf("Table() = %q, want %q", got, "public.users u")
	}
}

func TestProjectionMap_Column(t *testing.T) {
	pm := query.NewProjectionMap("public", "users", "u").
		Project("created_at", "CreatedAt")

	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"registered field", "CreatedAt", "u.created_at"},
		{"unknown field passes through", "Bogus", "Bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pm.Column(tt.field); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestProjectionMap_Columns_RegistrationOrder(t *testing.T) {
	pm := query.NewProjectionMap("public", "users", "u").
		Project("id", "Id").
		Project("name", "Name").
		Project("email", "Email")

	want := "u.id, u.name, u.email"
	if got := pm.Columns(); got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}
