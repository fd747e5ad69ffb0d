package query_test

import (
	"strings"
	"testing"

	"github.com/quillsign/quillsign/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "users", "u").
		Project("id", "Id").
		Project("name", "Name").
		Project("email", "Email")
}

func newTestBuilder() *query.Builder {
	return query.NewBuilder(newTestProjection(), query.SortField{Field: "Name"})
}

func TestBuilder_BuildCount_NoConditions(t *testing.T) {
	sql, args := newTestBuilder().BuildCount()

	wantSQL := "SELECT COUNT(*) FROM public.users u"
	if sql != wantSQL {
		t.Errorf("BuildCount() sql = %q, want %q", sql, wantSQL)
	}

	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantLimit  string
		wantOffset string
	}{
		{"first page", 1, 20, "LIMIT 20", "OFFSET 0"},
		{"second page", 2, 20, "LIMIT 20", "OFFSET 20"},
		{"third page", 3, 10, "LIMIT 10", "OFFSET 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, _ := newTestBuilder().BuildPage(tt.page, tt.pageSize)

			if !strings.Contains(sql, "SELECT u.id, u.name, u.email FROM public.users u") {
				t.Errorf("BuildPage() missing select clause, got %q", sql)
			}
			if !strings.Contains(sql, "ORDER BY u.name ASC") {
				t.Errorf("BuildPage() missing default order, got %q", sql)
			}
			if !strings.Contains(sql, tt.wantLimit) {
				t.Errorf("BuildPage() missing %q, got %q", tt.wantLimit, sql)
			}
			if !strings.Contains(sql, tt.wantOffset) {
				t.Errorf("BuildPage() missing %q, got %q", tt.wantOffset, sql)
			}
		})
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	sql, args := newTestBuilder().BuildSingle("Id", "abc")

	wantSQL := "SELECT u.id, u.name, u.email FROM public.users u WHERE u.id = $1"
	if sql != wantSQL {
		t.Errorf("BuildSingle() sql = %q, want %q", sql, wantSQL)
	}

	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("BuildSingle() args = %v, want [abc]", args)
	}
}

func TestBuilder_BuildSingle_WithConditions(t *testing.T) {
	status := "active"
	sql, args := newTestBuilder().
		WhereEquals("Email", status).
		BuildSingle("Id", "abc")

	if !strings.Contains(sql, "WHERE u.email = $1 AND u.id = $2") {
		t.Errorf("BuildSingle() conditions not combined, got %q", sql)
	}

	if len(args) != 2 {
		t.Errorf("BuildSingle() args = %v, want 2 values", args)
	}
}

func TestBuilder_WhereContains(t *testing.T) {
	value := "jo"
	sql, args := newTestBuilder().
		WhereContains("Name", &value).
		BuildCount()

	if !strings.Contains(sql, "u.name ILIKE $1") {
		t.Errorf("WhereContains() missing condition, got %q", sql)
	}

	if len(args) != 1 || args[0] != "%jo%" {
		t.Errorf("WhereContains() args = %v, want [%%jo%%]", args)
	}
}

func TestBuilder_WhereContains_NilIgnored(t *testing.T) {
	sql, args := newTestBuilder().
		WhereContains("Name", nil).
		BuildCount()

	if strings.Contains(sql, "WHERE") {
		t.Errorf("WhereContains(nil) added condition, got %q", sql)
	}

	if len(args) != 0 {
		t.Errorf("WhereContains(nil) args = %v, want empty", args)
	}
}

func TestBuilder_WhereSearch(t *testing.T) {
	search := "smith"
	sql, args := newTestBuilder().
		WhereSearch(&search, "Name", "Email").
		BuildCount()

	if !strings.Contains(sql, "(u.name ILIKE $1 OR u.email ILIKE $2)") {
		t.Errorf("WhereSearch() missing grouped condition, got %q", sql)
	}

	if len(args) != 2 {
		t.Errorf("WhereSearch() args = %v, want 2 values", args)
	}
}

func TestBuilder_ParameterNumbering(t *testing.T) {
	name := "jo"
	search := "smith"
	sql, args := newTestBuilder().
		WhereContains("Name", &name).
		WhereSearch(&search, "Name", "Email").
		WhereEquals("Id", 7).
		BuildCount()

	for _, want := range []string{"$1", "$2", "$3", "$4"} {
		if !strings.Contains(sql, want) {
			t.Errorf("BuildCount() missing placeholder %s, got %q", want, sql)
		}
	}

	if len(args) != 4 {
		t.Errorf("BuildCount() args = %v, want 4 values", args)
	}
}

func TestBuilder_OrderByFields(t *testing.T) {
	sql, _ := newTestBuilder().
		OrderByFields([]query.SortField{
			{Field: "Email", Descending: true},
			{Field: "Name"},
		}).
		BuildList()

	if !strings.Contains(sql, "ORDER BY u.email DESC, u.name ASC") {
		t.Errorf("OrderByFields() not applied, got %q", sql)
	}
}
