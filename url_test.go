package gridview

import "testing"

func Test_NewURLCreator(t *testing.T) {
	tests := []struct {
		name      string
		baseRoute string
		keyField  string
		button    string
		key       any
		want      string
	}{
		{"key in path by default", "", "", "view", 1, "/view/1"},
		{"base route prefixes", "/admin", "", "update", 2, "/admin/update/2"},
		{"trailing slash trimmed", "/admin/", "", "view", 3, "/admin/view/3"},
		{"custom key field switches to query", "", "user_id", "admin/custom", 1, "/admin/custom?user_id=1"},
		{"query key with base route", "/admin", "user_id", "view", 9, "/admin/view?user_id=9"},
		{"path key escaped", "", "", "view", "a b", "/view/a%20b"},
		{"string key in query escaped", "", "pk", "view", "a&b", "/view?pk=a%26b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := NewURLCreator(tt.baseRoute, tt.keyField)
			if got := create(tt.button, nil, tt.key, 0); got != tt.want {
				t.Errorf("%s: got %q want %q", tt.name, got, tt.want)
			}
		})
	}
}

func Test_NewPageURLCreator(t *testing.T) {
	tests := []struct {
		name  string
		route string
		p     Pagination
		page  int
		want  string
	}{
		{"one-based page parameter", "/items", Pagination{PageSize: 5}, 1, "/items?page=2&per-page=5"},
		{"first page", "/items", Pagination{PageSize: 5}, 0, "/items?page=1&per-page=5"},
		{"default page size", "/items", Pagination{}, 0, "/items?page=1&per-page=20"},
		{"oversized page size clamped", "/items", Pagination{PageSize: MaxPageSize + 1}, 0, "/items?page=1&per-page=100"},
		{"empty route", "", Pagination{PageSize: 10}, 2, "?page=3&per-page=10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := NewPageURLCreator(tt.route, tt.p)
			if got := create(tt.page); got != tt.want {
				t.Errorf("%s: got %q want %q", tt.name, got, tt.want)
			}
		})
	}
}
