package gridview

import "testing"

func Test_KeyOf(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		keyField string
		fallback any
		want     any
	}{
		{"field present", Row{"id": 7}, "id", nil, 7},
		{"custom field present", Row{"user_id": 1}, "user_id", nil, 1},
		{"field absent -> fallback", Row{"name": "a"}, "id", 42, 42},
		{"nil row -> fallback", nil, "id", "k1", "k1"},
		{"empty field name -> fallback", Row{"id": 7}, "", 9, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyOf(tt.row, tt.keyField, tt.fallback); got != tt.want {
				t.Errorf("%s: got %v want %v", tt.name, got, tt.want)
			}
		})
	}
}
