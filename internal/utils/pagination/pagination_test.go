package pagination

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     Page
	}{
		{"defaults", 0, 0, Page{Number: 1, Size: 10}},
		{"negative page", -3, 20, Page{Number: 1, Size: 20}},
		{"oversized page size is capped", 2, 500, Page{Number: 2, Size: 100}},
		{"valid values pass through", 3, 25, Page{Number: 3, Size: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.page, tt.pageSize); got != tt.want {
				t.Errorf("Normalize(%d, %d) = %+v, want %+v", tt.page, tt.pageSize, got, tt.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (Page{Number: 1, Size: 10}).Offset(); got != 0 {
		t.Errorf("first page offset = %d, want 0", got)
	}
	if got := (Page{Number: 3, Size: 10}).Offset(); got != 20 {
		t.Errorf("third page offset = %d, want 20", got)
	}
}

func TestTotalPages(t *testing.T) {
	p := Page{Number: 1, Size: 10}
	cases := []struct {
		total int64
		want  int64
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{95, 10},
	}
	for _, c := range cases {
		if got := p.TotalPages(c.total); got != c.want {
			t.Errorf("TotalPages(%d) = %d, want %d", c.total, got, c.want)
		}
	}
}
