package schedule

import (
	"testing"
	"time"
)

func TestParseSearchDate(t *testing.T) {
	loc, _ := time.LoadLocation("America/Sao_Paulo")
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, loc)

	cases := []struct {
		term string
		want time.Time
		ok   bool
	}{
		{"25/12/2025", time.Date(2025, 12, 25, 0, 0, 0, 0, loc), true},
		{"01/03/2024", time.Date(2024, 3, 1, 0, 0, 0, 0, loc), true},
		// dia/mês herda o ano corrente
		{"25/12", time.Date(2025, 12, 25, 0, 0, 0, 0, loc), true},
		{" 25/12 ", time.Date(2025, 12, 25, 0, 0, 0, 0, loc), true},
		{"manicure", time.Time{}, false},
		{"Maria Silva", time.Time{}, false},
		{"32/13", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tc := range cases {
		got, ok := ParseSearchDate(tc.term, now)
		if ok != tc.ok {
			t.Errorf("ParseSearchDate(%q) ok = %v, want %v", tc.term, ok, tc.ok)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("ParseSearchDate(%q) = %v, want %v", tc.term, got, tc.want)
		}
	}
}
