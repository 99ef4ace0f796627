package validators

import "testing"

func TestIsCPFFormatValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"123.456.789-09", true},
		{"000.000.000-00", true},
		{"12345678909", false},
		{"123.456.789-0", false},
		{"123.456.78-909", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsCPFFormatValid(tc.in); got != tc.want {
			t.Errorf("IsCPFFormatValid(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsMobileFormatValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"(11) 98765-4321", true},
		{"(21) 12345-6789", true},
		{"11987654321", false},
		{"(11)98765-4321", false},
		{"(11) 9876-4321", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsMobileFormatValid(tc.in); got != tc.want {
			t.Errorf("IsMobileFormatValid(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsEmailFormatValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"maria@example.com", true},
		{"joao.silva@salao.com.br", true},
		{"sem-arroba.com", false},
		{"a@b", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsEmailFormatValid(tc.in); got != tc.want {
			t.Errorf("IsEmailFormatValid(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
