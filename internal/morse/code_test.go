package morse

import "testing"

func TestEncode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"sos", "SOS", "... --- ..."},
		{"lowercase", "sos", "... --- ..."},
		{"two words", "A B", ".- / -..."},
		{"unmapped dropped", "S#S", "... ..."},
		{"multiple spaces collapse", "A  B", ".- / -..."},
		{"leading and trailing spaces", "  A B  ", ".- / -..."},
		{"only unmapped", "#%", ""},
		{"empty", "", ""},
		{"word vanishes", "A # B", ".- / -..."},
		{"digits", "73", "--... ...--"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Encode(tc.in); got != tc.want {
				t.Errorf("Encode(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"sos", "... --- ...", "SOS"},
		{"two words", ".- / -...", "A B"},
		{"unknown code dropped", "......... ...", "S"},
		{"empty", "", ""},
		{"separators only", "/ / /", ""},
		{"extra whitespace", "  .-   -...  ", "AB"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decode(tc.in); got != tc.want {
				t.Errorf("Decode(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"HELLO WORLD", "HELLO WORLD"},
		{"Hello, World!", "HELLO, WORLD!"},
		{"SOS", "SOS"},
		{"73 DE N0CALL", "73 DE N0CALL"},
		{"tabs\tare dropped", "TABSARE DROPPED"},
	}
	for _, tc := range cases {
		if got := Decode(Encode(tc.in)); got != tc.want {
			t.Errorf("Decode(Encode(%q)) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCodeTableBijection(t *testing.T) {
	if len(fromCode) != len(CodeTable) {
		t.Fatalf("code table is not a bijection: %d characters but %d distinct codes",
			len(CodeTable), len(fromCode))
	}
	for r, code := range CodeTable {
		if back, ok := fromCode[code]; !ok || back != r {
			t.Errorf("inverse lookup of %q = %q, want %q", code, back, r)
		}
	}
}
