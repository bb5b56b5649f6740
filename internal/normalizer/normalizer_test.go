package normalizer

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "Tucumán   1300", "Tucumán 1300"},
		{"strips parenthetical qualifier", "Tucumán (ex Lavalle) 1300", "Tucumán 1300"},
		{"strips parenthesized cardinal orientation", "Tucumán (s) 1300", "Tucumán 1300"},
		{"strips comma used to separate text", "Mitre 100, CABA", "Mitre 100 CABA"},
		{"strips stray quote and question mark", `Tucumán "1300"?`, "Tucumán 1300"},
		{"strips trailing dash", "Tucumán 1300-", "Tucumán 1300"},
		{"strips dash surrounded by spaces", "Tucumán - 1300", "Tucumán 1300"},
		{"strips barrio indicator to end of string", "Tucumán 1300 barrio Once", "Tucumán 1300"},
		{"strips al filler before a door number", "Rivadavia al 1500", "Rivadavia 1500"},
		{"separates glued letters and digits", "Tucuman1300", "Tucuman 1300"},
		{"trims surrounding space", "  Callao 1231  ", "Callao 1231"},
		{"NFC-folds decomposed accents", "Tucumán 1300", "Tucumán 1300"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Normalize(c.in)
			if got != c.want {
				t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
