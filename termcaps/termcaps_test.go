package termcaps

import "testing"

// env builds a getenv func over a fixed map.
func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestTrueColor_Colorterm(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"truecolor", map[string]string{"COLORTERM": "truecolor"}, true},
		{"24bit", map[string]string{"COLORTERM": "24bit"}, true},
		{"mixed case", map[string]string{"COLORTERM": "TrueColor"}, true},
		{"other value", map[string]string{"COLORTERM": "yes", "TERM": ""}, false},
		{"empty env", map[string]string{}, false},
		{"dumb term", map[string]string{"TERM": "dumb"}, false},
		{"unknown term", map[string]string{"TERM": "definitely-not-a-terminal"}, false},
	}
	for _, c := range cases {
		if got := TrueColor(env(c.env)); got != c.want {
			t.Errorf("%s: TrueColor = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestTrueColor_NoColorWins(t *testing.T) {
	e := env(map[string]string{
		"NO_COLOR":  "1",
		"COLORTERM": "truecolor",
		"TERM":      "xterm-direct",
	})
	if TrueColor(e) {
		t.Error("NO_COLOR set but TrueColor reported true")
	}
}

func TestTrueColor_TerminfoFallback(t *testing.T) {
	// The terminfo library reads COLORTERM from the real environment,
	// so pin it for the duration of the test.
	t.Setenv("COLORTERM", "")

	// xterm-256color has no direct-color capability of its own.
	e := env(map[string]string{"TERM": "xterm-256color"})
	if TrueColor(e) {
		t.Error("xterm-256color reported as true-color")
	}
}
