package sanitize_test

import (
	"testing"

	"statdeck/internal/platform/sanitize"
)

func TestText(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"":                                 "",
		"Ada Lovelace":                     "Ada Lovelace",
		"<b>Ada</b> <script>x()</script>": "Ada",
		"Tom &amp; Jerry":                  "Tom & Jerry",
		"bell\x07name\x1b[31m":             "bellname[31m",
	}
	for in, want := range cases {
		if got := sanitize.Text(in); got != want {
			t.Fatalf("Text(%q) = %q, want %q", in, got, want)
		}
	}
}
