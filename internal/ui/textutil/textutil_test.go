package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"People", 10, "People"},
		{"Intelligence", 8, "Intelli…"},
		{"abc", 0, ""},
		{"日本語テキスト", 7, "日本語…"},
		{"x", 1, "x"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := Width(PadRight("日本語", 4)); got > 4 {
		t.Errorf("overwide input should truncate to width, got %d", got)
	}
}
