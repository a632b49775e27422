package directory

import (
	"strings"
	"testing"
)

var sampleCountries = []Country{
	{ID: "a", Name: "France", Capital: "Paris"},
	{ID: "b", Name: "Germany", Capital: "Berlin"},
	{ID: "c", Name: "Bouvet Island"},
}

func TestSummary(t *testing.T) {
	tests := []struct {
		in   []Country
		want string
	}{
		{nil, "No countries"},
		{sampleCountries[:1], "1 country"},
		{sampleCountries, "3 countries"},
	}

	for _, tt := range tests {
		if got := Summary(tt.in); got != tt.want {
			t.Errorf("Summary(%d items) = %q, want %q", len(tt.in), got, tt.want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	got := FormatCompact(sampleCountries)
	want := "France\nGermany\nBouvet Island\n"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}

	if FormatCompact(nil) != "" {
		t.Error("FormatCompact(nil) should be empty")
	}
}

func TestFormatDetailed(t *testing.T) {
	out := FormatDetailed(sampleCountries, 80)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "3 countries") {
		t.Errorf("header = %q, should contain count", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1. France") || !strings.HasSuffix(lines[1], "Paris") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.HasSuffix(lines[3], "-") {
		t.Errorf("missing capital should render as '-', got %q", lines[3])
	}
}

func TestFormatDetailed_Truncates(t *testing.T) {
	long := []Country{{ID: "x", Name: strings.Repeat("Ü", 100), Capital: "Somewhere"}}
	out := FormatDetailed(long, 40)

	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n")[1:] {
		if n := len([]rune(line)); n > 40 {
			t.Errorf("line has %d runes, want <= 40: %q", n, line)
		}
		if !strings.Contains(line, "…") {
			t.Errorf("truncated name should end with an ellipsis: %q", line)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Chad", 10, "Chad"},
		{"Chad", 4, "Chad"},
		{"Germany", 4, "Ger…"},
		{"Germany", 1, "G"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
