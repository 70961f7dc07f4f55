package widgets

import (
	"strings"
	"testing"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	out := h.Render(20, 2)
	lines := strings.Split(out, "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		t.Fatalf("expected output")
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
}

func TestGridFillsRowMajor(t *testing.T) {
	g := Grid{Widgets: []Widget{fixedWidget{"a"}, fixedWidget{"b"}, fixedWidget{"c"}}, Columns: 2, Gap: 1}
	out := g.Render(20, 4)
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "a") || !strings.Contains(lines[0], "b") {
		t.Fatalf("first row should hold a and b: %q", lines[0])
	}
	found := false
	for _, line := range lines[1:] {
		if strings.Contains(line, "c") {
			found = true
		}
	}
	if !found {
		t.Fatalf("second row should hold c:\n%s", out)
	}
}

func TestSplitSpansCoversTotal(t *testing.T) {
	for _, tc := range []struct {
		total  int
		n      int
		ratios []float64
	}{
		{10, 3, nil},
		{10, 3, []float64{1, 2, 1}},
		{7, 2, []float64{0.5, 0.5}},
	} {
		spans := splitSpans(tc.total, tc.n, tc.ratios)
		sum := 0
		for _, s := range spans {
			sum += s
		}
		if sum != tc.total {
			t.Fatalf("splitSpans(%d,%d,%v) = %v, sums to %d", tc.total, tc.n, tc.ratios, spans, sum)
		}
	}
}

func TestPadRightExactWidth(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Fatalf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abc" {
		t.Fatalf("PadRight truncation = %q", got)
	}
}
