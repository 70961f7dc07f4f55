package widgets

import (
	"strings"
	"testing"
)

func TestRenderPopupKeepsBaseEdges(t *testing.T) {
	base := strings.TrimSpace(strings.Repeat("x", 40) + "\n" + strings.Repeat("x", 40))
	base = strings.Repeat(base+"\n", 6)
	out := RenderPopup(base, "hello", 40, 12)
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("canvas height = %d, want 12", len(lines))
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("popup content missing")
	}
	if !strings.HasPrefix(lines[0], "x") {
		t.Fatalf("top base row should survive: %q", lines[0])
	}
}

func TestRenderPopupZeroCanvas(t *testing.T) {
	if RenderPopup("base", "popup", 0, 10) != "" {
		t.Fatalf("zero width should render nothing")
	}
}

func TestPaneMarksSelectionAndFocus(t *testing.T) {
	plain := Pane{Title: "Timer", Content: "00:00"}.Render(24, 6)
	if !strings.Contains(plain, "Timer") {
		t.Fatalf("title missing:\n%s", plain)
	}
	selected := Pane{Title: "Timer", Content: "00:00", Selected: true}.Render(24, 6)
	if !strings.Contains(selected, "▶") {
		t.Fatalf("selection marker missing:\n%s", selected)
	}
	focused := Pane{Title: "Timer", Content: "00:00", Focused: true}.Render(24, 6)
	if !strings.Contains(focused, "●") {
		t.Fatalf("focus marker missing:\n%s", focused)
	}
}
