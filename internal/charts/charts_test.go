package charts

import (
	"strings"
	"testing"
)

func TestDrawReplacesPriorInstance(t *testing.T) {
	var canvas Canvas

	first := canvas.Draw(Bar, "Vehicle Status Stats", map[string]int{"a": 3, "b": 5})
	second := canvas.Draw(Bar, "Vehicle Status Stats", map[string]int{"a": 1})

	if !first.Destroyed() {
		t.Error("first chart not destroyed after redraw")
	}
	if second.Destroyed() {
		t.Error("second chart destroyed, want live")
	}
	if canvas.Current() != second {
		t.Error("canvas holds stale chart instance")
	}
	if got := second.Data()["a"]; got != 1 {
		t.Errorf("second chart data[a] = %d, want 1", got)
	}
}

func TestDestroyedChartRendersNothing(t *testing.T) {
	var canvas Canvas
	chart := canvas.Draw(Bar, "t", map[string]int{"a": 1})
	chart.Destroy()
	if got := chart.Render(40); got != "" {
		t.Errorf("destroyed chart Render = %q, want empty", got)
	}
}

func TestDrawCopiesData(t *testing.T) {
	var canvas Canvas
	data := map[string]int{"a": 1}
	chart := canvas.Draw(Bar, "t", data)

	data["a"] = 99
	if got := chart.Data()["a"]; got != 1 {
		t.Errorf("chart data[a] = %d, want 1 (caller mutation leaked)", got)
	}
}

func TestCanvasClear(t *testing.T) {
	var canvas Canvas
	chart := canvas.Draw(Bar, "t", map[string]int{"a": 1})
	canvas.Clear()

	if !chart.Destroyed() {
		t.Error("chart not destroyed by Clear")
	}
	if canvas.Current() != nil {
		t.Error("canvas not empty after Clear")
	}
	if got := canvas.View(40); got != "" {
		t.Errorf("cleared canvas View = %q, want empty", got)
	}
}

func TestRenderBarChart(t *testing.T) {
	var canvas Canvas
	chart := canvas.Draw(Bar, "Vehicle Status Stats", map[string]int{"low": 1, "top": 4})

	out := chart.Render(40)
	if !strings.Contains(out, "Vehicle Status Stats") {
		t.Errorf("Render missing title:\n%s", out)
	}
	for _, label := range []string{"low", "top"} {
		if !strings.Contains(out, label) {
			t.Errorf("Render missing label %q:\n%s", label, out)
		}
	}
	if !strings.Contains(out, "█") {
		t.Errorf("Render missing bars:\n%s", out)
	}
}

func TestRenderDistributionChart(t *testing.T) {
	var canvas Canvas
	chart := canvas.Draw(Distribution, "Submitted Reports by Vehicle Status", map[string]int{"a": 1, "b": 3})

	out := chart.Render(40)
	if !strings.Contains(out, "Submitted Reports by Vehicle Status") {
		t.Errorf("Render missing title:\n%s", out)
	}
	if !strings.Contains(out, "25.0%") {
		t.Errorf("Render missing percentage:\n%s", out)
	}
	if !strings.Contains(out, "75.0%") {
		t.Errorf("Render missing percentage:\n%s", out)
	}
}

func TestRenderEmptyData(t *testing.T) {
	var canvas Canvas
	chart := canvas.Draw(Bar, "t", nil)
	if got := chart.Render(40); !strings.Contains(got, "(no data)") {
		t.Errorf("Render = %q, want (no data) marker", got)
	}
}
