package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	job := Default()

	if job.Kind != "scatter" {
		t.Errorf("expected kind scatter, got %s", job.Kind)
	}
	if job.Format != "png" {
		t.Errorf("expected format png, got %s", job.Format)
	}
	if job.Out != "output" {
		t.Errorf("expected out output, got %s", job.Out)
	}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeTemp(t, "job.yaml", `
kind: line
points: [1, 2, 3, 4]
out: fig
size: 16x6
show_grid: true
`)

	job, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Kind != "line" {
		t.Errorf("expected kind line, got %s", job.Kind)
	}
	if len(job.Points) != 4 {
		t.Errorf("expected 4 points, got %d", len(job.Points))
	}
	if !job.ShowGrid {
		t.Error("expected show_grid true")
	}
	// Unset fields keep defaults.
	if job.Format != "png" {
		t.Errorf("expected default format png, got %s", job.Format)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeTemp(t, "job.toml", `
kind = "scatter"
points = [1.0, 2.0]
hide_axes = true
`)

	job, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !job.HideAxes {
		t.Error("expected hide_axes true")
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeTemp(t, "job.json", `{"kind": "line", "points": [0, 0, 1, 1], "out": "diag"}`)

	job, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.Out != "diag" {
		t.Errorf("expected out diag, got %s", job.Out)
	}
}

func TestSaveRoundtrip(t *testing.T) {
	job := Default()
	job.Kind = "line"
	job.Points = []float64{1, 2, 3, 4}
	job.Title = "roundtrip"

	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := Save(path, job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Kind != "line" || loaded.Title != "roundtrip" {
		t.Errorf("roundtrip lost fields: %+v", loaded)
	}
	if len(loaded.Points) != 4 {
		t.Errorf("expected 4 points, got %d", len(loaded.Points))
	}
}

func TestLoadUnknownExtension(t *testing.T) {
	path := writeTemp(t, "job.ini", "kind=scatter")
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestCanvas(t *testing.T) {
	job := Default()
	job.Size = "4x3"
	job.Title = "demo"

	canvas, err := job.Canvas()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canvas.Width != 400 || canvas.Height != 300 {
		t.Errorf("expected 400x300, got %dx%d", canvas.Width, canvas.Height)
	}
	if canvas.Title != "demo" {
		t.Errorf("expected title demo, got %s", canvas.Title)
	}

	job.Size = "bogus"
	if _, err := job.Canvas(); err == nil {
		t.Error("expected error for bad size")
	}
}

func TestGetPreset(t *testing.T) {
	job := GetPreset("wide")
	if job == nil {
		t.Fatal("expected preset, got nil")
	}
	if job.Size != "16x6" {
		t.Errorf("expected size 16x6, got %s", job.Size)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
}
