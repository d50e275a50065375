package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/avask/vizkit/internal/plot"
)

const (
	DefaultKind   = "scatter"
	DefaultOut    = "output"
	DefaultFormat = "png"
	DefaultSize   = "8x6"
)

// Job describes one plotting run: what to draw, where, and how the canvas
// looks. The same struct decodes from yaml, toml and json job files.
type Job struct {
	Kind     string    `yaml:"kind" toml:"kind" json:"kind"`
	Points   []float64 `yaml:"points" toml:"points" json:"points"`
	Out      string    `yaml:"out" toml:"out" json:"out"`
	Format   string    `yaml:"format" toml:"format" json:"format"`
	Size     string    `yaml:"size" toml:"size" json:"size"`
	Title    string    `yaml:"title" toml:"title" json:"title"`
	HideAxes bool      `yaml:"hide_axes" toml:"hide_axes" json:"hide_axes"`
	ShowGrid bool      `yaml:"show_grid" toml:"show_grid" json:"show_grid"`
}

// Default returns a scatter job writing output.png on an 8x6 canvas.
func Default() *Job {
	return &Job{
		Kind:   DefaultKind,
		Out:    DefaultOut,
		Format: DefaultFormat,
		Size:   DefaultSize,
	}
}

// Load reads a job file, decoding by extension: .yaml/.yml, .toml or .json.
// Missing fields keep their defaults.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	job := Default()
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, job)
	case ".toml":
		err = toml.Unmarshal(data, job)
	case ".json":
		err = json.Unmarshal(data, job)
	default:
		return nil, fmt.Errorf("unknown config extension %q (want .yaml, .toml or .json)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return job, nil
}

// Save writes the job as yaml.
func Save(path string, job *Job) error {
	data, err := yaml.Marshal(job)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Canvas converts the job's canvas fields into plot settings.
func (j *Job) Canvas() (plot.Canvas, error) {
	size := j.Size
	if size == "" {
		size = DefaultSize
	}
	w, h, err := plot.ParseSize(size)
	if err != nil {
		return plot.Canvas{}, err
	}
	return plot.Canvas{
		Width:    w,
		Height:   h,
		HideAxes: j.HideAxes,
		ShowGrid: j.ShowGrid,
		Title:    j.Title,
	}, nil
}
