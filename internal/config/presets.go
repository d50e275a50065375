package config

import "sort"

// Presets are named canvas setups selectable with --preset. Point data and
// the output path always come from the caller.
var Presets = map[string]*Job{
	"default": {
		Kind: "scatter", Format: "png", Size: "8x6",
	},
	"wide": {
		Kind: "line", Format: "png", Size: "16x6", ShowGrid: true,
	},
	"square": {
		Kind: "scatter", Format: "png", Size: "6x6",
	},
	"print": {
		Kind: "line", Format: "svg", Size: "8x6", ShowGrid: true,
	},
	"minimal": {
		Kind: "scatter", Format: "png", Size: "8x6", HideAxes: true,
	},
}

// GetPreset returns the named preset, or nil when unknown.
func GetPreset(name string) *Job {
	job, ok := Presets[name]
	if !ok {
		return nil
	}
	return job
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
