package config

import "sort"

func initial(x0, y0, h float64, n int) InitialConfig {
	return InitialConfig{X0: &x0, Y0: &y0, StepLength: &h, StepCount: &n}
}

var Presets = map[string]InitialConfig{
	"default": initial(0.1, 0.1, 0.1, 10),
	"unit":    initial(0, 1, 0.1, 10),
	"fine":    initial(0, 1, 0.01, 100),
	"coarse":  initial(0, 1, 0.5, 4),
	"single":  initial(0, 1, 0.1, 1),
}

func GetPreset(name string) (InitialConfig, bool) {
	p, ok := Presets[name]
	return p, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
