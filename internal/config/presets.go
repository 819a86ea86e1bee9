package config

import "sort"

// Presets override fields of DefaultConfig.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"slow": func(c *Config) {
		c.AnimationTime = 60
	},
	"fast": func(c *Config) {
		c.AnimationTime = 5
	},
	"threshold": func(c *Config) {
		c.StartMode = "current"
		c.TextColor = "#ffcc00"
	},
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
