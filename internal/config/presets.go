package config

var Presets = map[string]*Config{
	"quiet": {
		MaxParticles: 1000, TimeScale: 0.5, FrameRate: 30,
	},
	"standard": {
		MaxParticles: 5000, TimeScale: 1.0, FrameRate: 30,
	},
	"storm": {
		MaxParticles: 20000, TimeScale: 3.0, FrameRate: 30,
	},
	"slowmo": {
		MaxParticles: 5000, TimeScale: 0.1, FrameRate: 60,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
