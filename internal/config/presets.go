package config

import "sort"

var Presets = map[string]*Config{
	"classic": DefaultConfig(),
	"gentle": with(func(c *Config) {
		c.Physics.Gravity, c.Physics.VX, c.Physics.VY = 0.1, 1, 2
		c.Scheduler.Frames = 1200
	}),
	"superball": with(func(c *Config) {
		c.Physics.Restitution = 0.95
		c.Physics.VX = 1
		c.Ball.Color = "red"
		c.Scheduler.Frames = 1200
	}),
	"clay": with(func(c *Config) {
		c.Physics.Restitution = 0.3
		c.Physics.VX = 0.5
		c.Ball.Color = "orange"
		c.Scheduler.Frames = 1200
	}),
	"capped": with(func(c *Config) {
		c.Scheduler.MaxFPS = 30
	}),
	"seconds": with(func(c *Config) {
		c.Physics.Gravity, c.Physics.VX, c.Physics.VY = 980, 60, 0
		c.Physics.TimeScaled = true
	}),
}

func with(edit func(*Config)) *Config {
	c := DefaultConfig()
	edit(c)
	return c
}

// GetPreset returns a copy of the named preset, nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
