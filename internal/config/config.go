package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/This-Is-Prince/learning-physics/internal/physics"
	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

const (
	DefaultSurfaceID   = "canvas"
	DefaultWidth       = 500
	DefaultHeight      = 500
	DefaultBackground  = "white"
	DefaultRadius      = 20.0
	DefaultX           = 50.0
	DefaultY           = 50.0
	DefaultColor       = "blue"
	DefaultGravity     = 1.0
	DefaultVX          = 2.0
	DefaultVY          = 1.0
	DefaultRefreshRate = 60.0
	DefaultFrames      = 600
	DefaultLogLevel    = "info"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Surface   SurfaceConfig   `yaml:"surface"`
	Ball      BallConfig      `yaml:"ball"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

type SurfaceConfig struct {
	ID         string `yaml:"id"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
	Fallback   bool   `yaml:"fallback"`
}

type BallConfig struct {
	Radius float64 `yaml:"radius"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Color  string  `yaml:"color"`
}

type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	VX          float64 `yaml:"vx"`
	VY          float64 `yaml:"vy"`
	Restitution float64 `yaml:"restitution"`
	TimeScaled  bool    `yaml:"time_scaled"`
}

type SchedulerConfig struct {
	MaxFPS      float64 `yaml:"max_fps"`
	RefreshRate float64 `yaml:"refresh_rate"`
	Frames      int     `yaml:"frames"`
	StopAtRest  bool    `yaml:"stop_at_rest"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig reproduces the original demo: a 500x500 white canvas and
// a radius 20 blue ball launched from (50, 50).
func DefaultConfig() *Config {
	return &Config{
		Surface: SurfaceConfig{
			ID:         DefaultSurfaceID,
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Background: DefaultBackground,
			Fallback:   true,
		},
		Ball: BallConfig{
			Radius: DefaultRadius,
			X:      DefaultX,
			Y:      DefaultY,
			Color:  DefaultColor,
		},
		Physics: PhysicsConfig{
			Gravity:     DefaultGravity,
			VX:          DefaultVX,
			VY:          DefaultVY,
			Restitution: physics.DefaultRestitution,
		},
		Scheduler: SchedulerConfig{
			RefreshRate: DefaultRefreshRate,
			Frames:      DefaultFrames,
			StopAtRest:  true,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of base, so keys missing from the file keep
// base's values. base is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		return fmt.Errorf("%w: surface must be positive, got %dx%d", ErrInvalidConfig, c.Surface.Width, c.Surface.Height)
	}
	finite := []struct {
		name string
		v    float64
	}{
		{"ball radius", c.Ball.Radius},
		{"ball x", c.Ball.X},
		{"ball y", c.Ball.Y},
		{"max_fps", c.Scheduler.MaxFPS},
		{"refresh_rate", c.Scheduler.RefreshRate},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %f", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("%w: ball radius must be positive, got %f", ErrInvalidConfig, c.Ball.Radius)
	}
	if c.Scheduler.MaxFPS < 0 {
		return fmt.Errorf("%w: max_fps must not be negative, got %f", ErrInvalidConfig, c.Scheduler.MaxFPS)
	}
	if c.Scheduler.RefreshRate <= 0 {
		return fmt.Errorf("%w: refresh_rate must be positive, got %f", ErrInvalidConfig, c.Scheduler.RefreshRate)
	}
	if c.Scheduler.Frames < 0 {
		return fmt.Errorf("%w: frames must not be negative, got %d", ErrInvalidConfig, c.Scheduler.Frames)
	}
	if _, err := c.BallColor(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.PhysicsParams().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) PhysicsParams() physics.Params {
	return physics.Params{
		Gravity:     c.Physics.Gravity,
		VX:          c.Physics.VX,
		VY:          c.Physics.VY,
		Restitution: c.Physics.Restitution,
		TimeScaled:  c.Physics.TimeScaled,
	}
}

func (c *Config) BallColor() (color.RGBA, error) {
	return surface.ParseColor(c.Ball.Color)
}

func (c *Config) BackgroundColor() (color.RGBA, error) {
	return surface.ParseColor(c.Surface.Background)
}

// RefreshInterval returns the host refresh interval in milliseconds.
func (c *Config) RefreshInterval() float64 {
	return 1000 / c.Scheduler.RefreshRate
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
