package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/This-Is-Prince/learning-physics/internal/config"
	"github.com/This-Is-Prince/learning-physics/internal/metrics"
	"github.com/This-Is-Prince/learning-physics/internal/sim"
	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

// Scenario defines a set of runs compared side by side.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one run: a preset plus parameter overrides.
type ScenarioStep struct {
	Name   string             `yaml:"name"`
	Preset string             `yaml:"preset"`
	Frames int                `yaml:"frames"`
	Params map[string]float64 `yaml:"params"`
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}

	return &scenario, nil
}

// Outcome is the result of one scenario step or sweep point.
type Outcome struct {
	Name   string
	Value  float64
	Config *config.Config
	Result *sim.Result
}

// SetParam sets a numeric physics or scheduler parameter by name.
func SetParam(cfg *config.Config, name string, v float64) error {
	switch name {
	case "gravity":
		cfg.Physics.Gravity = v
	case "vx":
		cfg.Physics.VX = v
	case "vy":
		cfg.Physics.VY = v
	case "restitution":
		cfg.Physics.Restitution = v
	case "radius":
		cfg.Ball.Radius = v
	case "max_fps":
		cfg.Scheduler.MaxFPS = v
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}

// Configs resolves every step to a validated configuration.
func (s *Scenario) Configs() ([]Outcome, error) {
	out := make([]Outcome, 0, len(s.Steps))
	for i, step := range s.Steps {
		name := step.Preset
		if name == "" {
			name = "classic"
		}
		cfg := config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("step %d: unknown preset: %s", i+1, name)
		}
		for k, v := range step.Params {
			if err := SetParam(cfg, k, v); err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if step.Frames > 0 {
			cfg.Scheduler.Frames = step.Frames
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}

		label := step.Name
		if label == "" {
			label = fmt.Sprintf("%d:%s", i+1, name)
		}
		out = append(out, Outcome{Name: label, Config: cfg})
	}
	return out, nil
}

// run builds a scene per outcome and runs them all concurrently with every
// metric attached.
func run(ctx context.Context, outcomes []Outcome, factory surface.Factory, logger *slog.Logger) ([]Outcome, error) {
	jobs := make([]sim.Job, len(outcomes))
	for i, o := range outcomes {
		scene, err := sim.Build(o.Config, factory, logger)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.Name, err)
		}
		jobs[i] = sim.Job{
			Name:    o.Name,
			Scene:   scene,
			Options: sim.OptionsFrom(o.Config),
			Metrics: metrics.All,
		}
	}

	results, err := sim.RunAll(ctx, jobs)
	for i := range outcomes {
		outcomes[i].Result = results[i]
	}
	return outcomes, err
}

func RunScenario(ctx context.Context, scenario *Scenario, factory surface.Factory, logger *slog.Logger) ([]Outcome, error) {
	outcomes, err := scenario.Configs()
	if err != nil {
		return nil, err
	}
	logger.Info("running scenario", "name", scenario.Name, "steps", len(outcomes))
	return run(ctx, outcomes, factory, logger)
}

// ParameterSweep runs Base across evenly spaced values of one parameter.
type ParameterSweep struct {
	Base     *config.Config
	Param    string
	Min, Max float64
	Steps    int
}

func (s *ParameterSweep) Values() []float64 {
	if s.Steps <= 1 {
		return []float64{s.Min}
	}
	step := (s.Max - s.Min) / float64(s.Steps-1)
	values := make([]float64, s.Steps)
	for i := range values {
		values[i] = s.Min + float64(i)*step
	}
	return values
}

func RunSweep(ctx context.Context, sweep *ParameterSweep, factory surface.Factory, logger *slog.Logger) ([]Outcome, error) {
	values := sweep.Values()
	outcomes := make([]Outcome, 0, len(values))
	for _, v := range values {
		cfg := *sweep.Base
		if err := SetParam(&cfg, sweep.Param, v); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%s=%.4f: %w", sweep.Param, v, err)
		}
		outcomes = append(outcomes, Outcome{
			Name:   fmt.Sprintf("%s=%.4g", sweep.Param, v),
			Value:  v,
			Config: &cfg,
		})
	}
	logger.Info("running sweep", "param", sweep.Param, "points", len(outcomes))
	return run(ctx, outcomes, factory, logger)
}
