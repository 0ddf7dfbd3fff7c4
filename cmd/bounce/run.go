package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/This-Is-Prince/learning-physics/internal/analysis"
	"github.com/This-Is-Prince/learning-physics/internal/automation"
	"github.com/This-Is-Prince/learning-physics/internal/config"
	"github.com/This-Is-Prince/learning-physics/internal/export"
	"github.com/This-Is-Prince/learning-physics/internal/metrics"
	"github.com/This-Is-Prince/learning-physics/internal/sim"
	"github.com/This-Is-Prince/learning-physics/internal/surface"
)

func headless(cmd *cobra.Command) (*config.Config, *sim.Result, error) {
	cfg, scene, logger, err := prepare(cmd)
	if err != nil {
		return nil, nil, err
	}

	runner := scene.RunHeadless
	if realtime {
		runner = scene.RunRealtime
	}
	result, err := runner(cmd.Context(), sim.OptionsFrom(cfg), metrics.All()...)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("run complete",
		"frames", result.Frames,
		"refreshes", result.Refreshes,
		"at_rest", result.AtRest,
		"bounces", result.Metrics["bounces"])
	return cfg, result, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	switch format {
	case "", "json", "csv":
	default:
		return fmt.Errorf("unknown format: %s (available: json, csv)", format)
	}
	_, result, err := headless(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return export.WriteJSON(out, export.NewTrace(preset, result))
	case "csv":
		return export.WriteCSV(out, result.Samples)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "frames\t%d\n", result.Frames)
	fmt.Fprintf(w, "refreshes\t%d\n", result.Refreshes)
	fmt.Fprintf(w, "at rest\t%v\n", result.AtRest)
	if last, ok := result.Final(); ok {
		fmt.Fprintf(w, "final\t(%.2f, %.2f) v=(%.2f, %.2f)\n", last.X, last.Y, last.VX, last.VY)
		fmt.Fprintf(w, "elapsed\t%.3fs\n", last.Time)
	}
	for _, m := range metrics.All() {
		fmt.Fprintf(w, "%s\t%.4f\n", m.Name(), result.Metrics[m.Name()])
	}
	return w.Flush()
}

func comparePresets(cmd *cobra.Command, args []string) error {
	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), base)
	factory := surface.BrailleFactory(cols, rows)

	var scenario *automation.Scenario
	if scenarioFile != "" {
		scenario, err = automation.LoadScenario(scenarioFile)
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
	} else {
		names := args
		if len(names) == 0 {
			names = config.ListPresets()
		}
		scenario = &automation.Scenario{Name: "presets"}
		for _, name := range names {
			scenario.Steps = append(scenario.Steps, automation.ScenarioStep{Name: name, Preset: name})
		}
	}

	outcomes, err := automation.RunScenario(cmd.Context(), scenario, factory, logger)
	if err != nil {
		return err
	}
	printOutcomes(cmd.OutOrStdout(), "run", outcomes)
	return nil
}

func sweepParam(cmd *cobra.Command, args []string) error {
	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), base)

	sweep := &automation.ParameterSweep{
		Base:  base,
		Param: args[0],
		Min:   sweepMin,
		Max:   sweepMax,
		Steps: sweepSteps,
	}
	outcomes, err := automation.RunSweep(cmd.Context(), sweep, surface.BrailleFactory(cols, rows), logger)
	if err != nil {
		return err
	}
	printOutcomes(cmd.OutOrStdout(), args[0], outcomes)
	return nil
}

func printOutcomes(w io.Writer, label string, outcomes []automation.Outcome) {
	fmt.Fprintf(w, "%-16s  %-8s  %-8s  %-12s  %-12s  %-10s\n", label, "frames", "bounces", "peak_rebound", "energy_loss", "rest_frame")
	fmt.Fprintln(w, strings.Repeat("-", 76))
	for _, o := range outcomes {
		r := o.Result
		fmt.Fprintf(w, "%-16s  %-8d  %-8.0f  %-12.2f  %-12.4f  %-10.0f\n",
			o.Name, r.Frames,
			r.Metrics["bounces"], r.Metrics["peak_rebound"],
			r.Metrics["energy_loss"], r.Metrics["rest_frame"])
	}
}

// downsample keeps at most n evenly spaced values.
func downsample(data []float64, n int) []float64 {
	if len(data) <= n {
		return data
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = data[i*len(data)/n]
	}
	return out
}

func plotRun(cmd *cobra.Command, args []string) error {
	_, result, err := headless(cmd)
	if err != nil {
		return err
	}
	if len(result.Samples) < 2 {
		return fmt.Errorf("not enough samples to plot: %d", len(result.Samples))
	}

	vys := make([]float64, len(result.Samples))
	for i, s := range result.Samples {
		vys[i] = s.VY
	}

	series := []struct {
		caption string
		data    []float64
	}{
		{"height above floor", analysis.Heights(result.Samples)},
		{"vertical velocity", vys},
	}
	out := cmd.OutOrStdout()
	for _, s := range series {
		graph := asciigraph.Plot(downsample(s.data, 80),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	_, result, err := headless(cmd)
	if err != nil {
		return err
	}
	last, ok := result.Final()
	if !ok || last.Time <= 0 {
		return analysis.ErrNoData
	}

	heights := analysis.Heights(result.Samples)
	if len(heights) < 4 {
		return analysis.ErrNoData
	}
	rate := float64(len(heights)) / last.Time

	out := cmd.OutOrStdout()
	if band := analysis.LowBand(analysis.PowerSpectrum(heights)); band != nil {
		graph := asciigraph.Plot(downsample(band, 80),
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (height)"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	freq, err := analysis.DominantFrequency(heights, rate)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "sample rate:        %.2f Hz\n", rate)
	fmt.Fprintf(out, "dominant frequency: %.4f Hz\n", freq)

	if periods := analysis.BouncePeriods(result.Samples); len(periods) > 0 {
		sum := 0.0
		for _, p := range periods {
			sum += p
		}
		fmt.Fprintf(out, "bounces:            %d\n", len(periods)+1)
		fmt.Fprintf(out, "mean bounce period: %.4fs\n", sum/float64(len(periods)))
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRAVITY\tVX\tVY\tRESTITUTION\tMAX_FPS\tTIME_SCALED")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\t%v\n",
			name, p.Physics.Gravity, p.Physics.VX, p.Physics.VY,
			p.Physics.Restitution, p.Scheduler.MaxFPS, p.Physics.TimeScaled)
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}
