package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/experiment"
	"github.com/san-kum/collide/internal/export"
	"github.com/san-kum/collide/internal/hypothesis"
	"github.com/san-kum/collide/internal/logging"
	"github.com/san-kum/collide/internal/metrics"
	"github.com/san-kum/collide/internal/viz"
)

const (
	frameWidth  = 60
	frameHeight = 16
)

// compute runs the experiment for the configured inputs.
func compute(cmd *cobra.Command) (*experiment.Run, *config.Config, *zap.Logger, error) {
	cfg, exp, logger, err := setup(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	run, err := exp.Run(experiment.InputsFromConfig(cfg))
	if err != nil {
		logger.Sync()
		return nil, nil, nil, err
	}
	return run, cfg, logger, nil
}

func solve(cmd *cobra.Command, args []string) error {
	run, _, logger, err := compute(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	in, r := run.Inputs, run.Result
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tmass (kg)\tvelocity (m/s)\tfinal velocity (m/s)")
	fmt.Fprintf(w, "particle 1\t%.2f\t%.2f\t%.2f\n", in.Particle1.Mass, in.Particle1.Velocity, r.Velocity1Final)
	fmt.Fprintf(w, "particle 2\t%.2f\t%.2f\t%.2f\n", in.Particle2.Mass, in.Particle2.Velocity, r.Velocity2Final)
	w.Flush()

	fmt.Println()
	qs := run.Conservation()
	for _, q := range qs {
		for _, line := range q.Lines() {
			fmt.Println(line)
		}
	}
	if !metrics.AllConserved(qs, metrics.DefaultTolerance) {
		logger.Warn("conservation drift above tolerance",
			zap.Float64("momentum_drift", qs[0].Drift()),
			zap.Float64("energy_drift", qs[1].Drift()))
	}
	return nil
}

func animate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("samples") {
		cfg.Animation.Samples = samples
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(logLevel, logFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	run, err := experiment.New(cfg, logger).Run(experiment.InputsFromConfig(cfg))
	if err != nil {
		return err
	}

	if csvOut {
		cw := csv.NewWriter(os.Stdout)
		cw.Write([]string{"t", "position1", "position2"})
		for _, p := range run.Trajectory {
			cw.Write([]string{
				strconv.FormatFloat(p.T, 'g', -1, 64),
				strconv.FormatFloat(p.Position1, 'g', -1, 64),
				strconv.FormatFloat(p.Position2, 'g', -1, 64),
			})
		}
		cw.Flush()
		return cw.Error()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "frame\tt (s)\tx1 (m)\tx2 (m)\tgap (m)\t")
	for i, p := range run.Trajectory {
		fmt.Fprintf(w, "%d\t%.3f\t%.3f\t%.3f\t%.3f\t\n", i, p.T, p.Position1, p.Position2, p.Position2-p.Position1)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(viz.PositionsChart(run.Trajectory, 60, 12, "position x vs frame (blue: 1, red: 2)"))
	fmt.Println()
	fmt.Println(viz.GapChart(run.Trajectory, 60, 6))
	return nil
}

func submit(cmd *cobra.Command, args []string) error {
	cfg, _, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	p1, p2 := cfg.ParticlePair()
	log := hypothesis.NewLog(cfg.LogPath, logger)
	sub := hypothesis.NewSubmitter(log, logger)
	if _, err := sub.Submit(p1, p2, strings.Join(args, " ")); err != nil {
		if errors.Is(err, hypothesis.ErrEmptySubmission) {
			return fmt.Errorf("please enter some text before submitting: %w", err)
		}
		return err
	}
	fmt.Printf("Your hypothesis was recorded in %s.\n", log.Path())
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	run, _, logger, err := compute(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if outFile == "" {
		return export.WriteJSON(os.Stdout, run)
	}
	if err := export.SaveJSON(outFile, run); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	run, _, logger, err := compute(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var svg string
	if plotOnly {
		svg = export.TrajectoryToSVG(run.Trajectory, 600, 300)
	} else {
		if frameIndex < 0 || frameIndex >= len(run.Trajectory) {
			return fmt.Errorf("frame %d out of range [0, %d]", frameIndex, len(run.Trajectory)-1)
		}
		canvas := viz.RenderFrame(viz.DefaultScene(), viz.NewCamera(), run.Trajectory, frameIndex, frameWidth, frameHeight)
		svg = export.CanvasToSVG(canvas, 4)
	}
	if err := export.SaveSVG(outFile, svg); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func exportGIF(cmd *cobra.Command, args []string) error {
	run, cfg, logger, err := compute(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	frames := viz.RenderAll(viz.DefaultScene(), viz.NewCamera(), run.Trajectory, frameWidth, frameHeight)
	if err := export.SaveGIF(outFile, frames, export.DefaultDotSize, export.GIFDelay(cfg.FrameDelay())); err != nil {
		return err
	}
	fmt.Printf("exported %d frames to %s\n", len(frames), outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "preset\tm1\tv1\tm2\tv2")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", name, p.Mass1, p.Velocity1, p.Mass2, p.Velocity2)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" && !cfg.ApplyPreset(preset) {
		return fmt.Errorf("unknown preset: %s", preset)
	}
	if err := config.Save(outFile, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}
