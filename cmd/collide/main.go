package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/experiment"
	"github.com/san-kum/collide/internal/hypothesis"
	"github.com/san-kum/collide/internal/logging"
	"github.com/san-kum/collide/internal/viz"
)

var (
	// Particle inputs
	mass1     float64
	velocity1 float64
	mass2     float64
	velocity2 float64
	// Config file and preset
	configFile string
	preset     string
	// Hypothesis log and diagnostics
	logPath  string
	logLevel string
	logFile  string
	// Output options
	samples    int
	csvOut     bool
	outFile    string
	frameIndex int
	plotOnly   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "collide",
		Short:        "elastic collision lab",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&logPath, "log", config.DefaultLogPath, "hypothesis log (csv)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "diagnostic log level")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write diagnostics to this file")
	addInputFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive lab",
		RunE:  runTUI,
	}
	addInputFlags(tuiCmd)

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "solve the collision and print conservation",
		RunE:  solve,
	}
	addInputFlags(solveCmd)

	animateCmd := &cobra.Command{
		Use:   "animate",
		Short: "print the approach trajectory",
		RunE:  animate,
	}
	addInputFlags(animateCmd)
	animateCmd.Flags().IntVar(&samples, "samples", 0, "number of samples (default from config)")
	animateCmd.Flags().BoolVar(&csvOut, "csv", false, "write csv instead of a table")

	submitCmd := &cobra.Command{
		Use:   "submit [hypothesis]",
		Short: "record a hypothesis for the current inputs",
		Args:  cobra.ArbitraryArgs,
		RunE:  submit,
	}
	addInputFlags(submitCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export inputs, results and trajectory as json",
		RunE:  exportJSON,
	}
	addInputFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVarP(&outFile, "output", "o", "", "output file (default stdout)")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "export one rendered frame as svg",
		RunE:  exportSVG,
	}
	addInputFlags(svgCmd)
	svgCmd.Flags().IntVar(&frameIndex, "frame", 0, "frame index")
	svgCmd.Flags().BoolVar(&plotOnly, "plot", false, "plot positions against time instead")
	svgCmd.Flags().StringVarP(&outFile, "output", "o", "frame.svg", "output file")

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "export the animation as gif",
		RunE:  exportGIF,
	}
	addInputFlags(gifCmd)
	gifCmd.Flags().StringVarP(&outFile, "output", "o", viz.GIFPath, "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init-config",
		Short: "write the default configuration",
		RunE:  initConfig,
	}
	initCmd.Flags().StringVarP(&outFile, "output", "o", "collide.yaml", "output file")
	initCmd.Flags().StringVar(&preset, "preset", "", "start from this preset")

	rootCmd.AddCommand(tuiCmd, solveCmd, animateCmd, submitCmd, exportJSONCmd, svgCmd, gifCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass1, "m1", config.DefaultMass1, "mass of particle 1 (kg)")
	cmd.Flags().Float64Var(&velocity1, "v1", config.DefaultVelocity1, "velocity of particle 1 (m/s)")
	cmd.Flags().Float64Var(&mass2, "m2", config.DefaultMass2, "mass of particle 2 (kg)")
	cmd.Flags().Float64Var(&velocity2, "v2", config.DefaultVelocity2, "velocity of particle 2 (m/s)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadConfig builds the configuration: the config file or defaults, then
// the preset, then any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		if !cfg.ApplyPreset(preset) {
			return nil, fmt.Errorf("unknown preset: %s (see 'collide presets')", preset)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("m1") {
		cfg.Particles.Mass1 = mass1
	}
	if flags.Changed("v1") {
		cfg.Particles.Velocity1 = velocity1
	}
	if flags.Changed("m2") {
		cfg.Particles.Mass2 = mass2
	}
	if flags.Changed("v2") {
		cfg.Particles.Velocity2 = velocity2
	}
	if flags.Changed("log") || configFile == "" {
		cfg.LogPath = logPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger and experiment.
func setup(cmd *cobra.Command) (*config.Config, *experiment.Experiment, *zap.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := logging.New(logLevel, logFile)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, experiment.New(cfg, logger), logger, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.NewQuiet(logLevel, logFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("starting lab", zap.String("log", cfg.LogPath), zap.String("theme", cfg.Theme))
	sub := hypothesis.NewSubmitter(hypothesis.NewLog(cfg.LogPath, logger), logger)
	return viz.RunInteractive(experiment.New(cfg, logger), sub, logger)
}
