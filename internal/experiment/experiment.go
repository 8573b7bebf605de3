package experiment

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/collide/internal/collision"
	"github.com/san-kum/collide/internal/config"
	"github.com/san-kum/collide/internal/metrics"
	"github.com/san-kum/collide/internal/trajectory"
)

// Inputs are the four numbers a user controls.
type Inputs struct {
	Particle1 collision.Particle `json:"particle1"`
	Particle2 collision.Particle `json:"particle2"`
}

// InputsFromConfig reads the configured particle pair.
func InputsFromConfig(cfg *config.Config) Inputs {
	p1, p2 := cfg.ParticlePair()
	return Inputs{Particle1: p1, Particle2: p2}
}

// Run is one full recomputation for a set of inputs.
type Run struct {
	Inputs     Inputs                `json:"inputs"`
	Result     collision.Result      `json:"result"`
	Trajectory trajectory.Trajectory `json:"trajectory"`
}

// Conservation returns the momentum and energy report of the run.
func (r *Run) Conservation() []metrics.Quantity {
	return metrics.Conservation(r.Inputs.Particle1, r.Inputs.Particle2, r.Result)
}

// Experiment recomputes runs against a fixed animation setup.
type Experiment struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New returns an experiment over cfg, or DefaultConfig when cfg is nil.
func New(cfg *config.Config, logger *zap.Logger) *Experiment {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Experiment{cfg: cfg, logger: logger}
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// Run validates in, solves the collision and samples the approach.
func (e *Experiment) Run(in Inputs) (*Run, error) {
	if err := config.ValidateParticles(in.Particle1, in.Particle2); err != nil {
		return nil, err
	}

	res, err := collision.Solve(in.Particle1, in.Particle2)
	if err != nil {
		return nil, err
	}

	traj, err := e.cfg.TrajectorySpec().Animate(in.Particle1.Velocity, in.Particle2.Velocity, e.cfg.Animation.Samples)
	if err != nil {
		return nil, fmt.Errorf("experiment: %w", err)
	}

	e.logger.Debug("run computed",
		zap.Float64("mass1", in.Particle1.Mass),
		zap.Float64("velocity1", in.Particle1.Velocity),
		zap.Float64("mass2", in.Particle2.Mass),
		zap.Float64("velocity2", in.Particle2.Velocity),
		zap.Float64("velocity1_final", res.Velocity1Final),
		zap.Float64("velocity2_final", res.Velocity2Final),
		zap.Int("frames", len(traj)),
	)

	return &Run{Inputs: in, Result: res, Trajectory: traj}, nil
}
