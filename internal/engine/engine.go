// Package engine replays acceleration traces through a motion.State.
//
// A run takes either an explicit list of samples (ax, ay, dt), applied in order,
// or a constant tilt that is applied every time_step seconds for run_time seconds.
// Either way the log holds one row per sample with the resulting ball state.
package engine

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cxd309/tilt-engine/internal/kinematics"
	"github.com/cxd309/tilt-engine/internal/motion"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"sigs.k8s.io/yaml"
)

// MaxSamples bounds the rows of a single run, whether listed or generated from a tilt.
const MaxSamples = 1_000_000

// NewSim validates input and constructs a Sim with a fresh, unprimed ball.
// A nil logger disables logging.
func NewSim(input SimulationInput, logger *zap.Logger) (*Sim, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := validateField(input.Field); err != nil {
		return nil, fmt.Errorf("field: %w", err)
	}

	integrator, err := kinematics.ByName(input.Meta.Model)
	if err != nil {
		return nil, fmt.Errorf("simulation_meta: %w", err)
	}

	samples := input.Samples
	if len(samples) > MaxSamples {
		return nil, fmt.Errorf("samples: %d exceeds the limit of %d", len(samples), MaxSamples)
	}
	if len(samples) == 0 {
		samples, err = constantTilt(input.Meta, input.Tilt)
		if err != nil {
			return nil, fmt.Errorf("simulation_meta: %w", err)
		}
	}

	meta := input.Meta
	if meta.SimulationID == "" {
		meta.SimulationID = uuid.NewString()
	}

	f := input.Field
	return &Sim{
		meta:    meta,
		field:   f,
		samples: samples,
		ball:    motion.New(f.Width, f.Height, f.BallSize, motion.WithIntegrator(integrator)),
		log:     logger.With(zap.String("simulation_id", meta.SimulationID)),
	}, nil
}

// validateField rejects fields the motion state would silently misbehave on.
func validateField(f Field) error {
	switch {
	case f.Width <= 0:
		return fmt.Errorf("width must be positive, got %v", f.Width)
	case f.Height <= 0:
		return fmt.Errorf("height must be positive, got %v", f.Height)
	case f.BallSize <= 0:
		return fmt.Errorf("ball_size must be positive, got %v", f.BallSize)
	case f.BallSize > f.Width || f.BallSize > f.Height:
		return fmt.Errorf("ball_size %v does not fit a %vx%v field", f.BallSize, f.Width, f.Height)
	}
	return nil
}

// constantTilt expands a tilt into samples at t = 0, dt, 2dt, ... <= run_time.
func constantTilt(meta SimulationMeta, tilt Tilt) ([]Sample, error) {
	if meta.TimeStep <= 0 {
		return nil, fmt.Errorf("time_step must be positive without samples, got %v", meta.TimeStep)
	}
	if meta.RunTime < 0 {
		return nil, fmt.Errorf("run_time must not be negative, got %v", meta.RunTime)
	}

	n := math.Floor(meta.RunTime/meta.TimeStep) + 1
	if !(n <= MaxSamples) {
		return nil, fmt.Errorf("run_time %v / time_step %v needs %v samples, limit is %d",
			meta.RunTime, meta.TimeStep, n, MaxSamples)
	}

	samples := make([]Sample, int(n))
	for i := range samples {
		samples[i] = Sample{AX: tilt.AX, AY: tilt.AY, DT: meta.TimeStep}
	}
	return samples, nil
}

// Run executes the full trace and returns the log.
func (s *Sim) Run() SimulationLog {
	s.log.Debug("starting simulation",
		zap.Int("samples", len(s.samples)),
		zap.Float64("width", s.field.Width),
		zap.Float64("height", s.field.Height),
		zap.Float64("ball_size", s.field.BallSize),
	)

	log := SimulationLog{
		Meta:   s.meta,
		Field:  s.field,
		Output: make([]SimulationLogRow, 0, len(s.samples)),
	}
	for i, sample := range s.samples {
		log.Output = append(log.Output, s.step(i, sample))
	}

	x, y := s.ball.Position()
	s.log.Info("simulation finished",
		zap.Int("steps", len(log.Output)),
		zap.Float64("elapsed", s.curTime),
		zap.Float64("x", x),
		zap.Float64("y", y),
	)
	return log
}

// step applies one sample and returns the resulting log row.
func (s *Sim) step(i int, sample Sample) SimulationLogRow {
	if sample.Reset {
		s.ball.Reset()
		s.log.Debug("ball reset", zap.Int("step", i))
	}

	// Only integration steps advance the clock; the warm-up and dt <= 0 are ignored
	// by the ball and so are ignored here too.
	integrates := s.ball.Primed() && sample.DT > 0
	s.ball.Update(sample.AX, sample.AY, sample.DT)
	if integrates {
		s.curTime += sample.DT
	}

	if c := s.ball.Contacts(); integrates && c != 0 {
		s.log.Debug("wall contact", zap.Int("step", i), zap.Stringer("walls", c))
	}
	return SimulationLogRow{Step: i, Timestamp: s.curTime, State: s.ball.Snapshot()}
}

// RunJSON accepts a JSON-encoded SimulationInput, runs the simulation, and returns
// a JSON-encoded SimulationLog. It is the entry point for the CLI and WASM targets.
func RunJSON(jsonInput string, logger *zap.Logger) (string, error) {
	var input SimulationInput
	if err := json.Unmarshal([]byte(jsonInput), &input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}
	return run(input, logger)
}

// RunYAML is RunJSON for YAML input. Field names are the same as in JSON.
func RunYAML(yamlInput string, logger *zap.Logger) (string, error) {
	var input SimulationInput
	if err := yaml.Unmarshal([]byte(yamlInput), &input); err != nil {
		return "", fmt.Errorf("invalid input YAML: %w", err)
	}
	return run(input, logger)
}

func run(input SimulationInput, logger *zap.Logger) (string, error) {
	sim, err := NewSim(input, logger)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(sim.Run())
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}
