package engine

import (
	"github.com/cxd309/tilt-engine/internal/motion"
	"go.uber.org/zap"
)

// SimulationMeta holds the identity, step model and timing parameters for a run.
type SimulationMeta struct {
	SimulationID string  `json:"simulation_id"`
	Model        string  `json:"model,omitempty"`     // kinematics model name, "hermite" when empty
	RunTime      float64 `json:"run_time,omitempty"`  // seconds, constant-tilt runs only
	TimeStep     float64 `json:"time_step,omitempty"` // seconds, constant-tilt runs only
}

// Field is the rectangle the ball lives in. Units are the caller's (pixels, cells).
type Field struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	BallSize float64 `json:"ball_size"`
}

// Sample is one frame of driver input.
type Sample struct {
	AX float64 `json:"ax"`
	AY float64 `json:"ay"`
	DT float64 `json:"dt"` // seconds since the previous sample
	// Reset restarts the ball before this sample, which then becomes the warm-up.
	Reset bool `json:"reset,omitempty"`
}

// Tilt is a constant acceleration applied every step when no samples are given.
type Tilt struct {
	AX float64 `json:"ax"`
	AY float64 `json:"ay"`
}

// SimulationInput is the JSON-serialisable input to the engine.
type SimulationInput struct {
	Meta    SimulationMeta `json:"simulation_meta"`
	Field   Field          `json:"field"`
	Tilt    Tilt           `json:"tilt"`
	Samples []Sample       `json:"samples,omitempty"`
}

// SimulationLogRow is the ball state after a single sample.
type SimulationLogRow struct {
	Step      int             `json:"step"`
	Timestamp float64         `json:"timestamp"` // seconds, sum of applied dts
	State     motion.Snapshot `json:"state"`
}

// SimulationLog is the complete output of a simulation run.
type SimulationLog struct {
	Meta   SimulationMeta     `json:"simulation_meta"`
	Field  Field              `json:"field"`
	Output []SimulationLogRow `json:"output"`
}

// Sim drives one ball through a sample trace.
type Sim struct {
	meta    SimulationMeta
	field   Field
	samples []Sample
	ball    *motion.State
	curTime float64
	log     *zap.Logger
}
