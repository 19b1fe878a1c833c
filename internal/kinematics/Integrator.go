// Package kinematics defines the Integrator interface that advances one axis of a
// point mass across a timestep, along with built-in implementations.
//
// Adding a new scheme requires only implementing Integrator and registering its
// name in ByName; the motion state never needs to change.
package kinematics

import "fmt"

// Integrator is the contract every step scheme must satisfy.
// Units are whatever the caller renders in; time must be consistent throughout.
type Integrator interface {
	// Step advances one axis over dt seconds given the velocity v0 at the start of
	// the step, the acceleration a0 sampled at the start and a1 sampled at the end.
	// Returns (position delta, new velocity).
	Step(v0, a0, a1, dt float64) (dp, v1 float64)
}

// ByName resolves a model name to its Integrator. The empty name selects Hermite.
func ByName(name string) (Integrator, error) {
	switch name {
	case "", HermiteModelName:
		return Hermite{}, nil
	case ConstantModelName:
		return ConstantAcceleration{}, nil
	default:
		return nil, fmt.Errorf("unknown kinematics model %q", name)
	}
}
