package kinematics

// HermiteModelName is the JSON discriminator string for the Hermite model.
const HermiteModelName = "hermite"

// Hermite uses both endpoint accelerations: a trapezoidal velocity update and a
// third-order position update. This is the default scheme.
//
// JSON discriminator: "model": "hermite"
type Hermite struct{}

func (Hermite) Step(v0, a0, a1, dt float64) (float64, float64) {
	// v1 = v0 + 0.5*(a1 + a0)*dt
	v1 := v0 + 0.5*(a1+a0)*dt
	// dp = v0*dt + (dt^2)/6 * (3*a0 + a1)
	dp := v0*dt + (dt*dt/6)*(3*a0+a1)
	return dp, v1
}
