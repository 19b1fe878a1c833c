package kinematics

// ConstantModelName is the JSON discriminator string for the Constant model.
const ConstantModelName = "constant"

// ConstantAcceleration holds the newest sample fixed across the whole step and
// ignores the previous one. Useful as a baseline against Hermite.
//
// JSON discriminator: "model": "constant"
type ConstantAcceleration struct{}

func (ConstantAcceleration) Step(v0, _, a1, dt float64) (float64, float64) {
	return v0*dt + 0.5*a1*dt*dt, v0 + a1*dt
}
