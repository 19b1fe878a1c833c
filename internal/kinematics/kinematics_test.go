package kinematics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHermiteStep(t *testing.T) {
	tests := []struct {
		name           string
		v0, a0, a1, dt float64
		wantDp, wantV1 float64
	}{
		{"at rest", 0, 0, 0, 1, 0, 0},
		{"coasting", 3, 0, 0, 2, 6, 3},
		{"ramp from zero", 0, 0, 10, 1, 10.0 / 6, 5},
		{"held acceleration", 0, 6, 6, 1, 4, 6},
		{"braking", 4, -2, -2, 0.5, 4*0.5 + (0.25/6)*(-8), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dp, v1 := Hermite{}.Step(tt.v0, tt.a0, tt.a1, tt.dt)
			assert.InDelta(t, tt.wantDp, dp, 1e-12)
			assert.InDelta(t, tt.wantV1, v1, 1e-12)
		})
	}
}

func TestConstantAccelerationStep(t *testing.T) {
	dp, v1 := ConstantAcceleration{}.Step(2, 100, 4, 0.5)
	assert.InDelta(t, 2*0.5+0.5*4*0.25, dp, 1e-12)
	assert.InDelta(t, 4.0, v1, 1e-12)
}

func TestByName(t *testing.T) {
	for name, want := range map[string]Integrator{
		"":                Hermite{},
		HermiteModelName:  Hermite{},
		ConstantModelName: ConstantAcceleration{},
	} {
		got, err := ByName(name)
		require.NoError(t, err, "model %q", name)
		assert.Equal(t, want, got)
	}

	_, err := ByName("verlet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"verlet"`)
}
