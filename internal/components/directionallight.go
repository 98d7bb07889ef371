package components

import (
	"mirgo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var defaultLightDir = rl.Vector3{X: 0.35, Y: -1.0, Z: -0.35}

type DirectionalLight struct {
	engine.BaseComponent
	Direction rl.Vector3
	Color     rl.Vector3 // linear RGB, 0..1
	Intensity float32
}

func NewDirectionalLight() *DirectionalLight {
	return &DirectionalLight{
		Direction: rl.Vector3Normalize(defaultLightDir),
		Color:     rl.Vector3One(),
		Intensity: 1.0,
	}
}

func (l *DirectionalLight) TypeName() string {
	return "DirectionalLight"
}

// OnEditApplied implements engine.EditListener. Direction is kept unit length;
// a zeroed direction falls back to the default.
func (l *DirectionalLight) OnEditApplied(label string) {
	if rl.Vector3Length(l.Direction) < 1e-6 {
		l.Direction = defaultLightDir
	}
	l.Direction = rl.Vector3Normalize(l.Direction)
	if l.Intensity < 0 {
		l.Intensity = 0
	}
}

func (l *DirectionalLight) GetColorFloat() []float32 {
	return []float32{
		l.Color.X * l.Intensity,
		l.Color.Y * l.Intensity,
		l.Color.Z * l.Intensity,
		1.0,
	}
}
