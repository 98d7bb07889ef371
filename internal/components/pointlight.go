package components

import (
	"mirgo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxLightRadius = 50

type PointLight struct {
	engine.BaseComponent
	Color     rl.Vector3 // linear RGB, 0..1
	Intensity float32
	Radius    float32 // falloff distance

	// Premultiplied color handed to the shader, refreshed on edit
	shaderColor [3]float32
}

func NewPointLight() *PointLight {
	p := &PointLight{
		Color:     rl.Vector3{X: 1, Y: 1, Z: 1},
		Intensity: 1.0,
		Radius:    10.0,
	}
	p.refresh()
	return p
}

func (p *PointLight) TypeName() string {
	return "PointLight"
}

// OnEditApplied implements engine.EditListener
func (p *PointLight) OnEditApplied(label string) {
	p.refresh()
}

func (p *PointLight) refresh() {
	p.Color = rl.Vector3Clamp(p.Color, rl.Vector3Zero(), rl.Vector3One())
	if p.Intensity < 0 {
		p.Intensity = 0
	}
	if p.Radius < 0 {
		p.Radius = 0
	}
	if p.Radius > maxLightRadius {
		p.Radius = maxLightRadius
	}
	p.shaderColor = [3]float32{
		p.Color.X * p.Intensity,
		p.Color.Y * p.Intensity,
		p.Color.Z * p.Intensity,
	}
}

func (p *PointLight) GetPosition() rl.Vector3 {
	if g := p.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return rl.Vector3Zero()
}

// GetColorFloat returns the intensity-scaled color as of the last refresh.
func (p *PointLight) GetColorFloat() []float32 {
	return p.shaderColor[:]
}
