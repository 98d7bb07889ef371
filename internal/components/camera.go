package components

import (
	"math"
	"mirgo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV    float32
	Pitch  float32 // degrees, looking down is negative
	IsMain bool    // If true, the viewport renders through this camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:    45.0,
		Pitch:  -30,
		IsMain: true,
	}
}

func (c *Camera) TypeName() string {
	return "Camera"
}

// OnEditApplied implements engine.EditListener
func (c *Camera) OnEditApplied(label string) {
	c.FOV = float32(math.Max(1, math.Min(179, float64(c.FOV))))
	c.Pitch = float32(math.Max(-89, math.Min(89, float64(c.Pitch))))
}

// GetRaylibCamera looks along the object's yaw (Rotation.Y) tilted by Pitch.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	eyePos := g.WorldPosition()
	yawRad := float64(g.WorldRotation().Y) * math.Pi / 180.0
	pitchRad := float64(c.Pitch) * math.Pi / 180.0
	forward := rl.Vector3{
		X: float32(-math.Sin(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(-math.Cos(yawRad) * math.Cos(pitchRad)),
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
