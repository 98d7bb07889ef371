package components

import (
	"math"
	"mirgo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CubeAnimator orbits its object around StartPosition and spins it on Y.
type CubeAnimator struct {
	engine.BaseComponent
	StartPosition   rl.Vector3
	RotationSpeed   float32
	CurrentRotation float32 `edit:"-"`
	MovementRadius  float32
	MovementSpeed   float32
	Phase           float32
	Paused          bool
	time            float32
}

func NewCubeAnimator(startPos rl.Vector3, rotSpeed, moveRadius, moveSpeed, phase float32) *CubeAnimator {
	return &CubeAnimator{
		StartPosition:  startPos,
		RotationSpeed:  rotSpeed,
		MovementRadius: moveRadius,
		MovementSpeed:  moveSpeed,
		Phase:          phase,
	}
}

func (c *CubeAnimator) TypeName() string {
	return "CubeAnimator"
}

func (c *CubeAnimator) Update(deltaTime float32) {
	g := c.GetGameObject()
	if g == nil || c.Paused {
		return
	}

	c.time += deltaTime

	t := c.time*c.MovementSpeed + c.Phase
	offset := rl.Vector3{
		X: float32(math.Cos(float64(t))) * c.MovementRadius,
		Y: float32(math.Sin(float64(t*2))) * 1.5,
		Z: float32(math.Sin(float64(t))) * c.MovementRadius,
	}

	g.Transform.Position = rl.Vector3Add(c.StartPosition, offset)

	c.CurrentRotation += c.RotationSpeed * deltaTime
	if c.CurrentRotation > 360 {
		c.CurrentRotation -= 360
	}
	g.Transform.Rotation.Y = c.CurrentRotation
	g.MarkTransformDirty()
}

// OnEditApplied implements engine.EditListener. Restarting the orbit keeps the
// object on the edited path instead of jumping mid-cycle.
func (c *CubeAnimator) OnEditApplied(label string) {
	c.time = 0
}
