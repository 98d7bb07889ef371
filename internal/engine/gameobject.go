package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// uidCounter hands out UIDs for both GameObjects and Components. UIDs are
// never reused, so a stale handle can never resolve to a different object.
var uidCounter atomic.Uint64

func nextUID() uint64 {
	return uidCounter.Add(1)
}

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

type GameObject struct {
	UID        uint64
	Name       string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
	destroyed  bool

	// Cached local matrix, rebuilt when the transform is marked dirty
	localMatrix    rl.Matrix
	transformDirty bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:    nextUID(),
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components:     make([]Component, 0),
		Children:       make([]*GameObject, 0),
		transformDirty: true,
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	if c.UID() == 0 {
		c.SetUID(nextUID())
	}
	g.components = append(g.components, c)
}

// RemoveComponent detaches c from the object. Handles to it stop resolving.
func (g *GameObject) RemoveComponent(c Component) bool {
	for i, existing := range g.components {
		if existing == c {
			g.components = append(g.components[:i], g.components[i+1:]...)
			c.SetGameObject(nil)
			return true
		}
	}
	return false
}

// ComponentByUID returns the attached component with the given UID, or nil.
func (g *GameObject) ComponentByUID(uid uint64) Component {
	if uid == 0 {
		return nil
	}
	for _, c := range g.components {
		if c.UID() == uid {
			return c
		}
	}
	return nil
}

// GetComponent returns the first component of type T, or the zero value
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active || g.destroyed {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) Destroyed() bool {
	return g.destroyed
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
	child.MarkTransformDirty()
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			child.MarkTransformDirty()
			return
		}
	}
}

// MarkTransformDirty invalidates the cached matrix of this object and its children.
func (g *GameObject) MarkTransformDirty() {
	g.transformDirty = true
	for _, c := range g.Children {
		c.MarkTransformDirty()
	}
}

func (g *GameObject) TransformDirty() bool {
	return g.transformDirty
}

// LocalMatrix returns scale, then rotation X/Y/Z, then translation.
func (g *GameObject) LocalMatrix() rl.Matrix {
	if !g.transformDirty {
		return g.localMatrix
	}
	t := g.Transform
	scale := rl.MatrixScale(t.Scale.X, t.Scale.Y, t.Scale.Z)
	rotX := rl.MatrixRotateX(t.Rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(t.Rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(t.Rotation.Z * rl.Deg2rad)
	rot := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
	trans := rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z)

	g.localMatrix = rl.MatrixMultiply(rl.MatrixMultiply(scale, rot), trans)
	g.transformDirty = false
	return g.localMatrix
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	// X then Y then Z, same as LocalMatrix
	rx := float64(parentRot.X) * math.Pi / 180
	ry := float64(parentRot.Y) * math.Pi / 180
	rz := float64(parentRot.Z) * math.Pi / 180
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	rotated := rl.Vector3Transform(scaled, rotMatrix)
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
