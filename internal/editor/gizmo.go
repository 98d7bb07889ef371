package editor

import (
	"math"

	"mirgo/internal/editvalue"
	"mirgo/internal/engine"
	"mirgo/internal/history"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type GizmoMode int

const (
	GizmoMove GizmoMode = iota
	GizmoRotate
	GizmoScale
)

var gizmoModeNames = [...]string{"Move", "Rotate", "Scale"}

func (m GizmoMode) String() string {
	if m < 0 || int(m) >= len(gizmoModeNames) {
		return "Unknown"
	}
	return gizmoModeNames[m]
}

// field is the Transform field the mode edits.
func (m GizmoMode) field() string {
	switch m {
	case GizmoRotate:
		return "Rotation"
	case GizmoScale:
		return "Scale"
	}
	return "Position"
}

const (
	gizmoLength    float32 = 2.0
	gizmoTipSize   float32 = 0.2
	gizmoHitDist   float32 = 0.3
	gizmoThickness float32 = 0.06
	gizmoMinScale  float32 = 0.1
)

var gizmoAxes = [3]rl.Vector3{
	{X: 1, Y: 0, Z: 0}, // X - red
	{X: 0, Y: 1, Z: 0}, // Y - green
	{X: 0, Y: 0, Z: 1}, // Z - blue
}

var gizmoColors = [3]rl.Color{rl.Red, rl.Green, rl.Blue}

// BeginGizmoDrag starts capturing the Transform field that mode edits on obj.
func (c *Context) BeginGizmoDrag(obj *engine.GameObject, mode GizmoMode) bool {
	if obj == nil || obj.Destroyed() {
		return false
	}
	section := Inspect(obj)[0]
	for _, f := range section.Fields {
		if f.Label == mode.field() {
			c.BeginFieldEdit(section, f)
			return true
		}
	}
	return false
}

// DragGizmo sets the captured Transform field to its value at drag start
// moved by delta along axis.
func (c *Context) DragGizmo(mode GizmoMode, axis int, delta float32) {
	p := c.Session.Pending()
	if p == nil || !p.Owner.IsTransform() || p.Label != mode.field() || axis < 0 || axis >= len(gizmoAxes) {
		return
	}
	obj, _, ok := c.Scene.ResolveComponent(p.Owner)
	if !ok {
		return
	}
	start, ok := editvalue.As[rl.Vector3](p.Before)
	if !ok {
		return
	}
	if err := p.Ref.Write(editvalue.ValueOf(gizmoValue(obj, mode, axis, start, delta))); err != nil {
		c.logger.Printf("gizmo drag: %v", err)
		return
	}
	obj.MarkTransformDirty()
	c.SceneDirty = true
}

// EndGizmoDrag commits the drag. A drag that ends where it started records nothing.
func (c *Context) EndGizmoDrag() *history.Action {
	return c.EndFieldEdit()
}

// gizmoValue applies a drag of delta world units along axis to start.
func gizmoValue(obj *engine.GameObject, mode GizmoMode, axis int, start rl.Vector3, delta float32) rl.Vector3 {
	switch mode {
	case GizmoMove:
		worldDelta := rl.Vector3Scale(gizmoAxes[axis], delta)
		if obj.Parent == nil {
			return rl.Vector3Add(start, worldDelta)
		}
		// Convert to the parent's local space: inverse rotation order Z, Y, X
		parentRot := obj.Parent.WorldRotation()
		rotZ := rl.MatrixRotateZ(-parentRot.Z * rl.Deg2rad)
		rotY := rl.MatrixRotateY(-parentRot.Y * rl.Deg2rad)
		rotX := rl.MatrixRotateX(-parentRot.X * rl.Deg2rad)
		invRot := rl.MatrixMultiply(rl.MatrixMultiply(rotZ, rotY), rotX)
		localDelta := rl.Vector3Transform(worldDelta, invRot)

		parentScale := obj.Parent.WorldScale()
		localDelta.X /= parentScale.X
		localDelta.Y /= parentScale.Y
		localDelta.Z /= parentScale.Z
		return rl.Vector3Add(start, localDelta)

	case GizmoRotate:
		// 1 unit = 45 degrees
		return withAxis(start, axis, axisOf(start, axis)+delta*45.0)

	case GizmoScale:
		factor := max(1.0+delta*0.5, gizmoMinScale)
		return withAxis(start, axis, axisOf(start, axis)*factor)
	}
	return start
}

func axisOf(v rl.Vector3, axis int) float32 {
	switch axis {
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	return v.X
}

func withAxis(v rl.Vector3, axis int, x float32) rl.Vector3 {
	switch axis {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	}
	return v
}

// pickGizmoAxis returns the index of the gizmo axis closest to ray, or -1.
func pickGizmoAxis(mode GizmoMode, center rl.Vector3, ray rl.Ray) int {
	bestDist := float32(999.0)
	bestAxis := -1

	if mode == GizmoRotate {
		radius := gizmoLength * 0.8
		ringHitDist := float32(0.4)
		for i, normal := range gizmoAxes {
			pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, center, normal)
			if !ok {
				continue
			}
			distFromCenter := rl.Vector3Length(rl.Vector3Subtract(pt, center))
			distFromRing := float32(math.Abs(float64(distFromCenter - radius)))
			if distFromRing < ringHitDist && distFromRing < bestDist {
				bestDist = distFromRing
				bestAxis = i
			}
		}
		return bestAxis
	}

	for i, axis := range gizmoAxes {
		_, t2, dist := closestPointBetweenRays(ray.Position, ray.Direction, center, axis)
		if t2 > 0 && t2 < gizmoLength && dist < gizmoHitDist && dist < bestDist {
			bestDist = dist
			bestAxis = i
		}
	}
	return bestAxis
}

// gizmoDrag tracks an axis drag in world space.
type gizmoDrag struct {
	active       bool
	axis         int
	initWorldPos rl.Vector3
	planeNormal  rl.Vector3
	startT       float32
}

func startGizmoDrag(axis int, center rl.Vector3, ray rl.Ray, eye rl.Vector3) gizmoDrag {
	d := gizmoDrag{active: true, axis: axis, initWorldPos: center}
	dir := gizmoAxes[axis]

	// Drag plane contains the axis and faces the camera as much as possible
	viewDir := rl.Vector3Normalize(rl.Vector3Subtract(center, eye))
	cross1 := rl.Vector3CrossProduct(viewDir, dir)
	d.planeNormal = rl.Vector3Normalize(rl.Vector3CrossProduct(dir, cross1))

	if pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, center, d.planeNormal); ok {
		d.startT = rl.Vector3DotProduct(rl.Vector3Subtract(pt, center), dir)
	}
	return d
}

// delta is how far along the axis ray has moved since the drag started.
func (d gizmoDrag) delta(ray rl.Ray) (float32, bool) {
	pt, ok := rayPlaneIntersect(ray.Position, ray.Direction, d.initWorldPos, d.planeNormal)
	if !ok {
		return 0, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(pt, d.initWorldPos), gizmoAxes[d.axis])
	return t - d.startT, true
}

// closestPointBetweenRays finds the closest approach between two rays.
// Returns (t1, t2, distance) where t1/t2 are parameters along each ray.
func closestPointBetweenRays(a, u, b, v rl.Vector3) (t1, t2, dist float32) {
	w := rl.Vector3Subtract(a, b)
	uu := rl.Vector3DotProduct(u, u)
	uv := rl.Vector3DotProduct(u, v)
	vv := rl.Vector3DotProduct(v, v)
	uw := rl.Vector3DotProduct(u, w)
	vw := rl.Vector3DotProduct(v, w)

	denom := uu*vv - uv*uv
	if denom < 1e-6 {
		return 0, 0, 999
	}

	t1 = (uv*vw - vv*uw) / denom
	t2 = (uu*vw - uv*uw) / denom

	p1 := rl.Vector3Add(a, rl.Vector3Scale(u, t1))
	p2 := rl.Vector3Add(b, rl.Vector3Scale(v, t2))
	dist = rl.Vector3Length(rl.Vector3Subtract(p1, p2))
	return
}

// rayPlaneIntersect returns where a ray hits a plane (defined by point + normal).
func rayPlaneIntersect(rayOrigin, rayDir, planePoint, planeNormal rl.Vector3) (rl.Vector3, bool) {
	denom := rl.Vector3DotProduct(rayDir, planeNormal)
	if math.Abs(float64(denom)) < 1e-6 {
		return rl.Vector3{}, false
	}
	t := rl.Vector3DotProduct(rl.Vector3Subtract(planePoint, rayOrigin), planeNormal) / denom
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(rayOrigin, rl.Vector3Scale(rayDir, t)), true
}

// drawGizmo draws the handles for mode at center. Call inside BeginMode3D.
func drawGizmo(mode GizmoMode, center rl.Vector3, highlight int) {
	rl.DrawRenderBatchActive()
	rl.DisableDepthTest()

	for i, axis := range gizmoAxes {
		color := gizmoColors[i]
		if i == highlight {
			color = rl.Yellow
		}
		end := rl.Vector3Add(center, rl.Vector3Scale(axis, gizmoLength))

		switch mode {
		case GizmoMove:
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			tip := rl.Vector3{X: gizmoTipSize, Y: gizmoTipSize, Z: gizmoTipSize}
			rl.DrawCubeV(end, tip, color)
		case GizmoRotate:
			segments := 16
			radius := gizmoLength * 0.8
			for s := range segments {
				t0 := float64(s) / float64(segments) * math.Pi * 2
				t1 := float64(s+1) / float64(segments) * math.Pi * 2
				p0 := ringPoint(center, i, radius, t0)
				p1 := ringPoint(center, i, radius, t1)
				rl.DrawCylinderEx(p0, p1, gizmoThickness*0.7, gizmoThickness*0.7, 6, color)
			}
		case GizmoScale:
			rl.DrawCylinderEx(center, end, gizmoThickness, gizmoThickness, 8, color)
			cubeSize := rl.Vector3{X: 0.25, Y: 0.25, Z: 0.25}
			rl.DrawCubeV(end, cubeSize, color)
			rl.DrawCubeWiresV(end, cubeSize, color)
		}
	}

	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

// ringPoint is a point on the rotation ring around axis i.
func ringPoint(center rl.Vector3, axis int, radius float32, t float64) rl.Vector3 {
	c := radius * float32(math.Cos(t))
	s := radius * float32(math.Sin(t))
	switch axis {
	case 0: // YZ plane
		return rl.Vector3{X: center.X, Y: center.Y + c, Z: center.Z + s}
	case 1: // XZ plane
		return rl.Vector3{X: center.X + c, Y: center.Y, Z: center.Z + s}
	}
	return rl.Vector3{X: center.X + c, Y: center.Y + s, Z: center.Z} // XY plane
}
