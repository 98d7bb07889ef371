package editor

import (
	"fmt"
	"math"

	"mirgo/internal/editvalue"
	"mirgo/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	toolbarHeight   = 36
	hierarchyWidth  = 220
	inspectorWidth  = 340
	historyHeight   = 260
	rowHeight       = 22
	fieldHeight     = 24
	inspectorIndent = 12
	labelWidth      = 90
)

// Editor draws the editing panels over a Context and turns widget
// interaction into edit sessions.
type Editor struct {
	ctx *Context

	selection engine.GameObjectRef

	fields          fieldState
	hierarchyScroll int32
	inspectorScroll int32
	historyScroll   int32

	gizmoMode   GizmoMode
	hoveredAxis int
	drag        gizmoDrag
}

func NewEditor(ctx *Context) *Editor {
	return &Editor{ctx: ctx, hoveredAxis: -1}
}

// Selected resolves the selection against the scene; it is nil once the
// object is destroyed.
func (e *Editor) Selected() *engine.GameObject {
	if !e.selection.IsValid() {
		return nil
	}
	return e.selection.Get(e.ctx.Scene)
}

// Select changes the selection, abandoning an edit in progress on the old one.
func (e *Editor) Select(obj *engine.GameObject) {
	if obj == e.Selected() {
		return
	}
	if e.ctx.Session.IsCapturing() {
		e.ctx.AbandonFieldEdit()
	}
	e.fields = fieldState{}
	e.drag = gizmoDrag{}
	e.selection.Set(obj)
	e.inspectorScroll = 0
}

// Update handles keyboard input that is not tied to a widget.
func (e *Editor) Update() {
	e.ctx.HandleShortcuts(RaylibInput{})

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) ||
		rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)
	typing := e.fields.activeInputID != ""

	if sel := e.Selected(); sel != nil && ctrl && rl.IsKeyPressed(rl.KeyBackspace) && !typing {
		e.drag = gizmoDrag{}
		e.ctx.Destroy(sel)
		e.selection.Clear()
	}

	if !ctrl && !typing && !e.drag.active {
		switch {
		case rl.IsKeyPressed(rl.KeyW):
			e.gizmoMode = GizmoMove
		case rl.IsKeyPressed(rl.KeyE):
			e.gizmoMode = GizmoRotate
		case rl.IsKeyPressed(rl.KeyR):
			e.gizmoMode = GizmoScale
		}
	}
}

// UpdateViewport handles gizmo drags and click selection in the 3D view.
func (e *Editor) UpdateViewport(cam rl.Camera3D) {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), cam)
	sel := e.Selected()

	if e.drag.active {
		if sel == nil || !e.ctx.Session.IsCapturing() {
			e.drag = gizmoDrag{}
			return
		}
		if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
			e.drag = gizmoDrag{}
			e.ctx.EndGizmoDrag()
			return
		}
		if delta, ok := e.drag.delta(ray); ok {
			e.ctx.DragGizmo(e.gizmoMode, e.drag.axis, delta)
		}
		return
	}

	e.hoveredAxis = -1
	if sel != nil {
		e.hoveredAxis = pickGizmoAxis(e.gizmoMode, sel.WorldPosition(), ray)
	}

	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) || e.mouseInPanel() || e.fields.activeInputID != "" {
		return
	}
	if sel != nil && e.hoveredAxis >= 0 && e.ctx.BeginGizmoDrag(sel, e.gizmoMode) {
		e.drag = startGizmoDrag(e.hoveredAxis, sel.WorldPosition(), ray, cam.Position)
		return
	}
	e.Select(pickObject(e.ctx.Scene, ray))
}

// Draw3D draws the selection and its gizmo. Call inside BeginMode3D.
func (e *Editor) Draw3D() {
	sel := e.Selected()
	if sel == nil {
		return
	}
	pos := sel.WorldPosition()
	rl.DrawCubeWiresV(pos, rl.Vector3Scale(sel.WorldScale(), 1.05), rl.Yellow)
	highlight := e.hoveredAxis
	if e.drag.active {
		highlight = e.drag.axis
	}
	drawGizmo(e.gizmoMode, pos, highlight)
}

func (e *Editor) mouseInPanel() bool {
	m := rl.GetMousePosition()
	screenW := float32(rl.GetScreenWidth())
	return m.Y < toolbarHeight || m.X < hierarchyWidth || m.X > screenW-inspectorWidth
}

// pickObject returns the object whose bounds ray hits first, or nil.
func pickObject(scene *engine.Scene, ray rl.Ray) *engine.GameObject {
	var best *engine.GameObject
	bestDist := float32(math.MaxFloat32)
	for _, g := range scene.GameObjects {
		if !g.Active {
			continue
		}
		pos := g.WorldPosition()
		half := rl.Vector3Scale(g.WorldScale(), 0.5)
		hit := rl.GetRayCollisionBox(ray, rl.BoundingBox{
			Min: rl.Vector3Subtract(pos, half),
			Max: rl.Vector3Add(pos, half),
		})
		if hit.Hit && hit.Distance < bestDist {
			bestDist = hit.Distance
			best = g
		}
	}
	return best
}

// Draw renders all panels. Call between BeginDrawing and EndDrawing.
func (e *Editor) Draw() {
	e.drawToolbar()
	e.drawHierarchy()
	e.drawHistoryPanel()
	e.drawInspector()
}

func (e *Editor) drawToolbar() {
	screenW := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, screenW, toolbarHeight, colorBgDark)
	rl.DrawRectangle(0, toolbarHeight-1, screenW, 1, colorBgHover)

	title := e.ctx.Config.Window.Title
	if e.ctx.SceneDirty {
		title += " *"
	}
	drawText(title, 12, 10, 16, colorTextPrimary)

	// Widgets drop their in-progress state so they cannot write a stale value
	// back over the replayed one.
	x := int32(220)
	if e.toolbarButton(x, 6, 70, 24, "Undo", e.ctx.History.CanUndo() && !e.drag.active) {
		e.fields = fieldState{}
		e.ctx.Undo()
	}
	if e.toolbarButton(x+78, 6, 70, 24, "Redo", e.ctx.History.CanRedo() && !e.drag.active) {
		e.fields = fieldState{}
		e.ctx.Redo()
	}

	modeX := x + 170
	for m := GizmoMove; m <= GizmoScale; m++ {
		label := m.String()
		if m == e.gizmoMode {
			label = "[" + label + "]"
		}
		if e.toolbarButton(modeX, 6, 80, 24, label, !e.drag.active) {
			e.gizmoMode = m
		}
		modeX += 86
	}

	status := fmt.Sprintf("%d / %d", e.ctx.History.AppliedCount(), e.ctx.History.Len())
	if e.ctx.Session.IsPendingCommit() {
		status += "  (editing)"
	}
	drawText(status, modeX+12, 11, 14, colorTextMuted)
}

func (e *Editor) toolbarButton(x, y, w, h int32, label string, enabled bool) bool {
	bounds := rect(x, y, w, h)
	hovered := enabled && mouseIn(bounds)
	bg := colorBgElement
	text := colorTextSecondary
	if !enabled {
		text = colorTextMuted
	} else if hovered {
		bg = colorBgHover
		text = colorTextPrimary
	}
	rl.DrawRectangleRounded(bounds, 0.3, 4, bg)
	textW := rl.MeasureText(label, 14)
	drawText(label, x+(w-textW)/2, y+5, 14, text)
	return hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (e *Editor) drawHierarchy() {
	x, y := int32(0), int32(toolbarHeight)
	h := int32(rl.GetScreenHeight()) - toolbarHeight - historyHeight
	rl.DrawRectangle(x, y, hierarchyWidth, h, colorBgPanel)
	drawText("Hierarchy", x+12, y+8, 14, colorTextMuted)

	bounds := rect(x, y, hierarchyWidth, h)
	if mouseIn(bounds) {
		e.hierarchyScroll -= int32(rl.GetMouseWheelMove() * rowHeight)
		if e.hierarchyScroll < 0 {
			e.hierarchyScroll = 0
		}
	}

	rl.BeginScissorMode(x, y+28, hierarchyWidth, h-28)
	rowY := y + 28 - e.hierarchyScroll
	for _, g := range e.ctx.Scene.GameObjects {
		if g.Parent != nil {
			continue
		}
		rowY = e.drawHierarchyRow(g, 0, rowY)
	}
	rl.EndScissorMode()
}

func (e *Editor) drawHierarchyRow(g *engine.GameObject, depth int32, y int32) int32 {
	row := rect(0, y, hierarchyWidth, rowHeight)
	if g == e.Selected() {
		rl.DrawRectangleRec(row, colorSelection)
	} else if mouseIn(row) {
		rl.DrawRectangleRec(row, colorBgHover)
	}
	if mouseIn(row) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		e.Select(g)
	}
	color := colorTextSecondary
	if !g.Active {
		color = colorTextMuted
	}
	drawText(g.Name, 16+depth*14, y+4, 14, color)
	y += rowHeight
	for _, child := range g.Children {
		y = e.drawHierarchyRow(child, depth+1, y)
	}
	return y
}

func (e *Editor) drawHistoryPanel() {
	x := int32(0)
	y := int32(rl.GetScreenHeight()) - historyHeight
	rl.DrawRectangle(x, y, hierarchyWidth, historyHeight, colorBgPanel)
	rl.DrawRectangle(x, y, hierarchyWidth, 1, colorBgHover)
	drawText("History", x+12, y+8, 14, colorTextMuted)

	bounds := rect(x, y, hierarchyWidth, historyHeight)
	if mouseIn(bounds) {
		e.historyScroll -= int32(rl.GetMouseWheelMove() * rowHeight)
		if e.historyScroll < 0 {
			e.historyScroll = 0
		}
	}

	rl.BeginScissorMode(x, y+28, hierarchyWidth, historyHeight-28)
	rowY := y + 28 - e.historyScroll
	for _, row := range HistoryRows(e.ctx.History) {
		r := rect(x, rowY, hierarchyWidth, rowHeight)
		switch row.Kind {
		case RowHead:
			drawText(row.Text, x+12, rowY+4, 13, colorAccentLight)
		default:
			color := colorTextSecondary
			switch {
			case row.Inert:
				color = colorTextMuted
			case row.Kind == RowEntry && !row.Applied:
				color = rl.Fade(colorTextSecondary, 0.5)
			}
			if mouseIn(r) {
				rl.DrawRectangleRec(r, colorBgHover)
				if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !e.drag.active {
					e.fields = fieldState{}
					e.ctx.SelectHistoryRow(row)
					if obj := row.Owner.Object().Get(e.ctx.Scene); obj != nil {
						e.Select(obj)
					}
				}
			}
			drawText(row.Text, x+12, rowY+4, 13, color)
		}
		rowY += rowHeight
	}
	rl.EndScissorMode()
}

func (e *Editor) drawInspector() {
	screenW := int32(rl.GetScreenWidth())
	x, y := screenW-inspectorWidth, int32(toolbarHeight)
	h := int32(rl.GetScreenHeight()) - toolbarHeight
	rl.DrawRectangle(x, y, inspectorWidth, h, colorBgPanel)
	rl.DrawRectangle(x, y, 1, h, colorBgHover)

	sel := e.Selected()
	if sel == nil {
		drawText("No selection", x+inspectorIndent, y+12, 14, colorTextMuted)
		return
	}
	drawText(sel.Name, x+inspectorIndent, y+10, 18, colorTextPrimary)

	bounds := rect(x, y, inspectorWidth, h)
	if mouseIn(bounds) && e.fields.activeInputID == "" {
		e.inspectorScroll -= int32(rl.GetMouseWheelMove() * rowHeight)
		if e.inspectorScroll < 0 {
			e.inspectorScroll = 0
		}
	}

	rl.BeginScissorMode(x, y+36, inspectorWidth, h-36)
	rowY := y + 40 - e.inspectorScroll
	for si, section := range Inspect(sel) {
		if e.drawSectionHeader(x, rowY, si, section) {
			break
		}
		rowY += rowHeight + 4
		for fi, field := range section.Fields {
			id := fmt.Sprintf("%d.%d", si, fi)
			e.drawField(x+inspectorIndent, rowY, id, section, field)
			rowY += fieldHeight + 4
		}
		rowY += 8
	}
	rl.EndScissorMode()
}

// drawSectionHeader draws a section title. Component headers carry a rename
// field and a remove button; it returns true when the component was removed.
func (e *Editor) drawSectionHeader(x, y int32, si int, section Section) bool {
	rl.DrawRectangle(x+6, y, inspectorWidth-12, rowHeight, colorBgElement)
	drawText(section.Title, x+inspectorIndent, y+4, 14, colorAccentLight)
	if section.Component == nil {
		return false
	}

	renamer, ok := section.Component.(engine.Renamer)
	if ok {
		id := fmt.Sprintf("rename.%d", si)
		name, event := e.drawTextField(x+inspectorWidth-150, y, 110, rowHeight, id, renamer.GetCustomName())
		if event == fieldEnded {
			e.ctx.RenameComponent(section, name)
		}
	}
	if e.toolbarButton(x+inspectorWidth-34, y, 24, rowHeight, "x", !e.ctx.Session.IsCapturing()) {
		e.fields = fieldState{}
		return e.ctx.RemoveComponent(section)
	}
	return false
}

// drawField draws one labeled field and maps widget events onto the edit
// session: begin on press, live writes while scrubbing, commit on release.
func (e *Editor) drawField(x, y int32, id string, section Section, field editvalue.NamedRef) {
	drawText(field.Label, x, y+5, 14, colorTextSecondary)
	fx := x + labelWidth
	fw := int32(inspectorWidth) - labelWidth - inspectorIndent*2

	// A widget still open after its capture was settled elsewhere starts a new one.
	if e.fields.owns(id) && !e.capturing(field) {
		e.ctx.BeginFieldEdit(section, field)
	}

	current := field.Ref.Read()
	switch current.Kind() {
	case editvalue.Bool:
		b, _ := editvalue.As[bool](current)
		if next := gui.CheckBox(rect(fx, y+3, 18, 18), "", b); next != b {
			e.ctx.SetField(section, field, editvalue.ValueOf(next))
		}

	case editvalue.String:
		s, _ := editvalue.As[string](current)
		next, event := e.drawTextField(fx, y, fw, fieldHeight, id, s)
		e.applyFieldEvent(section, field, event, editvalue.ValueOf(next))

	default:
		n := componentCount(current.Kind())
		if n == 0 {
			return
		}
		gap := int32(4)
		cw := (fw - gap*int32(n-1)) / int32(n)
		for i := 0; i < n; i++ {
			next, event := e.drawNumberField(fx+int32(i)*(cw+gap), y, cw, fieldHeight, fmt.Sprintf("%s.%d", id, i), current, i)
			if event == fieldIdle && next.Equal(current) {
				continue
			}
			current = next
			e.applyFieldEvent(section, field, event, current)
		}
	}
}

func (e *Editor) capturing(field editvalue.NamedRef) bool {
	p := e.ctx.Session.Pending()
	return p != nil && p.Ref.Same(field.Ref)
}

// applyFieldEvent feeds one widget result into the session. The press only
// opens the capture; values are written on later frames.
func (e *Editor) applyFieldEvent(section Section, field editvalue.NamedRef, event fieldEvent, v editvalue.Value) {
	switch event {
	case fieldBegan:
		e.ctx.BeginFieldEdit(section, field)
		return
	case fieldCanceled:
		e.ctx.AbandonFieldEdit()
		e.ctx.Touch(section, field.Label)
		return
	}
	if !e.capturing(field) {
		return
	}
	if !field.Ref.Read().Equal(v) {
		if err := field.Ref.Write(v); err != nil {
			return
		}
		e.ctx.Touch(section, field.Label)
	}
	if event == fieldEnded {
		e.ctx.EndFieldEdit()
	}
}
