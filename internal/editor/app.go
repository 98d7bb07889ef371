package editor

import (
	"io"

	"mirgo/internal/components"
	"mirgo/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// App is the editor window: a demo scene, the panels and the frame loop.
type App struct {
	Context *Context
	Editor  *Editor
	camera  rl.Camera3D
}

func NewApp(cfg Config, logOut io.Writer) *App {
	ctx := NewContext(DemoScene(), cfg, logOut)
	return &App{
		Context: ctx,
		Editor:  NewEditor(ctx),
		camera: rl.Camera3D{
			Position:   rl.Vector3{X: 8, Y: 7, Z: 10},
			Target:     rl.Vector3{},
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       45.0,
			Projection: rl.CameraPerspective,
		},
	}
}

// DemoScene builds a small scene with one object per editable component.
func DemoScene() *engine.Scene {
	scene := engine.NewScene("Demo")

	crate := engine.NewGameObject("Crate")
	crate.Transform.Position = rl.Vector3{X: -2, Y: 0.5, Z: 0}
	crate.AddComponent(components.NewUndoTest())
	scene.AddGameObject(crate)

	lamp := engine.NewGameObject("Lamp")
	lamp.Transform.Position = rl.Vector3{X: 0, Y: 3, Z: 0}
	lamp.AddComponent(components.NewPointLight())
	scene.AddGameObject(lamp)

	spinner := engine.NewGameObject("Spinner")
	start := rl.Vector3{X: 2, Y: 1, Z: 0}
	spinner.Transform.Position = start
	spinner.AddComponent(components.NewCubeAnimator(start, 45, 1.5, 0.8, 0))
	scene.AddGameObject(spinner)

	sun := engine.NewGameObject("Sun")
	sun.Transform.Position = rl.Vector3{X: 0, Y: 6, Z: 0}
	sun.AddComponent(components.NewDirectionalLight())
	scene.AddGameObject(sun)

	cam := engine.NewGameObject("Main Camera")
	cam.Transform.Position = rl.Vector3{X: 0, Y: 6, Z: 12}
	camera := components.NewCamera()
	camera.Pitch = -25
	cam.AddComponent(camera)
	scene.AddGameObject(cam)

	return scene
}

// viewCamera renders through the first main Camera component, falling back
// to the fixed editor view.
func (a *App) viewCamera() rl.Camera3D {
	for _, g := range a.Context.Scene.GameObjects {
		if c := engine.GetComponent[*components.Camera](g); c != nil && c.IsMain && g.Active {
			return c.GetRaylibCamera()
		}
	}
	return a.camera
}

func (a *App) Run() {
	win := a.Context.Config.Window
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(win.TargetFPS)
	initRayguiStyle()

	a.Context.Scene.Start()
	for !rl.WindowShouldClose() {
		cam := a.viewCamera()
		a.Editor.Update()
		a.Editor.UpdateViewport(cam)
		a.Context.Scene.Update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(colorBgDark)

		rl.BeginMode3D(cam)
		rl.DrawGrid(20, 1.0)
		a.drawScene()
		a.Editor.Draw3D()
		rl.EndMode3D()

		a.Editor.Draw()
		rl.EndDrawing()
	}
}

func (a *App) drawScene() {
	for _, g := range a.Context.Scene.GameObjects {
		if !g.Active {
			continue
		}
		if light := engine.GetComponent[*components.PointLight](g); light != nil {
			pos := light.GetPosition()
			c := light.Color
			color := rl.NewColor(uint8(c.X*255), uint8(c.Y*255), uint8(c.Z*255), 255)
			rl.DrawSphere(pos, 0.15, color)
			rl.DrawSphereWires(pos, light.Radius, 8, 8, rl.Fade(color, 0.3))
			continue
		}
		if sun := engine.GetComponent[*components.DirectionalLight](g); sun != nil {
			pos := g.WorldPosition()
			c := sun.GetColorFloat()
			color := rl.NewColor(uint8(min(c[0], 1)*255), uint8(min(c[1], 1)*255), uint8(min(c[2], 1)*255), 255)
			rl.DrawSphere(pos, 0.25, color)
			rl.DrawLine3D(pos, rl.Vector3Add(pos, rl.Vector3Scale(sun.Direction, 3)), color)
			continue
		}
		if engine.GetComponent[*components.Camera](g) != nil {
			continue
		}
		color := rl.Gray
		if g == a.Editor.Selected() {
			color = colorAccent
		}
		rl.PushMatrix()
		rl.MultMatrix(g.LocalMatrix())
		rl.DrawCube(rl.Vector3{}, 1, 1, 1, color)
		rl.DrawCubeWires(rl.Vector3{}, 1, 1, 1, rl.DarkGray)
		rl.PopMatrix()
	}
}
