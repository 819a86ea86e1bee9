package gui

import (
	"fmt"
	"image/color"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/fractanim/internal/anim"
	"github.com/san-kum/fractanim/internal/config"
	"github.com/san-kum/fractanim/internal/fractal"
	"github.com/san-kum/fractanim/internal/shade"
)

var ColBg = rl.NewColor(0, 0, 0, 255)

type App struct {
	Grid   *fractal.Grid
	Frame  *shade.Frame
	Driver *anim.Driver
	Ctrl   *anim.Controller

	Font      rl.Font
	FontSize  int
	TextColor color.RGBA
	Texture   rl.Texture2D
}

// initWindow opens a window sized to the grid, caps the frame rate and
// disables the default ESC exit key so only the close control ends the loop.
func initWindow(cfg *config.Config, w, h int) {
	rl.InitWindow(int32(w), int32(h), cfg.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

// loadFont falls back to raylib's built-in font when path does not exist.
func loadFont(path string, size int) rl.Font {
	if _, err := os.Stat(path); err != nil {
		log.Printf("font %q unavailable, using default: %v", path, err)
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(path, int32(size), nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp must be called after the window exists; it allocates GPU resources.
func NewApp(cfg *config.Config, grid *fractal.Grid) (*App, error) {
	key, err := cfg.Key()
	if err != nil {
		return nil, err
	}

	img := rl.GenImageColor(grid.Width(), grid.Height(), shade.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	return &App{
		Grid:      grid,
		Frame:     shade.NewFrame(grid.Width(), grid.Height()),
		Driver:    anim.NewDriver(cfg.AnimationTime, grid.MaxIters()),
		Ctrl:      anim.NewController(cfg.Mode(), key),
		Font:      loadFont(cfg.FontPath, cfg.FontSize),
		FontSize:  cfg.FontSize,
		TextColor: cfg.TextRGBA(),
		Texture:   tex,
	}, nil
}

// Run computes the escape grid, opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	grid, err := fractal.Compute(fractal.DefaultPlane(), fractal.MaxCheckIters)
	if err != nil {
		return fmt.Errorf("compute grid: %w", err)
	}

	initWindow(cfg, grid.Width(), grid.Height())
	defer rl.CloseWindow()

	app, err := NewApp(cfg, grid)
	if err != nil {
		return err
	}
	defer app.Unload()

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for a.Ctrl.HandleAll(a.pollEvents()) {
		a.Update(float64(rl.GetFrameTime()))
		a.Draw()
	}
}

// pollEvents drains raylib's key queue; letter and digit key codes equal
// their upper-case ASCII value.
func (a *App) pollEvents() []anim.Event {
	var events []anim.Event
	if rl.WindowShouldClose() {
		events = append(events, anim.Close{})
	}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		events = append(events, anim.KeyPress{Key: rune(k)})
	}
	return events
}

func (a *App) Update(dt float64) {
	a.Driver.Advance(dt)
	if err := a.Frame.Render(a.Grid, a.Driver.CheckIters(), a.Ctrl.Mode); err != nil {
		log.Printf("render: %v", err)
		return
	}
	rl.UpdateTexture(a.Texture, a.Frame.Pix)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	rl.DrawTexture(a.Texture, 0, 0, rl.White)
	a.drawText(shade.Overlay(a.Ctrl.ToggleKey, a.Driver.Elapsed()), 0, 0)
	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(a.FontSize), 1, a.TextColor)
}

func (a *App) Unload() {
	rl.UnloadTexture(a.Texture)
	rl.UnloadFont(a.Font)
}
