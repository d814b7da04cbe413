package gui

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/eulerplot/internal/display"
	"github.com/san-kum/eulerplot/internal/dynamo"
)

var (
	ColBg   = rl.White
	ColTint = rl.White
)

type quitKey struct {
	code  int32
	label string
}

var quitKeys = map[string]quitKey{
	"escape": {rl.KeyEscape, "ESC"},
	"q":      {rl.KeyQ, "Q"},
	"enter":  {rl.KeyEnter, "ENTER"},
	"space":  {rl.KeySpace, "SPACE"},
}

// QuitKeys lists the key names accepted by NewWindow.
func QuitKeys() []string {
	names := make([]string, 0, len(quitKeys))
	for name := range quitKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Window is a raylib window that shows one still frame.
type Window struct {
	key     quitKey
	tex     rl.Texture2D
	hasTex  bool
	running bool
}

// NewWindow returns a window that closes when the named key is held. The
// name is case-insensitive; see QuitKeys.
func NewWindow(key string) (*Window, error) {
	k, ok := quitKeys[strings.ToLower(key)]
	if !ok {
		return nil, errors.Wrapf(dynamo.ErrParameterBounds, "quit key %q (available: %v)", key, QuitKeys())
	}
	return &Window{key: k}, nil
}

// KeyLabel is the short name of the quit key as shown in the title bar.
func (w *Window) KeyLabel() string {
	return w.key.label
}

// Open initializes the raylib window at the given size. The default exit
// key is disabled so only the configured quit key or the close button end
// the loop.
func (w *Window) Open(title string, width, height int) error {
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return errors.Wrap(dynamo.ErrWindowClosed, "raylib window failed to initialize")
	}
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
	w.running = true
	return nil
}

func (w *Window) IsOpen() bool {
	return w.running && !rl.WindowShouldClose()
}

func (w *Window) QuitPressed() bool {
	return rl.IsKeyDown(w.key.code)
}

// Present uploads the frame on first use and redraws it.
func (w *Window) Present(frame *display.Frame) error {
	if !w.running {
		return dynamo.ErrWindowClosed
	}
	if !w.hasTex {
		img := rl.NewImageFromImage(frame.Image)
		w.tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		if w.tex.ID == 0 {
			return errors.New("gui: texture upload failed")
		}
		w.hasTex = true
	}

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	rl.DrawTexture(w.tex, 0, 0, ColTint)
	rl.EndDrawing()
	return nil
}

// Close releases the texture and the window.
func (w *Window) Close() {
	if w.hasTex {
		rl.UnloadTexture(w.tex)
		w.hasTex = false
	}
	if w.running {
		rl.CloseWindow()
		w.running = false
	}
}
