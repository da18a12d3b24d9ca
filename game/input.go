package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lumina/cursor"
)

// handleInput processes window, keyboard and pointer input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Debug HUD toggle
	if rl.IsKeyPressed(rl.KeyF3) {
		g.showHUD = !g.showHUD
	}

	// Esc closes the chat first and only quits when nothing is open
	if rl.IsKeyPressed(rl.KeyEscape) {
		if g.chatOpen() {
			g.chatPanel.Close()
		} else {
			g.quit = true
		}
	}

	g.handlePointer()
	g.handleScrollInput()
}

// handlePointer publishes the pointer position and records clicks.
// The bus handlers only store the sample; the frame handlers act on it.
func (g *Game) handlePointer() {
	pos := rl.GetMousePosition()
	g.pointerX, g.pointerY = pos.X, pos.Y
	g.bus.Publish(pos.X, pos.Y)
	g.clicked = rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.resize(w, h)
	if g.background != nil {
		g.background.Resize(int32(w), int32(h))
	}
	if g.perfPanel != nil {
		g.perfPanel.SetPosition(int32(w)-250, int32(g.cfg.UI.NavHeight)+16)
	}
}

// resize applies a new window size to the layout, camera and cursor guard.
func (g *Game) resize(w, h float32) {
	g.screenWidth = w
	g.screenHeight = h
	g.camera.Resize(w, h)
	g.layoutDirty = true
	g.syncCursor()
}

// handleScrollInput scrolls the page with the wheel and the keyboard.
func (g *Game) handleScrollInput() {
	speed := float32(g.cfg.UI.ScrollSpeed)

	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !g.pointerOverChat() {
		g.camera.ScrollBy(-wheel * speed)
	}

	// Keys would type into the chat box while it has focus
	if g.chatPanel != nil && g.chatPanel.Editing() {
		return
	}
	if rl.IsKeyPressed(rl.KeyPageDown) {
		g.camera.ScrollBy(g.screenHeight * 0.8)
	}
	if rl.IsKeyPressed(rl.KeyPageUp) {
		g.camera.ScrollBy(-g.screenHeight * 0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.ScrollTo(0)
	}
	if rl.IsKeyPressed(rl.KeyEnd) {
		g.camera.ScrollTo(g.camera.MaxScroll())
	}
}

// syncCursor mounts or unmounts the cursor effects for the current
// environment.
// seedPointer records the pointer position before the effects first mount so
// the trail anchors where the pointer actually is.
func (g *Game) seedPointer() {
	if g.headless {
		g.pointerX, g.pointerY = g.headlessPath.At(g.tick)
		return
	}
	pos := rl.GetMousePosition()
	g.pointerX, g.pointerY = pos.X, pos.Y
}

func (g *Game) syncCursor() {
	g.cursor.Sync(cursor.Environment{
		Width:          g.screenWidth,
		Height:         g.screenHeight,
		PointerCapable: !g.touch,
		ReducedMotion:  g.reducedMotion,
		PointerX:       g.pointerX,
		PointerY:       g.pointerY,
	})
}

// chatOpen reports whether the chat panel is expanded.
func (g *Game) chatOpen() bool {
	return g.chatPanel != nil && g.chatPanel.IsOpen()
}

// openURL opens a link in the system browser.
func (g *Game) openURL(url string) {
	slog.Info("opening link", "url", url)
	if !g.headless {
		rl.OpenURL(url)
	}
}
