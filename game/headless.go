package game

import (
	"math"
	"unicode/utf8"

	"github.com/pthm-cable/lumina/page"
)

// Headless pointer schedule, in ticks.
const (
	headlessCycle    = 600 // one sweep plus one pause
	headlessPause    = 150 // pointer rests at the end of each cycle
	headlessNavEvery = 900
)

// approxMeasure estimates text width without a font. Used when no window
// exists to measure with.
func approxMeasure(text string, size int32) float32 {
	return float32(utf8.RuneCountInString(text)) * float32(size) * 0.55
}

// lissajous is the synthetic pointer path for headless runs.
type lissajous struct {
	cx, cy float32
	ax, ay float32
}

func newLissajous(w, h float32) lissajous {
	return lissajous{cx: w / 2, cy: h / 2, ax: w * 0.4, ay: h * 0.35}
}

// At returns the pointer position at tick. The last headlessPause ticks of
// every cycle hold still so the trail can drain.
func (l lissajous) At(tick int32) (x, y float32) {
	phase := tick % headlessCycle
	if moving := int32(headlessCycle - headlessPause); phase > moving {
		tick -= phase - moving
	}
	t := float64(tick) / 60
	x = l.cx + l.ax*float32(math.Sin(3*t+math.Pi/2))
	y = l.cy + l.ay*float32(math.Sin(2*t))
	return x, y
}

// headlessInput feeds the synthetic pointer and cycles through the views.
func (g *Game) headlessInput() {
	g.pointerX, g.pointerY = g.headlessPath.At(g.tick)
	g.bus.Publish(g.pointerX, g.pointerY)

	if g.tick > 0 && g.tick%headlessNavEvery == 0 {
		targets := page.NavTargets()
		g.navigate(targets[int(g.tick/headlessNavEvery-1)%len(targets)])
	}
}
