package telemetry

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for one frame.
const (
	PhaseInput     = "input"
	PhaseLayout    = "layout"
	PhaseHover     = "hover"
	PhaseCursor    = "cursor"
	PhaseChat      = "chat"
	PhaseTelemetry = "telemetry"
	PhaseRender    = "render"
)

// Phases lists the frame phases in execution order.
var Phases = []string{
	PhaseInput, PhaseLayout, PhaseHover, PhaseCursor,
	PhaseChat, PhaseTelemetry, PhaseRender,
}

// frameSample is the timing of one frame and the trail load it carried.
type frameSample struct {
	total     time.Duration
	phases    map[string]time.Duration
	particles int
}

// PerfCollector times frame phases over a rolling window and relates the
// cursor phase to the number of live trail particles.
type PerfCollector struct {
	ring  []frameSample
	next  int
	count int

	cur        frameSample
	frameStart time.Time
	phaseStart time.Time
	phase      string

	lastPresent time.Time
	present     time.Duration
}

// NewPerfCollector keeps the last window frames; window < 1 means 60.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{ring: make([]frameSample, window)}
}

// StartTick begins timing a new frame.
func (p *PerfCollector) StartTick() {
	p.frameStart = time.Now()
	p.cur = frameSample{phases: make(map[string]time.Duration, len(Phases))}
	p.phase = ""
}

// StartPhase closes the running phase and opens the named one.
func (p *PerfCollector) StartPhase(name string) {
	now := time.Now()
	p.closePhase(now)
	p.phase = name
	p.phaseStart = now
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// SetParticles records the live trail population for the current frame.
func (p *PerfCollector) SetParticles(n int) {
	p.cur.particles = n
}

// EndTick closes the frame and pushes it into the window.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.phase = ""
	p.cur.total = now.Sub(p.frameStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	if p.count < len(p.ring) {
		p.count++
	}
}

// RecordFrame records the wall-clock time since the previous presented frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastPresent.IsZero() {
		p.present = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats summarises the frames in the current window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	P95TickDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of the average tick

	TicksPerSecond float64

	// Presented frames, vsync included
	FrameDuration time.Duration
	FPS           float64

	AvgParticles  float64
	PeakParticles int
	// Average cursor phase time divided by the average live population
	CursorPerParticle time.Duration
}

// Stats computes the window summary.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.present,
	}
	if p.present > 0 {
		s.FPS = float64(time.Second) / float64(p.present)
	}
	if p.count == 0 {
		return s
	}

	ticks := make([]float64, p.count)
	particles := make([]float64, p.count)
	phaseSum := make(map[string]time.Duration)
	for i, f := range p.ring[:p.count] {
		ticks[i] = float64(f.total)
		particles[i] = float64(f.particles)
		if f.particles > s.PeakParticles {
			s.PeakParticles = f.particles
		}
		for name, d := range f.phases {
			phaseSum[name] += d
		}
	}

	s.AvgTickDuration = time.Duration(stat.Mean(ticks, nil))
	sort.Float64s(ticks)
	s.MinTickDuration = time.Duration(ticks[0])
	s.MaxTickDuration = time.Duration(ticks[len(ticks)-1])
	s.P95TickDuration = time.Duration(stat.Quantile(0.95, stat.Empirical, ticks, nil))
	s.AvgParticles = stat.Mean(particles, nil)

	n := time.Duration(p.count)
	for name, sum := range phaseSum {
		avg := sum / n
		s.PhaseAvg[name] = avg
		if s.AvgTickDuration > 0 {
			s.PhasePct[name] = float64(avg) / float64(s.AvgTickDuration) * 100
		}
	}
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	if s.AvgParticles >= 1 {
		s.CursorPerParticle = time.Duration(float64(s.PhaseAvg[PhaseCursor]) / s.AvgParticles)
	}
	return s
}

func (s PerfStats) attrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("p95_tick_us", s.P95TickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
		slog.Float64("avg_particles", s.AvgParticles),
		slog.Int("peak_particles", s.PeakParticles),
		slog.Int64("cursor_ns_per_particle", s.CursorPerParticle.Nanoseconds()),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", float64(int(pct*10))/10))
		}
	}
	return attrs
}

// LogStats logs the summary at info level.
func (s PerfStats) LogStats() {
	slog.LogAttrs(context.Background(), slog.LevelInfo, "perf", s.attrs()...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	return slog.GroupValue(s.attrs()...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd        int32   `csv:"window_end"`
	AvgTickUS        int64   `csv:"avg_tick_us"`
	P95TickUS        int64   `csv:"p95_tick_us"`
	MaxTickUS        int64   `csv:"max_tick_us"`
	FPS              float64 `csv:"fps"`
	AvgParticles     float64 `csv:"avg_particles"`
	PeakParticles    int     `csv:"peak_particles"`
	CursorNSParticle int64   `csv:"cursor_ns_per_particle"`
	InputPct         float64 `csv:"input_pct"`
	LayoutPct        float64 `csv:"layout_pct"`
	HoverPct         float64 `csv:"hover_pct"`
	CursorPct        float64 `csv:"cursor_pct"`
	ChatPct          float64 `csv:"chat_pct"`
	RenderPct        float64 `csv:"render_pct"`
	TelemetryPct     float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the summary for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:        windowEnd,
		AvgTickUS:        s.AvgTickDuration.Microseconds(),
		P95TickUS:        s.P95TickDuration.Microseconds(),
		MaxTickUS:        s.MaxTickDuration.Microseconds(),
		FPS:              s.FPS,
		AvgParticles:     s.AvgParticles,
		PeakParticles:    s.PeakParticles,
		CursorNSParticle: s.CursorPerParticle.Nanoseconds(),
		InputPct:         s.PhasePct[PhaseInput],
		LayoutPct:        s.PhasePct[PhaseLayout],
		HoverPct:         s.PhasePct[PhaseHover],
		CursorPct:        s.PhasePct[PhaseCursor],
		ChatPct:          s.PhasePct[PhaseChat],
		RenderPct:        s.PhasePct[PhaseRender],
		TelemetryPct:     s.PhasePct[PhaseTelemetry],
	}
}
