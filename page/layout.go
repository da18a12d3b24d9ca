package page

import (
	"strings"

	"github.com/pthm-cable/lumina/components"
	"github.com/pthm-cable/lumina/config"
	"github.com/pthm-cable/lumina/profile"
)

// Anchors within the home view.
const (
	AnchorAbout   = "about"
	AnchorContact = "contact"
)

// Horizontal padding around the content column.
const sideMargin = 24

// BlockKind says how a block is drawn.
type BlockKind uint8

const (
	BlockTitle BlockKind = iota
	BlockHeading
	BlockText
	BlockTag
	BlockLink
	BlockButton
	BlockDivider
)

// Style selects a block's colour.
type Style uint8

const (
	StyleNormal Style = iota
	StyleMuted
	StyleAccent
)

// Action is what clicking a block does.
type Action uint8

const (
	ActionNone Action = iota
	ActionBack
	ActionOpenURL
)

// Block is a positioned piece of page content, in content coordinates.
type Block struct {
	Kind   BlockKind
	Style  Style
	Lines  []string
	Size   int32
	Bounds components.Bounds
	Hint   components.Hint
	Action Action
	URL    string
}

// Layout is a fully positioned view.
type Layout struct {
	View    View
	Blocks  []Block
	Height  float32
	Anchors map[string]float32
}

// Metrics holds the sizes a layout is computed with.
type Metrics struct {
	ScreenW, ScreenH float32
	NavHeight        float32
	ContentWidth     float32
	FontSize         int32
	HeadingSize      int32
	TitleSize        int32
	LineSpacing      float32
	Measure          Measurer
}

// MetricsFromConfig builds metrics for a screen size from the ui config section.
func MetricsFromConfig(cfg *config.UIConfig, screenW, screenH float32, measure Measurer) Metrics {
	return Metrics{
		ScreenW:      screenW,
		ScreenH:      screenH,
		NavHeight:    float32(cfg.NavHeight),
		ContentWidth: float32(cfg.ContentWidth),
		FontSize:     int32(cfg.FontSize),
		HeadingSize:  int32(cfg.HeadingSize),
		TitleSize:    int32(cfg.TitleSize),
		LineSpacing:  float32(cfg.LineSpacing),
		Measure:      measure,
	}
}

// Column returns the x offset and width of the content column.
func (m Metrics) Column() (x, w float32) {
	w = m.ContentWidth
	if limit := m.ScreenW - 2*sideMargin; w > limit {
		w = limit
	}
	if w < 1 {
		w = 1
	}
	return (m.ScreenW - w) / 2, w
}

// LineHeight returns the vertical advance of one line at size.
func (m Metrics) LineHeight(size int32) float32 {
	return float32(size) + m.LineSpacing
}

type builder struct {
	m       Metrics
	x, w, y float32
	blocks  []Block
	anchors map[string]float32
}

func newBuilder(m Metrics) *builder {
	x, w := m.Column()
	return &builder{m: m, x: x, w: w, y: m.NavHeight + 48, anchors: map[string]float32{}}
}

func (b *builder) gap(px float32) {
	b.y += px
}

func (b *builder) anchor(name string) {
	// Leave room for the navigation bar above the anchored section
	b.anchors[name] = b.y - b.m.NavHeight - 16
}

func (b *builder) text(kind BlockKind, style Style, size int32, hint components.Hint, text string) {
	lines := Wrap(text, size, b.w, b.m.Measure)
	if len(lines) == 0 {
		return
	}
	h := float32(len(lines)) * b.m.LineHeight(size)
	b.blocks = append(b.blocks, Block{
		Kind:   kind,
		Style:  style,
		Lines:  lines,
		Size:   size,
		Bounds: components.Bounds{X: b.x, Y: b.y, W: b.w, H: h},
		Hint:   hint,
	})
	b.y += h
}

func (b *builder) title(text string) {
	b.text(BlockTitle, StyleNormal, b.m.TitleSize, components.HintDefault, text)
	b.gap(8)
}

func (b *builder) heading(text string) {
	b.text(BlockHeading, StyleAccent, b.m.HeadingSize, components.HintDefault, text)
	b.gap(6)
}

func (b *builder) paragraph(style Style, hint components.Hint, text string) {
	b.text(BlockText, style, b.m.FontSize, hint, text)
	b.gap(4)
}

func (b *builder) bullets(items []string) {
	for _, it := range items {
		b.paragraph(StyleNormal, components.HintText, "• "+it)
	}
}

// pill appends a single-line block sized to its label.
func (b *builder) pill(kind BlockKind, style Style, hint components.Hint, action Action, url, label string, x float32) float32 {
	size := b.m.FontSize
	w := b.m.Measure(label, size) + 20
	h := float32(size) + 12
	b.blocks = append(b.blocks, Block{
		Kind:   kind,
		Style:  style,
		Lines:  []string{label},
		Size:   size,
		Bounds: components.Bounds{X: x, Y: b.y, W: w, H: h},
		Hint:   hint,
		Action: action,
		URL:    url,
	})
	return w
}

// tags flows pills left to right, wrapping at the column edge.
func (b *builder) tags(tags []string) {
	if len(tags) == 0 {
		return
	}
	h := float32(b.m.FontSize) + 12
	x := b.x
	for _, t := range tags {
		w := b.m.Measure(t, b.m.FontSize) + 20
		if x > b.x && x+w > b.x+b.w {
			x = b.x
			b.y += h + 8
		}
		x += b.pill(BlockTag, StyleMuted, components.HintDefault, ActionNone, "", t, x) + 8
	}
	b.y += h + 8
}

func (b *builder) link(label, url string) {
	b.pill(BlockLink, StyleAccent, components.HintButton, ActionOpenURL, url, label, b.x)
	b.y += float32(b.m.FontSize) + 20
}

func (b *builder) back() {
	b.pill(BlockButton, StyleNormal, components.HintButton, ActionBack, "", "← Back", b.x)
	b.y += float32(b.m.FontSize) + 36
}

func (b *builder) divider() {
	b.gap(16)
	b.blocks = append(b.blocks, Block{
		Kind:   BlockDivider,
		Bounds: components.Bounds{X: b.x, Y: b.y, W: b.w, H: 1},
	})
	b.gap(24)
}

func (b *builder) finish(v View) Layout {
	return Layout{
		View:    v,
		Blocks:  b.blocks,
		Height:  b.y + 64,
		Anchors: b.anchors,
	}
}

// Build lays out view v for profile p.
func Build(v View, p *profile.Profile, m Metrics) Layout {
	b := newBuilder(m)
	switch v {
	case ViewProjects:
		buildProjects(b, p)
	case ViewExperience:
		buildExperience(b, p)
	case ViewEducation:
		buildEducation(b, p)
	default:
		buildHome(b, p)
	}
	return b.finish(v)
}

func buildHome(b *builder, p *profile.Profile) {
	// Hero
	b.gap(b.m.ScreenH * 0.12)
	b.title(p.Name)
	b.heading(p.Title)
	b.paragraph(StyleMuted, components.HintText, p.ShortBio)
	b.divider()

	b.anchor(AnchorAbout)
	b.heading("About")
	b.paragraph(StyleNormal, components.HintText, p.LongBio)
	b.gap(12)
	if len(p.Skills) > 0 {
		b.heading("Skills")
		b.tags(p.Skills)
	}

	if len(p.Publications) > 0 {
		b.divider()
		b.heading("Publications")
		for _, pub := range p.Publications {
			b.paragraph(StyleNormal, components.HintText, pub.Title)
			b.paragraph(StyleMuted, components.HintDefault, pub.Authors)
			b.paragraph(StyleMuted, components.HintDefault, joinNonEmpty(" · ", pub.Journal, pub.Date))
			b.gap(10)
		}
	}

	b.divider()
	b.anchor(AnchorContact)
	b.heading("Get in touch")
	b.paragraph(StyleNormal, components.HintText, joinNonEmpty("  |  ", p.Email, p.Phone, p.Location))
	b.gap(8)
	for _, s := range p.Socials {
		b.link(s.Platform, s.URL)
	}
}

func buildProjects(b *builder, p *profile.Profile) {
	b.back()
	b.title("Projects")
	b.gap(12)
	for _, proj := range p.Projects {
		b.heading(proj.Title)
		b.paragraph(StyleNormal, components.HintText, proj.Description)
		b.gap(4)
		b.tags(proj.Tags)
		if proj.HasLink() {
			b.link("Visit project →", proj.Link)
		}
		b.divider()
	}
}

func buildExperience(b *builder, p *profile.Profile) {
	b.back()
	b.title("Experience")
	b.gap(12)
	for _, e := range p.Experience {
		b.heading(e.Role)
		b.paragraph(StyleNormal, components.HintDefault, e.Company)
		b.paragraph(StyleMuted, components.HintDefault, e.Period)
		b.gap(4)
		b.bullets(e.Description)
		b.divider()
	}
}

func buildEducation(b *builder, p *profile.Profile) {
	b.back()
	b.title("Education")
	b.gap(12)
	for _, e := range p.Education {
		b.heading(e.Degree)
		b.paragraph(StyleNormal, components.HintDefault, e.Institution)
		b.paragraph(StyleMuted, components.HintDefault, e.Period)
		b.gap(4)
		b.bullets(e.Details)
		b.divider()
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, sep)
}
