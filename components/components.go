// Package components defines ECS components shared by the viewer's systems.
package components

// HintRegion marks an entity as an interactive area of the page.
// Regions on higher layers win when they overlap (the chat panel covers the content).
type HintRegion struct {
	Hint  Hint
	Layer int
	ID    string // Widget identifier, used for click routing and debugging
}

// Layers used by the page, bottom to top.
const (
	LayerContent = iota
	LayerNav
	LayerChat
)
