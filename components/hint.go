package components

// Hint describes what kind of element the pointer is over.
// It only drives the cursor marker's styling.
type Hint uint8

const (
	HintDefault Hint = iota // Plain page
	HintHover               // Navigation and other hover targets
	HintText                // Text and text fields
	HintButton              // Clickable buttons and links
)

// String returns the display name for a Hint.
func (h Hint) String() string {
	names := HintNames()
	if int(h) < len(names) {
		return names[h]
	}
	return "Unknown"
}

// HintNames returns the display names for all hints.
// The order matches the Hint constants.
func HintNames() []string {
	return []string{"Default", "Hover", "Text", "Button"}
}
