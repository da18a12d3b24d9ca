// Package page lays out the portfolio pages as positioned blocks. It knows
// nothing about drawing; text is measured through a caller-supplied function.
package page

// View is one of the portfolio pages.
type View uint8

const (
	ViewHome View = iota
	ViewProjects
	ViewExperience
	ViewEducation
)

// String returns the display name for a View.
func (v View) String() string {
	names := ViewNames()
	if int(v) < len(names) {
		return names[v]
	}
	return "unknown"
}

// ViewNames returns the names of all views.
// The order matches the View constants.
func ViewNames() []string {
	return []string{"home", "projects", "experience", "education"}
}

// Target is a navigation destination.
type Target uint8

const (
	TargetProjects Target = iota
	TargetExperience
	TargetEducation
	TargetAbout
	TargetHome
)

// Label returns the navigation button text.
func (t Target) Label() string {
	switch t {
	case TargetProjects:
		return "Projects"
	case TargetExperience:
		return "Experience"
	case TargetEducation:
		return "Education"
	case TargetAbout:
		return "About"
	default:
		return "Home"
	}
}

// NavTargets lists the navigation bar buttons, left to right.
func NavTargets() []Target {
	return []Target{TargetProjects, TargetExperience, TargetEducation, TargetAbout}
}

// Navigator tracks the current view.
type Navigator struct {
	current View
}

// Current returns the active view.
func (n *Navigator) Current() View {
	return n.current
}

// Go switches to target. It returns the view now active, the anchor to
// scroll to ("" means the top of the page) and whether the view changed.
func (n *Navigator) Go(t Target) (view View, anchor string, changed bool) {
	next := ViewHome
	switch t {
	case TargetProjects:
		next = ViewProjects
	case TargetExperience:
		next = ViewExperience
	case TargetEducation:
		next = ViewEducation
	case TargetAbout:
		anchor = AnchorAbout
	}
	changed = next != n.current
	n.current = next
	return next, anchor, changed
}
