package templates

// Archetype is one of the four canonical page shapes. It decides which
// declaration kinds exist, how the page function wires them together, and
// which names the module header exposes.
type Archetype int

const (
	// Static pages render a view and hold no state.
	Static Archetype = iota
	// Sandbox pages own a model updated without effects.
	Sandbox
	// Element pages own a model, commands, and subscriptions.
	Element
	// Advanced pages route their effects through the shared Effect type.
	Advanced
)

var archetypeNames = map[Archetype]string{
	Static:   "static",
	Sandbox:  "sandbox",
	Element:  "element",
	Advanced: "advanced",
}

// ParseArchetype maps a CLI token to an Archetype. Unrecognized tokens
// report ok=false; the caller decides whether that is an error.
func ParseArchetype(token string) (Archetype, bool) {
	switch token {
	case "static":
		return Static, true
	case "sandbox":
		return Sandbox, true
	case "element":
		return Element, true
	case "advanced":
		return Advanced, true
	default:
		return Static, false
	}
}

// Names lists the recognized archetype tokens in declaration order.
func Names() []string {
	return []string{"static", "sandbox", "element", "advanced"}
}

// String returns the CLI token for the archetype.
func (a Archetype) String() string {
	if name, ok := archetypeNames[a]; ok {
		return name
	}
	return "unknown"
}

// ExposingList is the fixed exposed-name list the rewritten module header
// gets for this archetype.
func (a Archetype) ExposingList() string {
	if a == Static {
		return "page"
	}
	return "page, Model, Msg"
}
