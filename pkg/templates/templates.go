package templates

import (
	"github.com/flosch/pongo2/v6"
)

// Kind names the five declaration kinds the generator can produce.
type Kind int

const (
	// KindPage is the page wiring function.
	KindPage Kind = iota
	// KindInit is the model initializer.
	KindInit
	// KindUpdate is the message handler.
	KindUpdate
	// KindView is the view function.
	KindView
	// KindSubscriptions is the subscription set.
	KindSubscriptions
)

// Options are the two orthogonal capability toggles. Each one adds a typed
// leading parameter and a matching runtime argument to every generated
// declaration.
type Options struct {
	// Shared passes the shared model into the page functions.
	Shared bool
	// Request passes the routing request into the page functions.
	Request bool
}

// fragments builds the render context. An absent toggle contributes empty
// fragments; the surrounding template spaces are kept as-is, so disabled
// toggles leave the doubled spaces the canonical texts have always had.
// The fragments enter the context as safe values: the `->` in the signature
// fragments must come through verbatim, not entity-escaped.
func (o Options) fragments() pongo2.Context {
	var sSig, sArg, rSig, rArg string
	if o.Shared {
		sSig, sArg = "Shared.Model ->", "shared"
	}
	if o.Request {
		rSig, rArg = "Request.With Params ->", "req"
	}
	return pongo2.Context{
		"s_sig": pongo2.AsSafeValue(sSig),
		"s_arg": pongo2.AsSafeValue(sArg),
		"r_sig": pongo2.AsSafeValue(rSig),
		"r_arg": pongo2.AsSafeValue(rArg),
	}
}

// DefaultModel is the model type alias backfilled when a dynamic page
// defines none.
const DefaultModel = "\ntype alias Model = {}\n\n"

// DefaultMsg is the message type backfilled when a dynamic page defines
// none.
const DefaultMsg = "\ntype Msg = ReplaceMe\n\n"

var defaultEngine = newEngine(TemplatesFS())

// Generate returns the canonical declaration text for the given kind under
// the archetype and toggles, terminated by a newline. Kinds an archetype
// does not carry (init/update/subscriptions for Static, subscriptions for
// Sandbox) yield the empty string.
//
// The bundle is embedded and the toggle context is total, so a render
// failure can only mean a broken build; Generate panics on it rather than
// making every transformation fallible.
func Generate(kind Kind, archetype Archetype, opts Options) string {
	name := templateName(kind, archetype)
	if name == "" {
		return ""
	}
	out, err := defaultEngine.render(name, opts.fragments())
	if err != nil {
		panic(err)
	}
	return out
}

func templateName(kind Kind, archetype Archetype) string {
	switch kind {
	case KindPage:
		return "page_" + archetype.String() + ".elm.tpl"
	case KindInit:
		if archetype == Static {
			return ""
		}
		return "init_" + archetype.String() + ".elm.tpl"
	case KindUpdate:
		if archetype == Static {
			return ""
		}
		return "update_" + archetype.String() + ".elm.tpl"
	case KindView:
		if archetype == Static {
			return "view_static.elm.tpl"
		}
		return "view_model.elm.tpl"
	case KindSubscriptions:
		if archetype == Static || archetype == Sandbox {
			return ""
		}
		return "subscriptions.elm.tpl"
	default:
		return ""
	}
}
