package orchestrator

import (
	"context"

	"github.com/goliatone/go-pagegen/pkg/page"
	"github.com/goliatone/go-pagegen/pkg/templates"
	"github.com/goliatone/go-pagegen/pkg/transform"
)

// ParseFunc turns raw source text into a block sequence.
type ParseFunc func(text string) (page.Page, error)

// TransformFunc rewrites a block sequence into an archetype.
type TransformFunc func(p page.Page, archetype templates.Archetype, opts templates.Options) page.Page

// RenderFunc serializes a block sequence back to text.
type RenderFunc func(p page.Page) string

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithParser injects a custom block parser.
func WithParser(fn ParseFunc) Option {
	return func(o *Orchestrator) {
		o.parse = fn
	}
}

// WithTransformer injects a custom transformation engine.
func WithTransformer(fn TransformFunc) Option {
	return func(o *Orchestrator) {
		o.transform = fn
	}
}

// WithRenderer injects a custom block renderer.
func WithRenderer(fn RenderFunc) Option {
	return func(o *Orchestrator) {
		o.render = fn
	}
}

// Orchestrator runs the parse → transform → render sequence over a source.
type Orchestrator struct {
	parse     ParseFunc
	transform TransformFunc
	render    RenderFunc
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.parse == nil {
		o.parse = page.Parse
	}
	if o.transform == nil {
		o.transform = transform.Transform
	}
	if o.render == nil {
		o.render = page.Render
	}
	return o
}

// Request describes the inputs required to rewrite one page module.
type Request struct {
	// Source identifies where the page module's text lives.
	Source Source

	// Archetype selects the target page shape.
	Archetype templates.Archetype

	// Shared passes the shared model into the generated page functions.
	Shared bool

	// Request passes the routing request into the generated page functions.
	Request bool
}

// Generate executes the read → parse → transform → render sequence and
// returns the rewritten page text. Parsing and reading are the only fallible
// steps; the transformation itself is total.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Source == nil {
		return nil, ErrMissingSource
	}

	text, err := readSource(req.Source)
	if err != nil {
		return nil, err
	}

	parsed, err := o.parse(text)
	if err != nil {
		return nil, err
	}

	rewritten := o.transform(parsed, req.Archetype, templates.Options{
		Shared:  req.Shared,
		Request: req.Request,
	})

	return []byte(o.render(rewritten)), nil
}
