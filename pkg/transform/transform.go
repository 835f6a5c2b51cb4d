package transform

import (
	"strings"

	"github.com/goliatone/go-pagegen/pkg/page"
	"github.com/goliatone/go-pagegen/pkg/templates"
)

// Modules the rewritten page depends on. Shared and Request only when the
// matching toggle asks for them, Effect only for the advanced archetype.
const (
	sharedModule  = "Shared"
	requestModule = "Request"
	pageModule    = "Page"
	effectModule  = "Effect"
	paramsPrefix  = "Gen.Params."
	pagesSegment  = "Pages."
	commentMarker = "-- "
)

// Transform rewrites p into the requested archetype. The input page is not
// modified; the result carries the module header at index 0, freshly
// injected imports next, then the original blocks in order with every
// recognized function replaced by its canonical declaration and the original
// body preserved right below it as line-commented text, and finally any
// back-filled declarations the archetype still misses.
//
// Re-running Transform on its own output does not duplicate the injected
// imports, but it does prefix another entry onto the Page/Params exposing
// lists and stacks another round of commented-out bodies: the exposing list
// is opaque text here, so prior runs are not detected.
func Transform(p page.Page, archetype templates.Archetype, opts templates.Options) page.Page {
	src := append([]page.Block(nil), p.Blocks...)
	var out []page.Block

	if opts.Shared && !hasImport(src, sharedModule) {
		out = append(out, page.ImportDecl{Module: page.Module{Name: sharedModule}})
	}
	if opts.Request && !hasImport(src, requestModule) {
		out = append(out, page.ImportDecl{Module: page.Module{
			Name:     requestModule,
			Exposing: page.Expose("Request"),
		}})
	}

	// The page-wiring import merges into an existing declaration when the
	// source already has one; only then does its position survive.
	if i := importIndex(src, pageModule); i >= 0 {
		imp := src[i].(page.ImportDecl)
		imp.Module.Exposing = prefixExposing(imp.Module.Exposing, "Page")
		src[i] = imp
	} else {
		out = append(out, page.ImportDecl{Module: page.Module{
			Name:     pageModule,
			Exposing: page.Expose("Page"),
		}})
	}

	if archetype == templates.Advanced && !hasImport(src, effectModule) {
		out = append(out, page.ImportDecl{Module: page.Module{
			Name:     effectModule,
			Exposing: page.Expose("Effect"),
		}})
	}

	for _, blk := range src {
		switch v := blk.(type) {
		case page.ModuleDecl:
			derived := paramsModule(v.Module.Name)
			if i := importIndex(out, derived); i >= 0 {
				imp := out[i].(page.ImportDecl)
				imp.Module.Exposing = prefixExposing(imp.Module.Exposing, "Params")
				out[i] = imp
			} else {
				out = append(out, page.ImportDecl{Module: page.Module{
					Name:     derived,
					Exposing: page.Expose("Params"),
				}})
			}

			header := page.ModuleDecl{Module: page.Module{
				Name:     v.Module.Name,
				Exposing: page.Expose(archetype.ExposingList()),
			}}
			out = append([]page.Block{header}, out...)

		case page.InitFn:
			out = append(out,
				page.InitFn{Fn: generated(templates.KindInit, archetype, opts)},
				commented(v.Fn))
		case page.UpdateFn:
			out = append(out,
				page.UpdateFn{Fn: generated(templates.KindUpdate, archetype, opts)},
				commented(v.Fn))
		case page.ViewFn:
			out = append(out,
				page.ViewFn{Fn: generated(templates.KindView, archetype, opts)},
				commented(v.Fn))
		case page.SubscriptionsFn:
			out = append(out,
				page.SubscriptionsFn{Fn: generated(templates.KindSubscriptions, archetype, opts)},
				commented(v.Fn))
		case page.PageFn:
			out = append(out,
				page.PageFn{Fn: generated(templates.KindPage, archetype, opts)},
				commented(v.Fn))

		default:
			out = append(out, blk)
		}
	}

	out = backfill(out, archetype, opts)
	return page.Page{Blocks: out}
}

// backfill appends whatever the archetype requires but the sequence still
// misses. Appended declarations are opaque Other blocks carrying the
// generated text; on a later run the scanner picks them up as real function
// blocks.
func backfill(out []page.Block, archetype templates.Archetype, opts templates.Options) []page.Block {
	if !containsKind[page.PageFn](out) {
		out = append(out, page.Other{Text: templates.Generate(templates.KindPage, archetype, opts)})
	}

	if archetype != templates.Static {
		if !hasOtherWhere(out, func(text string) bool {
			return strings.HasPrefix(text, "type alias Model =")
		}) {
			out = append(out, page.Other{Text: templates.DefaultModel})
		}

		if !hasOtherWhere(out, func(text string) bool {
			return strings.HasPrefix(text, "type Msg ") || strings.TrimSpace(text) == "type Msg"
		}) {
			out = append(out, page.Other{Text: templates.DefaultMsg})
		}

		if archetype != templates.Sandbox && !containsKind[page.SubscriptionsFn](out) {
			out = append(out, page.Other{Text: templates.Generate(templates.KindSubscriptions, archetype, opts)})
		}

		if !containsKind[page.InitFn](out) {
			out = append(out, page.Other{Text: templates.Generate(templates.KindInit, archetype, opts)})
		}
		if !containsKind[page.UpdateFn](out) {
			out = append(out, page.Other{Text: templates.Generate(templates.KindUpdate, archetype, opts)})
		}
	}

	if !containsKind[page.ViewFn](out) {
		out = append(out, page.Other{Text: templates.Generate(templates.KindView, archetype, opts)})
	}

	return out
}

// paramsModule derives the sibling page-parameters module for a page module
// name: the leading Pages. segments are stripped and the params namespace is
// prefixed, so Pages.Settings.Profile maps to Gen.Params.Settings.Profile.
func paramsModule(name string) string {
	for strings.HasPrefix(name, pagesSegment) {
		name = strings.TrimPrefix(name, pagesSegment)
	}
	return paramsPrefix + name
}

// prefixExposing prepends name to an exposing list, or starts one. The list
// stays opaque text, so an entry already present is prefixed again; see the
// Transform doc comment.
func prefixExposing(existing *string, name string) *string {
	if existing == nil {
		return page.Expose(name)
	}
	return page.Expose(name + ", " + *existing)
}

func generated(kind templates.Kind, archetype templates.Archetype, opts templates.Options) page.Function {
	return page.Function{Lines: splitLines(templates.Generate(kind, archetype, opts))}
}

// commented preserves a replaced function body as inert, reviewable text.
func commented(fn page.Function) page.Other {
	lines := make([]string, len(fn.Lines))
	for i, line := range fn.Lines {
		lines[i] = commentMarker + line
	}
	return page.Other{Text: strings.Join(lines, "\n")}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func hasImport(blocks []page.Block, name string) bool {
	return importIndex(blocks, name) >= 0
}

func importIndex(blocks []page.Block, name string) int {
	for i, blk := range blocks {
		if imp, ok := blk.(page.ImportDecl); ok && imp.Module.Name == name {
			return i
		}
	}
	return -1
}

func hasOtherWhere(blocks []page.Block, pred func(string) bool) bool {
	for _, blk := range blocks {
		if other, ok := blk.(page.Other); ok && pred(other.Text) {
			return true
		}
	}
	return false
}

func containsKind[T page.Block](blocks []page.Block) bool {
	for _, blk := range blocks {
		if _, ok := blk.(T); ok {
			return true
		}
	}
	return false
}
