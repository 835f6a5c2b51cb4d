package page

import (
	"fmt"
	"strings"
)

// Render serializes a block sequence back to text, one block at a time, in
// sequence order. No reordering or deduplication happens here; those
// decisions belong to the transform package.
func Render(p Page) string {
	var b strings.Builder
	for _, blk := range p.Blocks {
		renderBlock(&b, blk)
	}
	return b.String()
}

func renderBlock(b *strings.Builder, blk Block) {
	switch v := blk.(type) {
	case ModuleDecl:
		renderModule(b, "module", v.Module)
	case ImportDecl:
		renderModule(b, "import", v.Module)
	case InitFn:
		renderFunction(b, v.Fn)
	case UpdateFn:
		renderFunction(b, v.Fn)
	case ViewFn:
		renderFunction(b, v.Fn)
	case SubscriptionsFn:
		renderFunction(b, v.Fn)
	case PageFn:
		renderFunction(b, v.Fn)
	case Other:
		b.WriteString(v.Text)
		b.WriteByte('\n')
	}
}

func renderModule(b *strings.Builder, keyword string, m Module) {
	if m.Exposing != nil {
		fmt.Fprintf(b, "%s %s exposing (%s)\n", keyword, m.Name, *m.Exposing)
		return
	}
	fmt.Fprintf(b, "%s %s\n", keyword, m.Name)
}

// Function blocks render with a blank line on either side so definitions stay
// visually separated regardless of how tightly the source packed them.
func renderFunction(b *strings.Builder, fn Function) {
	b.WriteByte('\n')
	for _, line := range fn.Lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}
