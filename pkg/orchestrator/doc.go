// Package orchestrator coordinates the full pipeline from source text to
// rewritten page text: read source, parse blocks, transform to the requested
// archetype, render. It applies the built-in parser, transformer, and
// renderer by default while remaining open to dependency injection for
// callers that embed the pipeline.
package orchestrator
