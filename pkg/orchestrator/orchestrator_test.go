package orchestrator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-pagegen/pkg/page"
	"github.com/goliatone/go-pagegen/pkg/templates"
)

const homeInput = "module Pages.Home exposing (page)\n" +
	"\n" +
	"page =\n" +
	"    Page.static { view = view }\n"

func TestGenerate_TextSource(t *testing.T) {
	gen := New()

	out, err := gen.Generate(context.Background(), Request{
		Source:    SourceFromText(homeInput),
		Archetype: templates.Static,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	rendered := string(out)
	if !strings.HasPrefix(rendered, "module Pages.Home exposing (page)\n") {
		t.Fatalf("unexpected header:\n%s", rendered)
	}
	if !strings.Contains(rendered, "import Page exposing (Page)\n") {
		t.Fatalf("missing page import:\n%s", rendered)
	}
	if !strings.Contains(rendered, "import Gen.Params.Home exposing (Params)\n") {
		t.Fatalf("missing params import:\n%s", rendered)
	}
	if !strings.Contains(rendered, "-- page =\n") {
		t.Fatalf("original page not preserved:\n%s", rendered)
	}
}

func TestGenerate_FileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Home.elm")
	if err := os.WriteFile(path, []byte(homeInput), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := New().Generate(context.Background(), Request{
		Source:    SourceFromFile(path),
		Archetype: templates.Sandbox,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.HasPrefix(string(out), "module Pages.Home exposing (page, Model, Msg)\n") {
		t.Fatalf("unexpected header:\n%s", out)
	}
}

func TestGenerate_FSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/Home.elm": &fstest.MapFile{Data: []byte(homeInput)},
	}

	out, err := New().Generate(context.Background(), Request{
		Source:    SourceFromFS(fsys, "pages/Home.elm"),
		Archetype: templates.Element,
		Shared:    true,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.Contains(string(out), "import Shared\n") {
		t.Fatalf("missing shared import:\n%s", out)
	}
}

func TestGenerate_MissingSource(t *testing.T) {
	_, err := New().Generate(context.Background(), Request{Archetype: templates.Static})
	if !errors.Is(err, ErrMissingSource) {
		t.Fatalf("expected ErrMissingSource, got %v", err)
	}
}

func TestGenerate_ReadFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.elm")

	_, err := New().Generate(context.Background(), Request{
		Source:    SourceFromFile(missing),
		Archetype: templates.Static,
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestGenerate_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Generate(ctx, Request{Source: SourceFromText(homeInput)})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerate_InjectedRenderer(t *testing.T) {
	gen := New(WithRenderer(func(p page.Page) string {
		return "rendered elsewhere"
	}))

	out, err := gen.Generate(context.Background(), Request{
		Source:    SourceFromText(homeInput),
		Archetype: templates.Static,
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if string(out) != "rendered elsewhere" {
		t.Fatalf("injected renderer not used: %q", out)
	}
}
