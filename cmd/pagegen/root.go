// Package main provides the entry point for the pagegen CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagegen/internal/config"
	"github.com/goliatone/go-pagegen/internal/prompt"
	"github.com/goliatone/go-pagegen/pkg/orchestrator"
	"github.com/goliatone/go-pagegen/pkg/templates"
)

// newDriver builds the interactive prompt driver; swapped out in tests.
var newDriver = prompt.NewSurveyDriver

// errMissingOperand reports an absent PATH or TEMPLATE operand.
var errMissingOperand = errors.New("pagegen: missing operand\nTry 'pagegen --help' for more information.")

// NewRootCmd creates the root command for pagegen.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagegen [flags] PATH [TEMPLATE]",
		Short: "Rewrite an Elm page module into a canonical page archetype",
		Long: `pagegen rewrites a single Elm page module into one of four canonical page
archetypes, inserting or replacing the boilerplate declarations while keeping
everything else verbatim. Replaced functions survive as commented-out text
right below their replacements, so regenerating a page never silently
discards custom logic.

Arguments:
  PATH        Path of the page module to rewrite
  TEMPLATE    Target page template: static|sandbox|element|advanced

A literal -- ends flag parsing; every token after it is taken as an
operand, in order.

Examples:
  # Rewrite a page as a sandbox page
  pagegen src/Pages/Home_.elm sandbox

  # Advanced page receiving the shared model and the request
  pagegen -s -r src/Pages/Settings.elm advanced

  # Preview the result on stdout without touching the file
  pagegen --dry-run src/Pages/Home_.elm static

Configuration file (.pagegen.yml) example:
  template: element
  shared: true
  request: false`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runRootCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("shared", "s", false, "Pass the shared model to the page functions")
	cmd.Flags().BoolP("request", "r", false, "Pass the request object to the page functions")
	cmd.Flags().Bool("dry-run", false, "Print the result without overwriting the file")
	cmd.Flags().BoolP("interactive", "i", false, "Prompt for a missing template and unset toggles")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pagegen.yml in the current directory)")
	cmd.Flags().BoolP("version", "V", false, "Print version information")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
		fmt.Fprintf(cmd.OutOrStdout(), "pagegen %s\n", getVersion())
		return nil
	}

	run, err := buildRun(cmd, args)
	if err != nil {
		return err
	}

	gen := orchestrator.New()
	out, err := gen.Generate(cmd.Context(), orchestrator.Request{
		Source:    orchestrator.SourceFromFile(run.path),
		Archetype: run.archetype,
		Shared:    run.shared,
		Request:   run.request,
	})
	if err != nil {
		return err
	}

	if run.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	return writePage(run.path, out)
}

// run holds the fully resolved inputs for one invocation: operands and
// flags first, then configuration defaults, then interactive answers.
type run struct {
	path      string
	archetype templates.Archetype
	shared    bool
	request   bool
	dryRun    bool
}

func buildRun(cmd *cobra.Command, args []string) (run, error) {
	var r run
	r.dryRun, _ = cmd.Flags().GetBool("dry-run")
	interactive, _ := cmd.Flags().GetBool("interactive")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return run{}, err
	}

	if len(args) == 0 {
		return run{}, errMissingOperand
	}
	r.path = args[0]

	// An unrecognized TEMPLATE token is treated as absent, not as an error.
	archetype, haveArchetype := templates.Static, false
	if len(args) > 1 {
		archetype, haveArchetype = templates.ParseArchetype(args[1])
	}
	if !haveArchetype && cfg.Template != "" {
		archetype, haveArchetype = templates.ParseArchetype(cfg.Template)
	}

	r.shared, _ = cmd.Flags().GetBool("shared")
	r.request, _ = cmd.Flags().GetBool("request")
	r.shared = r.shared || cfg.Shared
	r.request = r.request || cfg.Request

	if interactive {
		if err := promptMissing(cmd, cfg, &r, &archetype, &haveArchetype); err != nil {
			return run{}, err
		}
	}

	if !haveArchetype {
		return run{}, errMissingOperand
	}
	r.archetype = archetype
	return r, nil
}

// promptMissing asks for whatever the flags and configuration left
// undecided. Explicit inputs are never re-asked.
func promptMissing(cmd *cobra.Command, cfg *config.File, r *run, archetype *templates.Archetype, have *bool) error {
	driver := newDriver()
	ctx := cmd.Context()

	if !*have {
		selected, err := driver.SelectArchetype(ctx, templates.Static)
		if err != nil {
			return err
		}
		*archetype = selected
		*have = true
	}

	if !cmd.Flags().Changed("shared") && !cfg.Shared {
		shared, err := driver.Confirm(ctx, "Pass the shared model to the page functions?", false)
		if err != nil {
			return err
		}
		r.shared = shared
	}
	if !cmd.Flags().Changed("request") && !cfg.Request {
		request, err := driver.Confirm(ctx, "Pass the request object to the page functions?", false)
		if err != nil {
			return err
		}
		r.request = request
	}
	return nil
}

// loadConfig resolves and reads the optional configuration file. A missing
// implicit file is fine; a missing explicit one is an error.
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	explicit, _ := cmd.Flags().GetString("config")

	if explicit != "" {
		cfg, err := config.Load(explicit)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	path := config.Find()
	if path == "" {
		return &config.File{}, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.File{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// writePage truncates and rewrites the target in place, with the same extra
// trailing newline the dry-run output gets. The file must already exist;
// this tool rewrites pages, it does not create them.
func writePage(path string, out []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("pagegen: open %s: %w", path, err)
	}
	if _, err := f.Write(append(out, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("pagegen: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pagegen: write %s: %w", path, err)
	}
	return nil
}
