package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-pagegen/pkg/templates"
)

// ErrAborted signals the user aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")

// Driver abstracts the interactive prompts so callers can swap
// implementations.
type Driver interface {
	SelectArchetype(ctx context.Context, def templates.Archetype) (templates.Archetype, error)
	Confirm(ctx context.Context, message string, def bool) (bool, error)
}

// NewSurveyDriver returns the survey-backed terminal driver.
func NewSurveyDriver() Driver {
	return &surveyDriver{}
}

type surveyDriver struct{}

func (d *surveyDriver) SelectArchetype(ctx context.Context, def templates.Archetype) (templates.Archetype, error) {
	if err := ctx.Err(); err != nil {
		return def, err
	}
	var out string
	sel := &survey.Select{
		Message: "Page template:",
		Options: templates.Names(),
		Default: def.String(),
	}
	if err := survey.AskOne(sel, &out); err != nil {
		return def, translateSurveyErr(err)
	}
	archetype, ok := templates.ParseArchetype(out)
	if !ok {
		return def, nil
	}
	return archetype, nil
}

func (d *surveyDriver) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return def, err
	}
	out := def
	confirm := &survey.Confirm{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(confirm, &out); err != nil {
		return def, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
