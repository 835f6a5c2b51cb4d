// Package prompt supplies the interactive prompts behind the CLI's
// --interactive mode. The actual terminal implementation hides behind the
// Driver interface so command logic can be tested without a real terminal.
package prompt
