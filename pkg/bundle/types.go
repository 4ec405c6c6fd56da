package bundle

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Arguments holds the command-line arguments for a bundle run.
type Arguments struct {
	InputDir   string // The directory to scan for Markdown files
	OutputFile string // The destination path for the combined document
}

// Validate checks that both paths are present. Defaults are filled in by
// the CLI layer, so a blank field only occurs when a caller passes one
// explicitly.
func (a *Arguments) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.InputDir, validation.Required),
		validation.Field(&a.OutputFile, validation.Required),
	)
}
