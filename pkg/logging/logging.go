// Package logging builds the process-wide zap logger for mdbundle.
package logging

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"
)

// Setup constructs the application logger. Interactive sessions get the
// human-readable development encoder; everything else (pipes, files, CI)
// gets production JSON. Both configurations write to stderr, keeping
// stdout free for command output.
func Setup(appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if term.IsTerminal(int(os.Stderr.Fd())) {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
