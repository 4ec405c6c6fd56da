// Package bundle concatenates the Markdown files under a directory into a
// single banner-separated document. A run is a one-shot batch transform:
// scan, order, read, write. Fatal failures (invalid input directory,
// traversal errors, output-file errors) are returned to the caller;
// per-file read failures are logged and the file skipped.
package bundle

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Run executes a full bundle pass with the given arguments.
func Run(args Arguments, logger *zap.Logger) error {
	if err := args.Validate(); err != nil {
		return fmt.Errorf("bundle: invalid arguments: %w", err)
	}

	// Resolve to the canonical target before validating and scanning:
	// Stat follows symlinks but WalkDir lstats its root, so a symlinked
	// input directory has to be scanned at its target.
	inputDir, err := resolvePath(args.InputDir)
	if err != nil {
		return fmt.Errorf("bundle: resolve input directory: %w", err)
	}

	info, err := os.Stat(inputDir)
	if err != nil {
		return fmt.Errorf("bundle: input directory does not exist: %s: %w", inputDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, inputDir)
	}

	outputPath, err := resolvePath(args.OutputFile)
	if err != nil {
		return fmt.Errorf("bundle: resolve output path: %w", err)
	}

	logger.Info("Scanning directory", zap.String("directory", inputDir))

	files, err := Scan(inputDir)
	if err != nil {
		return err
	}

	files, err = excludeOutput(files, outputPath)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		logger.Warn("No markdown files found", zap.String("directory", inputDir))
		return nil
	}

	logger.Info("Found markdown files", zap.Int("count", len(files)))

	if err := Concatenate(files, outputPath, inputDir, logger); err != nil {
		return err
	}

	// The count includes files later skipped by recoverable read errors.
	logger.Info("Successfully concatenated files",
		zap.Int("count", len(files)),
		zap.String("output", outputPath))
	return nil
}

// excludeOutput drops the resolved output path from the scanned list so a
// previous run's artifact is never treated as input.
func excludeOutput(files []string, outputPath string) ([]string, error) {
	resolvedOut, err := resolvePath(outputPath)
	if err != nil {
		return nil, fmt.Errorf("bundle: resolve output path: %w", err)
	}

	kept := make([]string, 0, len(files))
	for _, file := range files {
		if resolved, rerr := resolvePath(file); rerr == nil && resolved == resolvedOut {
			continue
		}
		kept = append(kept, file)
	}
	return kept, nil
}
