package bundle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	// separatorWidth is the number of '=' characters in each banner rule.
	separatorWidth = 80

	// blockGap separates consecutive file blocks.
	blockGap = "\n\n"
)

var separatorRule = strings.Repeat("=", separatorWidth)

// Concatenate writes the files, in the given order, into the file at
// outputPath, each preceded by a banner labeled with the file's path
// relative to baseDir. The output file is created or truncated and stays
// open for the whole run; it is closed on every exit path.
//
// Per-file read failures (permission denied, undecodable content, any
// other read error) are logged as warnings and the file is skipped
// without emitting a banner. Failures on the output stream abort the run.
func Concatenate(files []string, outputPath, baseDir string, logger *zap.Logger) (err error) {
	resolvedOut, err := resolvePath(outputPath)
	if err != nil {
		return fmt.Errorf("bundle: resolve output path: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("bundle: create output file %s: %w", outputPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("bundle: close output file: %w", cerr))
		}
	}()

	writer := bufio.NewWriter(out)
	written := 0

	for _, file := range files {
		// Guard against self-inclusion when the output lives inside the
		// scanned tree, for example on a re-run.
		if resolved, rerr := resolvePath(file); rerr == nil && resolved == resolvedOut {
			logger.Debug("Skipping output file found among scan results",
				zap.String("file", file))
			continue
		}

		data, rerr := readText(file)
		if rerr != nil {
			switch {
			case errors.Is(rerr, fs.ErrPermission):
				logger.Warn("Permission denied reading file, skipping",
					zap.String("file", file))
			case errors.Is(rerr, ErrInvalidUTF8):
				logger.Warn("File content is not valid UTF-8, skipping",
					zap.String("file", file))
			default:
				logger.Warn("Failed to read file, skipping",
					zap.String("file", file),
					zap.Error(rerr))
			}
			continue
		}

		if written > 0 {
			if _, werr := writer.WriteString(blockGap); werr != nil {
				return fmt.Errorf("bundle: write output file: %w", werr)
			}
		}
		if werr := writeSeparator(writer, displayLabel(file, baseDir)); werr != nil {
			return fmt.Errorf("bundle: write output file: %w", werr)
		}
		if _, werr := writer.Write(data); werr != nil {
			return fmt.Errorf("bundle: write output file: %w", werr)
		}
		written++
	}

	if ferr := writer.Flush(); ferr != nil {
		return fmt.Errorf("bundle: flush output file: %w", ferr)
	}
	return nil
}

// readText reads the whole file and rejects content that does not decode
// as UTF-8. All failures are recoverable at the per-file boundary: the
// caller classifies them and skips the file.
func readText(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}
	return data, nil
}

// writeSeparator emits the banner block preceding a file's content: a
// fixed-width rule, the display label, a second rule, and a blank line.
func writeSeparator(w io.Writer, label string) error {
	_, err := fmt.Fprintf(w, "%s\nFile: %s\n%s\n\n", separatorRule, label, separatorRule)
	return err
}
