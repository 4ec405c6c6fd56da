package bundle

import "errors"

var (
	// ErrNotDirectory reports an input path that exists but is not a directory.
	ErrNotDirectory = errors.New("bundle: input path is not a directory")

	// ErrInvalidUTF8 reports file content that cannot be decoded as UTF-8 text.
	ErrInvalidUTF8 = errors.New("bundle: file content is not valid UTF-8")
)
