package manifest

import "errors"

var (
	// ErrUnknownFormat is returned for manifest files with an extension no
	// decoder is registered for.
	ErrUnknownFormat = errors.New("unknown manifest format")
	// ErrNoMatch is returned when an image glob matches no files.
	ErrNoMatch = errors.New("pattern matched no files")
	// ErrTooDeep is returned for sections nested below subsubsections.
	ErrTooDeep = errors.New("sections nested too deeply")
)
