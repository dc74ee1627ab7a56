package export

import "errors"

var (
	// ErrInProgress means an export for the same session is still running.
	// The caller gets no artifact and no work is started.
	ErrInProgress = errors.New("export already in progress")

	// ErrUnknownMode means the requested mode is neither ats nor visual.
	ErrUnknownMode = errors.New("unknown export mode")
)
