package eflog

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSummary is returned when the log has no "test result:" line.
	ErrMissingSummary = errors.New("missing test result summary line")
	// ErrInconsistent is matched by every *ConsistencyError.
	ErrInconsistent = errors.New("failure count mismatch")
)

// ConsistencyError reports that the panic-trace lines found do not add up to
// the failed count in the summary. The log is truncated or the pattern stale.
type ConsistencyError struct {
	Extracted int
	Reported  int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("failed to parse log: found %d panicked tests, summary reports %d failed",
		e.Extracted, e.Reported)
}

// Is makes errors.Is(err, ErrInconsistent) hold.
func (e *ConsistencyError) Is(target error) bool {
	return target == ErrInconsistent
}

// PathError reports a panicked test path without a category segment.
type PathError struct {
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("qualified test path %q has no category segment", e.Path)
}
