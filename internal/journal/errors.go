package journal

import "errors"

// ErrInvalidTime is returned when clock text cannot be parsed. Only the time
// supplied for a new entry surfaces this; unparseable existing lines are
// skipped during extraction instead.
var ErrInvalidTime = errors.New("invalid time")
