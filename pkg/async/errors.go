package async

import "errors"

// ErrAwaitTimeout is returned by AwaitTimeout when the future does not
// complete within the given duration.
var ErrAwaitTimeout = errors.New("async: timed out waiting for future completion")
