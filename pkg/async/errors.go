package async

import "errors"

// ErrTimeout indicates AwaitWithTimeout gave up before the future settled.
var ErrTimeout = errors.New("async: operation timed out waiting for future completion")
