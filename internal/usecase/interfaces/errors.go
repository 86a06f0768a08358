package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional write lost
// against the stored state (stale status, duplicate key).
var ErrConditionFailed = errors.New("conditional write failed")
