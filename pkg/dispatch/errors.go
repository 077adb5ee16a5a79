package dispatch

import "errors"

// Dispatcher error definitions using sentinel errors pattern
var (
	ErrSinkNotConfigured = errors.New("submission sink not configured")
	ErrSendFailed        = errors.New("failed to send submission")
)
