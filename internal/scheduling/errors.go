package scheduling

import "errors"

var (
	// ErrInvalidSnapshot is returned when a snapshot lacks its service
	ErrInvalidSnapshot = errors.New("scheduling: snapshot without service")
)
