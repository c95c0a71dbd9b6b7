package domain

// ExternalBusyWindow is a busy period read from an external calendar.
// It lives only for the duration of one request.
type ExternalBusyWindow struct {
	Interval
	SourceID string `json:"sourceId"`
	// Marker is the private tag written on events created by this system
	Marker string `json:"marker,omitempty"`
}

// IsSelfOrigin returns true if the window was produced by one of our own bookings
func (w ExternalBusyWindow) IsSelfOrigin() bool {
	return w.Marker != ""
}
