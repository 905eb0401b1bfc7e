package models

// Notification levels shown to the user.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
)

// Notification is the service-side equivalent of a toast message.
type Notification struct {
	Message string `json:"message"`
	Level   string `json:"level"`
	Time    int64  `json:"time"`
}

func NewNotification(message, level string) Notification {
	return Notification{
		Message: message,
		Level:   level,
		Time:    ResponseCurrentTime(),
	}
}

// TripDetails is the full snapshot of a trip session returned by the
// API: ordered stops, the current route (if any), held search results,
// and the notification feed.
type TripDetails struct {
	ID              string         `json:"id"`
	Active          bool           `json:"active"`
	RequireStopName bool           `json:"requireStopName"`
	SearchEnabled   bool           `json:"searchEnabled"`
	PendingStopName string         `json:"pendingStopName"`
	Stops           []Stop         `json:"stops"`
	Route           *Route         `json:"route,omitempty"`
	SearchResults   []SearchResult `json:"searchResults"`
	Notifications   []Notification `json:"notifications"`
}
