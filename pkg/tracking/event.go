package tracking

import "time"

// Event represents an event for tracking.
//
// Client is the opaque random ID minted by the web snippet, it is never
// derived from account data.
type Event struct {
	ID         string                 `json:"id"`
	Client     string                 `json:"client"`
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties"`
	Timestamp  time.Time              `json:"timestamp"`
}
