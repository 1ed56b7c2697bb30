package trackers

import (
	"fmt"
	"log"

	"github.com/marble-stack/financial-planning/pkg/pubsub"
)

// LogTracker writes events to the debug log. It stands in when no vendor is
// configured so call sites behave the same either way.
type LogTracker struct {
}

func NewLogTracker() *LogTracker {
	return &LogTracker{}
}

func (l *LogTracker) CanTrack(*pubsub.Event) bool {
	return true
}

func (l *LogTracker) Track(event *pubsub.Event) error {
	tracked := Transform(event)
	if tracked == nil {
		return fmt.Errorf("invalid type for tracker: %d", event.Type)
	}

	log.Printf("track %s client: %s properties: %v\n", tracked.Name, tracked.Client, tracked.Properties)

	return nil
}
