package trackers

import (
	"fmt"

	"github.com/dukex/mixpanel"

	"github.com/marble-stack/financial-planning/pkg/pubsub"
)

type MixpanelTracker struct {
	client mixpanel.Mixpanel
}

func NewMixpanelTracker(client mixpanel.Mixpanel) *MixpanelTracker {
	return &MixpanelTracker{client: client}
}

func (m *MixpanelTracker) CanTrack(event *pubsub.Event) bool {
	return event.Type != pubsub.EventTypeHeartbeat
}

func (m *MixpanelTracker) Track(event *pubsub.Event) error {
	tracked := Transform(event)
	if tracked == nil {
		return fmt.Errorf("invalid type for tracker: %d", event.Type)
	}

	if tracked.Name == ClientDeleted {
		return m.client.Update(tracked.Client, &mixpanel.Update{
			IP:        "0",
			Operation: "$delete",
		})
	}

	err := m.client.Track(tracked.Client, tracked.Name, &mixpanel.Event{IP: "0", Properties: tracked.Properties})
	if err != nil {
		return err
	}

	if tracked.Name == AccountCreated {
		err := m.client.Update(tracked.Client, &mixpanel.Update{
			IP:         "0",
			Operation:  "$set",
			Properties: tracked.Properties,
		})

		if err != nil {
			return err
		}
	}

	return nil
}
