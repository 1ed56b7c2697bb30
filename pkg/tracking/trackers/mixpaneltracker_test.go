package trackers_test

import (
	"reflect"
	"testing"

	"github.com/dukex/mixpanel"

	"github.com/marble-stack/financial-planning/pkg/pubsub"
	"github.com/marble-stack/financial-planning/pkg/tracking/trackers"
)

func TestMixpanelTracker_Track(t *testing.T) {
	client := mixpanel.NewMock()
	tracker := trackers.NewMixpanelTracker(client)

	id := "client-123"
	event := pubsub.NewAccountCreatedEvent(id, "free")

	err := tracker.Track(&event)
	if err != nil {
		t.Fatal(err)
	}

	people := client.People[id]

	if len(people.Events) != 1 {
		t.Fatal("event not logged")
	}

	properties := map[string]interface{}{"plan": "free"}

	if !reflect.DeepEqual(people.Events[0].Properties, properties) {
		t.Fatal("did not store properties.")
	}
}

func TestMixpanelTracker_Track_Buckets(t *testing.T) {
	client := mixpanel.NewMock()
	tracker := trackers.NewMixpanelTracker(client)

	id := "client-123"
	event := pubsub.NewCSVUploadedEvent(id, 1234, 85)

	err := tracker.Track(&event)
	if err != nil {
		t.Fatal(err)
	}

	people := client.People[id]

	if len(people.Events) != 1 {
		t.Fatal("event not logged")
	}

	properties := people.Events[0].Properties

	if properties["rows"] != "1001-10000" {
		t.Fatalf("rows was not bucketed: %v", properties["rows"])
	}

	if properties["success_rate"] != "70-89%" {
		t.Fatalf("success rate was not bucketed: %v", properties["success_rate"])
	}
}

func TestMixpanelTracker_CanTrack(t *testing.T) {
	tracker := trackers.NewMixpanelTracker(mixpanel.NewMock())

	heartbeat := pubsub.NewHeartbeatEvent("client-123")
	if tracker.CanTrack(&heartbeat) {
		t.Fatal("heartbeats should not go to the vendor")
	}

	budget := pubsub.NewBudgetCreatedEvent("client-123", 10, 4)
	if !tracker.CanTrack(&budget) {
		t.Fatal("budget events should be tracked")
	}
}
