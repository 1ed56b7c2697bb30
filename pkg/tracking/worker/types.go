package worker

import (
	"github.com/marble-stack/financial-planning/pkg/pubsub"
	"github.com/marble-stack/financial-planning/pkg/tracking/delivery"
	"github.com/marble-stack/financial-planning/pkg/tracking/trackers"
)

type Job struct {
	Event *pubsub.Event
}

type Config struct {
	Trackers []trackers.Tracker
	Stats    *delivery.Stats
}
