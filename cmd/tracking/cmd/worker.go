package cmd

import (
	"log"
	"time"

	"github.com/dukex/mixpanel"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/marble-stack/financial-planning/pkg/pubsub"
	"github.com/marble-stack/financial-planning/pkg/redis"
	"github.com/marble-stack/financial-planning/pkg/sql"
	"github.com/marble-stack/financial-planning/pkg/tracking/backends"
	"github.com/marble-stack/financial-planning/pkg/tracking/buffer"
	"github.com/marble-stack/financial-planning/pkg/tracking/delivery"
	"github.com/marble-stack/financial-planning/pkg/tracking/trackers"
	"github.com/marble-stack/financial-planning/pkg/tracking/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "runs a tracking worker",
	RunE:  runWorker,
}

func runWorker(*cobra.Command, []string) error {
	rdb := redis.NewRedis(config.Redis)
	queue := pubsub.NewQueue(rdb)

	db, err := sql.Open(config.DB)
	if err != nil {
		return errors.Wrap(err, "failed to open db")
	}

	eventLog := backends.NewEventLogBackend(db)

	buf := buffer.NewBuffer(rdb)
	flusher := buffer.NewFlusher(buf, eventLog.StoreBatch, 10*time.Second)
	flusher.Start()

	stats := delivery.NewStats()

	dispatch := worker.NewDispatcher(5, &worker.Config{
		Trackers: setupTrackers(),
		Stats:    stats,
	})
	dispatch.Run()

	go func() {
		for range time.Tick(time.Minute) {
			log.Println(stats.String())
		}
	}()

	events := queue.Subscribe(pubsub.EventTopic)

	for event := range events {
		dispatch.Dispatch(event)
	}

	return nil
}

// setupTrackers wires the vendor when a token is configured and falls back
// to the debug log tracker otherwise.
func setupTrackers() []trackers.Tracker {
	if config.Mixpanel.Token == "" {
		log.Println("no mixpanel token, events go to the debug log")
		return []trackers.Tracker{trackers.NewLogTracker()}
	}

	client := mixpanel.New(config.Mixpanel.Token, config.Mixpanel.URL)

	return []trackers.Tracker{trackers.NewMixpanelTracker(client)}
}
