package cmd

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/spf13/cobra"

	"github.com/marble-stack/financial-planning/pkg/pubsub"
	"github.com/marble-stack/financial-planning/pkg/redis"
	"github.com/marble-stack/financial-planning/pkg/tracking/trackers"
)

var worker = &cobra.Command{
	Use:   "worker",
	Short: "runs a index worker",
	RunE:  runWorker,
}

func runWorker(*cobra.Command, []string) error {
	rdb := redis.NewRedis(config.Redis)

	var err error
	client, err = elasticsearch.NewDefaultClient()
	if err != nil {
		return err
	}

	queue := pubsub.NewQueue(rdb)
	events := queue.Subscribe(pubsub.EventTopic)

	for event := range events {
		go handleEvent(event)
	}

	return nil
}

func handleEvent(event *pubsub.Event) {
	request, err := requestFor(event)
	if err != nil {
		log.Printf("failed to create request: %v\n", err)
		return
	}

	if request == nil {
		return
	}

	res, err := request.Do(context.Background(), client)
	if err != nil {
		log.Printf("failed to execute request: %v\n", err)
		return
	}

	_ = res.Body.Close()
}

// requestFor indexes the tracked rendition of an event, so the search index
// only ever holds scrubbed, bucketed data.
func requestFor(event *pubsub.Event) (esapi.Request, error) {
	tracked := trackers.Transform(event)
	if tracked == nil {
		return nil, nil
	}

	if tracked.Name == trackers.ClientDeleted {
		return &esapi.DeleteByQueryRequest{
			Index: []string{"events"},
			Body:  strings.NewReader(`{"query": {"term": {"client": "` + tracked.Client + `"}}}`),
		}, nil
	}

	body, err := json.Marshal(tracked)
	if err != nil {
		return nil, err
	}

	return &esapi.IndexRequest{
		Index:      "events",
		DocumentID: tracked.ID,
		Body:       strings.NewReader(string(body)),
	}, nil
}
