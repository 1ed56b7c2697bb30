// Package ingest is the collection endpoint the web snippets report to.
package ingest

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	httputil "github.com/marble-stack/financial-planning/pkg/http"
	"github.com/marble-stack/financial-planning/pkg/pubsub"
	"github.com/marble-stack/financial-planning/pkg/tracking"
	"github.com/marble-stack/financial-planning/pkg/tracking/buffer"
	"github.com/marble-stack/financial-planning/pkg/tracking/trackers"
)

// EventPayload is the wire shape a snippet sends: a short name, the opaque
// client ID and a small map of primitive properties.
type EventPayload struct {
	Client     string                 `json:"client"`
	Name       string                 `json:"name"`
	Properties map[string]interface{} `json:"properties"`
}

type BatchPayload struct {
	Events []EventPayload `json:"events"`
}

var (
	errUnknownEvent  = errors.New("unknown event")
	errSensitive     = errors.New("sensitive property")
	errMissingClient = errors.New("missing client")
)

type Endpoint struct {
	queue  *pubsub.Queue
	buffer *buffer.Buffer
}

func NewEndpoint(queue *pubsub.Queue, buffer *buffer.Buffer) *Endpoint {
	return &Endpoint{
		queue:  queue,
		buffer: buffer,
	}
}

func (e *Endpoint) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/v1/events", e.addEvent).Methods("POST")
	r.HandleFunc("/v1/events/batch", e.addBatch).Methods("POST")

	return r
}

func (e *Endpoint) addEvent(w http.ResponseWriter, r *http.Request) {
	b, err := ioutil.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid request body")
		return
	}

	payload := &EventPayload{}
	err = json.Unmarshal(b, payload)
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid request body")
		return
	}

	event, err := eventFor(payload)
	if err != nil {
		writeEventError(w, err)
		return
	}

	e.accept(*event)

	httputil.JsonSuccess(w)
}

func (e *Endpoint) addBatch(w http.ResponseWriter, r *http.Request) {
	b, err := ioutil.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid request body")
		return
	}

	payload := &BatchPayload{}
	err = json.Unmarshal(b, payload)
	if err != nil {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid request body")
		return
	}

	if len(payload.Events) == 0 || len(payload.Events) > buffer.BatchSize {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid batch size")
		return
	}

	events := make([]pubsub.Event, 0)
	for i := range payload.Events {
		event, err := eventFor(&payload.Events[i])
		if err != nil {
			writeEventError(w, err)
			return
		}

		events = append(events, *event)
	}

	for _, event := range events {
		e.accept(event)
	}

	httputil.JsonSuccess(w)
}

// accept hands an event to delivery. Once a payload passed validation the
// snippet gets a success, failures beyond this point are logged and never
// surfaced to the suite's users.
func (e *Endpoint) accept(event pubsub.Event) {
	err := e.queue.Publish(pubsub.EventTopic, event)
	if err != nil {
		log.Printf("queue.Publish err: %v\n", err)
	}

	tracked := trackers.Transform(&event)
	if tracked == nil {
		return
	}

	err = e.buffer.Push(tracked)
	if err != nil {
		log.Printf("buffer.Push err: %v\n", err)
	}
}

func writeEventError(w http.ResponseWriter, err error) {
	switch err {
	case errUnknownEvent:
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeUnknownEvent, "unknown event")
	case errSensitive:
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeSensitiveProperty, "sensitive property")
	default:
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeInvalidRequestBody, "invalid request body")
	}
}

func eventFor(payload *EventPayload) (*pubsub.Event, error) {
	if payload.Client == "" {
		return nil, errMissingClient
	}

	for key, value := range payload.Properties {
		if tracking.IsSensitiveKey(key) || tracking.IsSensitiveValue(value) {
			return nil, errSensitive
		}
	}

	var event pubsub.Event

	switch payload.Name {
	case trackers.AccountCreated:
		event = pubsub.NewAccountCreatedEvent(payload.Client, getString(payload.Properties, "plan"))
	case trackers.CSVUploaded:
		rows, err := getInt(payload.Properties, "rows")
		if err != nil {
			return nil, err
		}

		rate, err := getInt(payload.Properties, "success_rate")
		if err != nil {
			return nil, err
		}

		event = pubsub.NewCSVUploadedEvent(payload.Client, rows, rate)
	case trackers.BudgetCreated:
		rows, err := getInt(payload.Properties, "rows")
		if err != nil {
			return nil, err
		}

		categories, err := getInt(payload.Properties, "categories")
		if err != nil {
			return nil, err
		}

		event = pubsub.NewBudgetCreatedEvent(payload.Client, rows, categories)
	case trackers.ReportGenerated:
		event = pubsub.NewReportGeneratedEvent(payload.Client, pubsub.ReportKind(getString(payload.Properties, "kind")))
	case trackers.GoalCreated:
		event = pubsub.NewGoalCreatedEvent(payload.Client, getString(payload.Properties, "kind"))
	case trackers.PlanShared:
		event = pubsub.NewPlanSharedEvent(payload.Client, getString(payload.Properties, "medium"))
	case trackers.Heartbeat:
		event = pubsub.NewHeartbeatEvent(payload.Client)
	case trackers.ClientDeleted:
		event = pubsub.NewClientDeletedEvent(payload.Client)
	default:
		return nil, errUnknownEvent
	}

	return &event, nil
}

func getString(properties map[string]interface{}, key string) string {
	val, _ := properties[key].(string)
	return val
}

func getInt(properties map[string]interface{}, key string) (int, error) {
	switch val := properties[key].(type) {
	case int:
		return val, nil
	case float64:
		return int(val), nil
	default:
		return 0, errors.New("failed to recover int property: " + key)
	}
}
