package worker

import (
	"log"
	"time"
)

type Worker struct {
	Work        chan Job
	WorkerQueue chan chan Job
	QuitChan    chan bool

	config *Config
}

func NewWorker(pool chan chan Job, config *Config) *Worker {
	return &Worker{
		Work:        make(chan Job),
		WorkerQueue: pool,
		QuitChan:    make(chan bool),
		config:      config,
	}
}

func (w *Worker) Start() {
	go func() {
		for {
			w.WorkerQueue <- w.Work

			select {
			case job := <-w.Work:
				// Receive a work request.
				w.handle(job)
			case <-w.QuitChan:
				// We have been asked to stop.
				return
			}
		}
	}()
}

// handle delivers an event to every tracker that wants it. Failures are
// logged and dropped, tracking is never fatal.
func (w *Worker) handle(job Job) {
	for _, tracker := range w.config.Trackers {
		if !tracker.CanTrack(job.Event) {
			continue
		}

		start := time.Now()

		err := tracker.Track(job.Event)
		if err != nil {
			log.Printf("tracker.Track err %v\n", err)
			continue
		}

		if w.config.Stats != nil {
			w.config.Stats.Record(time.Since(start))
		}
	}
}
