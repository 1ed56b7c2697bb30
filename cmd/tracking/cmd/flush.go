package cmd

import (
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/marble-stack/financial-planning/pkg/redis"
	"github.com/marble-stack/financial-planning/pkg/sql"
	"github.com/marble-stack/financial-planning/pkg/tracking/backends"
	"github.com/marble-stack/financial-planning/pkg/tracking/buffer"
)

var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "drains the event buffer once",
	RunE:  runFlush,
}

func runFlush(*cobra.Command, []string) error {
	rdb := redis.NewRedis(config.Redis)

	db, err := sql.Open(config.DB)
	if err != nil {
		return errors.Wrap(err, "failed to open db")
	}

	eventLog := backends.NewEventLogBackend(db)
	buf := buffer.NewBuffer(rdb)

	total := 0

	for {
		count, err := buf.Flush(eventLog.StoreBatch)
		if err != nil {
			return errors.Wrap(err, "failed to flush")
		}

		total += count

		if count < buffer.BatchSize {
			break
		}
	}

	log.Printf("flushed %d events\n", total)

	return nil
}
