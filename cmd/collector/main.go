package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/marble-stack/financial-planning/pkg/analytics"
	"github.com/marble-stack/financial-planning/pkg/apps"
	"github.com/marble-stack/financial-planning/pkg/conf"
	httputil "github.com/marble-stack/financial-planning/pkg/http"
	"github.com/marble-stack/financial-planning/pkg/http/middlewares"
	"github.com/marble-stack/financial-planning/pkg/ingest"
	"github.com/marble-stack/financial-planning/pkg/pubsub"
	"github.com/marble-stack/financial-planning/pkg/redis"
	"github.com/marble-stack/financial-planning/pkg/sql"
	"github.com/marble-stack/financial-planning/pkg/tracking/buffer"
)

type Conf struct {
	Listen conf.AddrConf     `mapstructure:"listen"`
	DB     conf.PostgresConf `mapstructure:"db"`
	Redis  conf.RedisConf    `mapstructure:"redis"`
}

func parse() (*Conf, error) {
	var file string
	flag.StringVar(&file, "c", "config.toml", "config file")
	flag.Parse()

	config := &Conf{}
	err := conf.Load(file, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func main() {
	config, err := parse()
	if err != nil {
		log.Fatal("failed to parse config")
	}

	db, err := sql.Open(config.DB)
	if err != nil {
		log.Fatalf("failed to open db: %s", err)
	}

	rdb := redis.NewRedis(config.Redis)

	queue := pubsub.NewQueue(rdb)
	buf := buffer.NewBuffer(rdb)

	kmw := middlewares.NewWriteKeyMiddleware(apps.NewBackend(db))

	ingestEndpoint := ingest.NewEndpoint(queue, buf)
	analyticsEndpoint := analytics.NewEndpoint(analytics.NewBackend(db))

	r := mux.NewRouter()

	r.MethodNotAllowedHandler = http.HandlerFunc(httputil.NotAllowedHandler)
	r.NotFoundHandler = http.HandlerFunc(httputil.NotFoundHandler)

	r.PathPrefix("/v1/events").Handler(kmw.Middleware(ingestEndpoint.Router()))
	r.PathPrefix("/v1/analytics").Handler(
		http.StripPrefix("/v1/analytics", kmw.Middleware(analyticsEndpoint.Router())),
	)

	addr := fmt.Sprintf("%s:%d", config.Listen.Host, config.Listen.Port)

	log.Fatal(http.ListenAndServe(addr, httputil.CORS(r)))
}
