package server

import (
	"database/sql"
	"os"

	"github.com/faciam-dev/gcms/internal/config"
	"github.com/faciam-dev/gcms/internal/events"
	"github.com/faciam-dev/gcms/internal/logger"
)

// initEvents initializes the global events dispatcher.
func initEvents(db *sql.DB, cfg config.Config) {
	evtConf, err := events.LoadConfig(cfg.EventsConfig)
	if err != nil {
		logger.L.Error("Failed to load events configuration", "err", err)
		os.Exit(1)
	}
	var sinks []events.Sink
	if wh := events.NewWebhookSink(evtConf.Sinks.Webhook); wh != nil {
		sinks = append(sinks, wh)
	}
	if rs, err := events.NewRedisSink(evtConf.Sinks.Redis); err == nil && rs != nil {
		sinks = append(sinks, rs)
	} else if err != nil {
		logger.L.Error("redis sink", "err", err)
	}
	if ks, err := events.NewKafkaSink(evtConf.Sinks.Kafka); err == nil && ks != nil {
		sinks = append(sinks, ks)
	} else if err != nil {
		logger.L.Error("kafka sink", "err", err)
	}
	var dlq events.DLQ
	if db != nil {
		sqlDLQ := &events.SQLDLQ{DB: db, TablePrefix: cfg.TablePrefix}
		dlq = sqlDLQ
	}
	events.Default = events.NewDispatcher(evtConf, dlq, sinks...)
}
