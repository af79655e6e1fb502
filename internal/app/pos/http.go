package pos

import (
	"context"
	"net/http"

	"kitchen-pos/internal/common/httpx"
	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/common/mq"
	"kitchen-pos/internal/config"
	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/events"
	catalogHandlers "kitchen-pos/internal/microservices/catalog/handlers"
	catalogService "kitchen-pos/internal/microservices/catalog/service"
	orderHandlers "kitchen-pos/internal/microservices/order/handlers"
	orderService "kitchen-pos/internal/microservices/order/service"
	tableHandlers "kitchen-pos/internal/microservices/table/handlers"
	tableService "kitchen-pos/internal/microservices/table/service"
)

// NewRouter mounts every POS endpoint plus /health behind the logging
// middleware.
func NewRouter(tx domain.Transactor, pub domain.EventPublisher, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()

	catalogHandlers.New(catalogService.New(catalogService.Deps{Tx: tx, Events: pub, Log: log}), log).Register(mux)
	orderHandlers.New(orderService.New(orderService.Deps{Tx: tx, Events: pub, Log: log}), log).Register(mux)
	tableHandlers.New(tableService.New(tableService.Deps{Tx: tx, Events: pub, Log: log}), log).Register(mux)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return httpx.Logging(log, mux)
}

// Run serves the POS API until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	tx, closeStore, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	var pub domain.EventPublisher = domain.NopPublisher{}
	if cfg.RabbitMQ.Enabled {
		client, err := mq.Dial(cfg.RabbitMQURL())
		if err != nil {
			return err
		}
		defer client.Close()
		if err := client.DeclareTopology(cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue); err != nil {
			return err
		}
		pub = events.NewPublisher(client, cfg.RabbitMQ.Exchange, log)
	}

	srv := httpx.New(cfg.HTTPAddr(), NewRouter(tx, pub, log))
	log.Info("service_started", map[string]any{
		"addr":    cfg.HTTPAddr(),
		"storage": cfg.Storage.Driver,
		"events":  cfg.RabbitMQ.Enabled,
	})
	err = srv.Run(ctx)
	log.Info("service_stopped", nil)
	return err
}
