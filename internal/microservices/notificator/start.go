package notificator

import (
	"context"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/common/mq"
	"kitchen-pos/internal/microservices/notificator/service"
)

func Start(ctx context.Context, client *mq.Client, exchange, queue string, log *logger.Logger) error {
	if err := client.DeclareTopology(exchange, queue); err != nil {
		return err
	}
	deliveries, err := client.Consume(queue, "notificator", 10)
	if err != nil {
		return err
	}
	log.Info("notificator_started", map[string]any{"queue": queue, "exchange": exchange})
	return service.New(log).NotificatorService.Notify(ctx, deliveries)
}
