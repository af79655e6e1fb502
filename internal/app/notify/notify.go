package notify

import (
	"context"

	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/common/mq"
	"kitchen-pos/internal/config"
	"kitchen-pos/internal/microservices/notificator"
)

// Run consumes POS events and logs them until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	client, err := mq.Dial(cfg.RabbitMQURL())
	if err != nil {
		return err
	}
	defer client.Close()
	return notificator.Start(ctx, client, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue, log)
}
