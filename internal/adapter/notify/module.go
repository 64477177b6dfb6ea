package notify

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/servicebooking/internal/config"
)

// Module exposes the configured notifier to fx graph.
var Module = fx.Options(
	fx.Provide(newNotifier),
	fx.Invoke(registerLifecycle),
)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

var (
	openAMQP = func(url, exchange string) (Notifier, error) {
		return NewAMQPNotifier(url, exchange)
	}
	openKafka = func(brokers []string, topic string) Notifier {
		return NewKafkaNotifier(brokers, topic)
	}
)

func newNotifier(p notifierParams) (Notifier, error) {
	n := p.Config.Notify
	switch n.Provider {
	case config.NotifierSMTP:
		return NewSMTPNotifier(n.SMTPHost, n.SMTPPort, n.SMTPUser, n.SMTPPassword, n.SenderEmail)
	case config.NotifierWebhook:
		return NewWebhookNotifier(n.WebhookURL, p.Logger)
	case config.NotifierAMQP:
		return openAMQP(n.AMQPURL, n.AMQPExchange)
	case config.NotifierKafka:
		return openKafka(n.KafkaBrokers, n.KafkaTopic), nil
	case config.NotifierLog, "":
		return NewLogNotifier(p.Logger), nil
	default:
		return nil, fmt.Errorf("unknown notifier %q", n.Provider)
	}
}

func registerLifecycle(lc fx.Lifecycle, n Notifier, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if err := n.Close(); err != nil {
				logger.Warn("close notifier", slog.String("error", err.Error()))
			}
			return nil
		},
	})
}
