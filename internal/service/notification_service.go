package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/config"
	"github.com/spec-kit/roster-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventEmployeeAdded, n.handleEmployeeChanged)
	n.dispatcher.Subscribe(events.EventEmployeeReplaced, n.handleEmployeeChanged)
	n.dispatcher.Subscribe(events.EventSearchCompleted, n.handleSearchCompleted)
	n.dispatcher.Subscribe(events.EventSearchFailed, n.handleSearchFailed)
}

func (n *NotificationService) handleEmployeeChanged(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSearchCompleted(ctx context.Context, event events.Event) error {
	n.logger.Info("SearchCompleted", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleSearchFailed(ctx context.Context, event events.Event) error {
	n.logger.Info("SearchFailed", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
