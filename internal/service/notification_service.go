package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/manga-catalog/admin-gateway/internal/config"
	"github.com/manga-catalog/admin-gateway/internal/events"
)

// NotificationService emits operational notifications for session events,
// failed logins and revoked sessions are the interesting ones for an admin
// surface.
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
	n.dispatcher.Subscribe(events.EventLoginSucceeded, n.handleLoginSucceeded)
	n.dispatcher.Subscribe(events.EventLoginFailed, n.handleLoginFailed)
	n.dispatcher.Subscribe(events.EventSessionRevoked, n.handleSessionRevoked)
}

func (n *NotificationService) handleLoginSucceeded(ctx context.Context, event events.Event) error {
	n.logger.Info("LoginSucceeded", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleLoginFailed(ctx context.Context, event events.Event) error {
	n.logger.Info("LoginFailed", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSessionRevoked(ctx context.Context, event events.Event) error {
	n.logger.Info("SessionRevoked", zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
