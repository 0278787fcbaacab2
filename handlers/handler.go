package handlers

import (
	"context"

	"go.uber.org/zap"

	"wep_bot/dialog"
	"wep_bot/middleware"
	"wep_bot/security"
)

// Webhooks serves the messaging provider callbacks.
type Webhooks struct {
	manager dialog.DialogManager
	log     *zap.Logger
}

func NewWebhooks(manager dialog.DialogManager, log *zap.Logger) *Webhooks {
	return &Webhooks{manager: manager, log: log}
}

// reply runs the dialogue for one message. It always returns text to send:
// manager errors are logged and the manager's fallback reply is used.
func (h *Webhooks) reply(ctx context.Context, userID, body string) string {
	text, err := h.manager.HandleMessage(ctx, userID, security.NormalizeInput(body))
	if err != nil {
		h.log.Error("❌ dialog failed",
			zap.String("request_id", middleware.RequestIDFromContext(ctx)),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		if text == "" {
			text = dialog.PromptUnavailable
		}
	}
	return text
}
