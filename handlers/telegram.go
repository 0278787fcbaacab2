package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// TelegramUpdate is the part of a Telegram update the bot reads.
type TelegramUpdate struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Text  string `json:"text"`
		Voice *Voice `json:"voice,omitempty"`
		Chat  struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		From struct {
			ID int64 `json:"id"`
		} `json:"from"`
	} `json:"message"`
}

type Voice struct {
	FileID   string `json:"file_id"`
	Duration int    `json:"duration"`
}

// telegramReply answers the update through the webhook response itself.
type telegramReply struct {
	Method string `json:"method"`
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// Telegram handles the Telegram webhook. Non-text messages reach the
// dialogue as empty input.
func (h *Webhooks) Telegram(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var update TelegramUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.log.Warn("❌ bad telegram update", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// edited messages, callbacks etc. carry no message; acknowledge them
	if update.Message == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	msg := update.Message
	if msg.Voice != nil {
		h.log.Info("🎤 voice message treated as empty input",
			zap.Int64("from", msg.From.ID),
			zap.Int("duration", msg.Voice.Duration),
		)
	}

	text := h.reply(r.Context(), "tg:"+strconv.FormatInt(msg.From.ID, 10), msg.Text)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(telegramReply{
		Method: "sendMessage",
		ChatID: msg.Chat.ID,
		Text:   text,
	})
}
