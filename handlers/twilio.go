package handlers

import (
	"net/http"

	"github.com/twilio/twilio-go/twiml"
	"go.uber.org/zap"
)

// Twilio handles the messaging webhook. Twilio posts a form with Body and From
// and expects TwiML back.
func (h *Webhooks) Twilio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.log.Warn("bad twilio form", zap.Error(err))
	}
	from := r.PostFormValue("From")
	body := r.PostFormValue("Body")

	text := h.reply(r.Context(), from, body)

	doc, err := twiml.Messages([]twiml.Element{&twiml.MessagingMessage{Body: text}})
	if err != nil {
		h.log.Error("render twiml failed", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(doc))
}
