package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wep_bot/dialog"
)

type fakeManager struct {
	gotUser, gotInput string
	reply             string
	err               error
}

func (f *fakeManager) HandleMessage(_ context.Context, userID, input string) (string, error) {
	f.gotUser, f.gotInput = userID, input
	return f.reply, f.err
}

func postForm(h http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestTwilioWebhook(t *testing.T) {
	m := &fakeManager{reply: "Great & welcome"}
	h := NewWebhooks(m, zap.NewNop())

	w := postForm(h.Twilio, url.Values{"Body": {"  Yes \n"}, "From": {"whatsapp:+911"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Equal(t, "whatsapp:+911", m.gotUser)
	assert.Equal(t, "Yes", m.gotInput)
	assert.Contains(t, w.Body.String(), "<Response>")
	assert.Contains(t, w.Body.String(), "<Message>Great &amp; welcome</Message>")
}

func TestTwilioWebhookMissingFields(t *testing.T) {
	m := &fakeManager{reply: dialog.PromptWelcome}
	h := NewWebhooks(m, zap.NewNop())

	w := postForm(h.Twilio, url.Values{})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", m.gotUser)
	assert.Equal(t, "", m.gotInput)
	assert.Contains(t, w.Body.String(), "WEP Bot")
}

func TestTwilioWebhookManagerError(t *testing.T) {
	m := &fakeManager{err: errors.New("boom")}
	h := NewWebhooks(m, zap.NewNop())

	w := postForm(h.Twilio, url.Values{"Body": {"hi"}, "From": {"x"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<Message>")
	assert.NotContains(t, w.Body.String(), "<Message></Message>")
}

func TestTwilioWebhookMethod(t *testing.T) {
	h := NewWebhooks(&fakeManager{}, zap.NewNop())
	w := httptest.NewRecorder()
	h.Twilio(w, httptest.NewRequest(http.MethodGet, "/webhook", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestTelegramWebhook(t *testing.T) {
	m := &fakeManager{reply: "hello"}
	h := NewWebhooks(m, zap.NewNop())

	body := `{"update_id":1,"message":{"text":"haan","chat":{"id":55},"from":{"id":77}}}`
	w := httptest.NewRecorder()
	h.Telegram(w, httptest.NewRequest(http.MethodPost, "/telegram", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tg:77", m.gotUser)
	assert.Equal(t, "haan", m.gotInput)

	var got telegramReply
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, telegramReply{Method: "sendMessage", ChatID: 55, Text: "hello"}, got)
}

func TestTelegramWebhookVoiceIsEmptyInput(t *testing.T) {
	m := &fakeManager{reply: "r"}
	h := NewWebhooks(m, zap.NewNop())

	body := `{"message":{"voice":{"file_id":"f","duration":3},"chat":{"id":1},"from":{"id":2}}}`
	w := httptest.NewRecorder()
	h.Telegram(w, httptest.NewRequest(http.MethodPost, "/telegram", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", m.gotInput)
}

func TestTelegramWebhookBadRequests(t *testing.T) {
	m := &fakeManager{}
	h := NewWebhooks(m, zap.NewNop())

	w := httptest.NewRecorder()
	h.Telegram(w, httptest.NewRequest(http.MethodPost, "/telegram", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.Telegram(w, httptest.NewRequest(http.MethodPost, "/telegram", strings.NewReader(`{"update_id":2}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", m.gotUser, "updates without a message never reach the dialogue")
}
