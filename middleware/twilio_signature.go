package middleware

import (
	"net/http"
	"strings"

	"github.com/twilio/twilio-go/client"
	"go.uber.org/zap"
)

// TwilioSignature rejects webhook calls whose X-Twilio-Signature does not match
// the request. baseURL is the public scheme://host Twilio posts to. An empty
// authToken disables the check.
func TwilioSignature(authToken, baseURL string, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if authToken == "" {
			return next
		}
		validator := client.NewRequestValidator(authToken)
		baseURL = strings.TrimRight(baseURL, "/")

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "bad form", http.StatusBadRequest)
				return
			}

			params := make(map[string]string, len(r.PostForm))
			for k, v := range r.PostForm {
				if len(v) > 0 {
					params[k] = v[0]
				}
			}

			url := baseURL + r.URL.RequestURI()
			if !validator.Validate(url, params, r.Header.Get("X-Twilio-Signature")) {
				log.Warn("🚫 twilio signature mismatch", zap.String("url", url))
				http.Error(w, "invalid signature", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
