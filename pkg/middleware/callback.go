package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/BrianElionDev/Meta-ads-project/pkg/log"
)

const CallbackSecretHeader = "X-Callback-Secret"

// CallbackSecret protege o callback da automação com um segredo compartilhado.
// Sem segredo configurado o callback fica aberto.
func CallbackSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			received := r.Header.Get(CallbackSecretHeader)
			if subtle.ConstantTimeCompare([]byte(received), []byte(secret)) != 1 {
				log.ForContext(r.Context()).WithField("remote_addr", r.RemoteAddr).Warn("callback: invalid secret")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
