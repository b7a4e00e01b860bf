package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/hongminglow/guard-reports-be/internal/apperr"
)

// Envelope is the error body shared by every endpoint.
type Envelope struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, log *zap.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warn("respond: encode payload failed", zap.Error(err))
	}
}

// Error classifies err and writes it as an Envelope. Internal failures are
// logged with their cause and answered with a generic message.
func Error(w http.ResponseWriter, log *zap.Logger, err error) {
	appErr := apperr.From(err)
	status := appErr.Kind.Status()
	if appErr.Kind == apperr.KindInternal {
		log.Error("request failed", zap.Error(err))
	}
	JSON(w, log, status, Envelope{Code: status, Message: appErr.Message, Fields: appErr.Fields})
}
