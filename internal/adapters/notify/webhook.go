package notify

import (
	"context"
	"time"

	"animals-safety/internal/platform/httpclient"
	"animals-safety/internal/platform/logger"
)

type webhookPayload struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// WebhookSink reenvía cada mensaje por POST a target.
// Corre en el worker de la Queue, así que el client debe tener timeout corto.
// Los errores solo se loguean.
func WebhookSink(client *httpclient.Client, target string, log logger.Logger) Sink {
	if log == nil {
		log = logger.Nop()
	}
	return SinkFunc(func(msg string) {
		err := client.PostJSON(context.Background(), target, webhookPayload{Message: msg, At: time.Now().UTC()})
		if err != nil {
			log.Warn("notification webhook failed", map[string]any{"target": target, "error": err.Error()})
		}
	})
}
