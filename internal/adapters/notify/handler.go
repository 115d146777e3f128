package notify

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, rec *Recorder) {
	r.Get("/notifications", listNotificationsHandler(rec))
}

type notificationResponse struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// listNotificationsHandler godoc
// @Summary Últimas notificaciones
// @Description Mensajes transitorios emitidos por las validaciones, el más reciente al final.
// @Tags notifications
// @Produce json
// @Success 200 {array} notificationResponse
// @Router /notifications [get]
func listNotificationsHandler(rec *Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		items := rec.Recent()
		out := make([]notificationResponse, 0, len(items))
		for _, n := range items {
			out = append(out, notificationResponse{Message: n.Message, At: n.At})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(out)
	}
}
