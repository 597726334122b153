package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// SnapshotProvider identifica a carga de documentos em uso
type SnapshotProvider interface {
	SnapshotID() string
}

func HealthcheckHandler(snapshot SnapshotProvider, source string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
			"source": source,
		}
		if snapshot != nil {
			payload["snapshot_id"] = snapshot.SnapshotID()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logrus.WithError(err).Warn("erro ao responder o healthcheck")
		}
	})
}
