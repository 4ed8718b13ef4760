package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/s21platform/quickchat/internal/config"
	api "github.com/s21platform/quickchat/internal/generated"
	"github.com/s21platform/quickchat/internal/pkg/logger"
	"github.com/s21platform/quickchat/internal/service/realtime"
	"github.com/s21platform/quickchat/internal/session"
)

const (
	eventSnapshot = "snapshot"
	eventError    = "error"
	eventPing     = "ping"
)

var keepAliveInterval = 25 * time.Second

// serveView streams every snapshot of view as a server-sent event until the
// client goes away or the session is closed. The session owns the view while
// it is streamed.
func serveView[T any](h *Handler, w http.ResponseWriter, r *http.Request, sess *session.Session, view *realtime.View[T], encode func(T) any) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)

	handle, err := sess.Track(view)
	if err != nil {
		logger.Warn(fmt.Sprintf("session closed before streaming: %v", err))
		h.writeServiceError(w, "session closed", err)
		return
	}
	defer func() {
		if err := sess.Release(handle); err != nil {
			logger.Warn(fmt.Sprintf("failed to release view: %v", err))
		}
	}()

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.Error("streaming not supported")
		h.writeError(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	setSSEHeaders(w)
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepAlive.C:
			sseWrite(w, eventPing, time.Now().UTC().Format(time.RFC3339Nano))
		case snapshot, ok := <-view.Updates():
			if !ok {
				return
			}
			switch snapshot.Status {
			case realtime.Ready:
				sseWrite(w, eventSnapshot, encode(snapshot.Data))
			case realtime.Error:
				logger.Warn(fmt.Sprintf("view failed: %v", snapshot.Err))
				sseWrite(w, eventError, api.Error{Error: snapshot.Err.Error()})
			}
		}
		flusher.Flush()
	}
}

func setSSEHeaders(w http.ResponseWriter) {
	headers := w.Header()
	headers.Set("Content-Type", "text/event-stream")
	headers.Set("Cache-Control", "no-cache")
	headers.Set("Connection", "keep-alive")
	headers.Set("X-Accel-Buffering", "no")
}

func sseWrite(w http.ResponseWriter, event string, data any) {
	_, _ = fmt.Fprintf(w, "event: %s\n", event)
	for _, line := range strings.Split(marshalPayload(data), "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
}

func marshalPayload(data any) string {
	if s, ok := data.(string); ok {
		return s
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(payload)
}
