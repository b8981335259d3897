package handlers

import (
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/dthstore/dthstore-api/internal/infra/notify"
)

// EventsHandler streams lead notifications to the dashboard over SSE. Each
// connected dashboard gets its own Redis subscription; the browser turns the
// events into desktop notifications.
type EventsHandler struct {
	rdb *redis.Client
}

func NewEventsHandler(rdb *redis.Client) *EventsHandler {
	return &EventsHandler{rdb: rdb}
}

func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	if h.rdb == nil {
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Success: false, Message: "event stream not available"})
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Success: false, Message: "streaming unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	sub := h.rdb.Subscribe(r.Context(), notify.PubSubChannel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-r.Context().Done():
			return
		case msg, open := <-ch:
			if !open {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg.Payload)
			flusher.Flush()
		}
	}
}
