package job_events

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"marketplace/pkg/logger"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type Handler struct {
	log        handlerLogger
	subscriber Subscriber
}

func New(log handlerLogger, subscriber Subscriber) *Handler {
	return &Handler{
		log:        log,
		subscriber: subscriber,
	}
}

// ServeHTTP upgrades the connection and streams the job's events until the
// client goes away. Missed events are not replayed; clients needing full
// state should GET the job first.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["id"]
	if jobID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	events, cancel := h.subscriber.Subscribe(jobID)
	defer cancel()

	// reader goroutine only watches for the client closing the socket
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	}
}
