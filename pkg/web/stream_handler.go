package web

import (
	"log"
	"net/http"
	"time"

	"code.cloudfoundry.org/throughput/pkg/store"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ObservationsStream upgrades the connection to a WebSocket and pushes each
// new observation as JSON. The store is polled; an observation counts as new
// when its timestamp advances. The stream ends when the client goes away.
func ObservationsStream(rs RateStore, pollEvery time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("failed to upgrade stream connection: %s", err)
			return
		}
		defer func() {
			_ = conn.Close()
		}()

		// reads are discarded; an error here means the client went away
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.NextReader(); err != nil {
					return
				}
			}
		}()

		var last store.Observation
		ticker := time.NewTicker(pollEvery)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				o, err := rs.Latest()
				if err != nil || o == last {
					continue
				}

				if err := conn.WriteJSON(o); err != nil {
					return
				}
				last = o
			}
		}
	})
}
