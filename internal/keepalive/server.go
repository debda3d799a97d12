package keepalive

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Start serves the liveness endpoint on addr in a background goroutine.
//
// GET / answers 200 "Bot is running!", which is what uptime monitors
// ping to keep the host awake. A bind failure is logged and otherwise
// ignored; liveness is an operational convenience, not a dependency of
// the bot itself.
func Start(addr string, log zerolog.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Bot is running!"))
	})

	go func() {
		log.Info().Str("addr", addr).Msg("keep-alive endpoint listening")
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Warn().Err(err).Msg("keep-alive endpoint stopped")
		}
	}()
}
