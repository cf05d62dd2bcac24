package main

import (
	"net"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arvarik/paddle-go/paddle"
)

// This example demonstrates a production-shaped webhook receiver: it
// corroborates the connection's source IP against Paddle's published
// allowlist, verifies the Paddle-Signature header over the raw body, and
// only then hands the event to a bounded worker pool for processing.
func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	secret := os.Getenv("PADDLE_WEBHOOK_SECRET")
	if secret == "" {
		log.Fatal().Msg("PADDLE_WEBHOOK_SECRET environment variable is required")
	}

	// Bounded queue so traffic spikes don't create unbounded goroutines.
	jobQueue := make(chan *paddle.Event, 100)
	for i := 0; i < 5; i++ {
		go worker(jobQueue)
	}

	http.HandleFunc("/paddle/webhook", webhookHandler(secret, jobQueue))

	log.Info().Str("addr", ":8080").Msg("webhook listener started")
	log.Fatal().Err(http.ListenAndServe(":8080", nil)).Msg("server stopped")
}

func webhookHandler(secret string, jobQueue chan<- *paddle.Event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Corroborate the source address before doing any crypto. This only
		// works when the listener sees the peer address directly; behind a
		// proxy, check the forwarded address instead.
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err == nil && !paddle.AllowedWebhookIP(host) {
			log.Warn().Str("ip", host).Msg("webhook from unknown source address")
			w.WriteHeader(http.StatusForbidden)
			return
		}

		event, err := paddle.ParseWebhook(r, secret)
		if err != nil {
			log.Warn().Err(err).Msg("webhook verification failed")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		// Acknowledge rapidly; Paddle retries deliveries that don't get a
		// 2xx within a few seconds.
		w.WriteHeader(http.StatusOK)

		select {
		case jobQueue <- event:
		default:
			log.Warn().Str("event_id", event.EventID).Msg("worker pool full, dropping event")
		}
	}
}

func worker(jobQueue <-chan *paddle.Event) {
	for event := range jobQueue {
		log.Info().
			Str("event_id", event.EventID).
			Str("event_type", event.EventType).
			Time("occurred_at", event.OccurredAt).
			Msg("processing verified event")

		// Dispatch on event.EventType and decode event.Data into the
		// matching entity here.
	}
}
