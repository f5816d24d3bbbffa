package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	turnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flashcards_turns_total",
			Help: "Total number of fulfilled turns by channel, action and status.",
		},
		[]string{"channel", "action", "status"},
	)

	turnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flashcards_turn_duration_seconds",
			Help:    "Time spent fulfilling a turn.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"channel", "action"},
	)

	conversationsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flashcards_conversations_started_total",
			Help: "Total number of new conversations by channel.",
		},
		[]string{"channel"},
	)

	gamesFinished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flashcards_games_finished_total",
		Help: "Total number of games played to the last question.",
	})
)

// ObserveTurn records the outcome and latency of one turn.
func ObserveTurn(channel, action string, started time.Time, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	turnsTotal.WithLabelValues(channel, action, status).Inc()
	turnDuration.WithLabelValues(channel, action).Observe(time.Since(started).Seconds())
}

func ConversationStarted(channel string) {
	conversationsStarted.WithLabelValues(channel).Inc()
}

func GameFinished() {
	gamesFinished.Inc()
}
