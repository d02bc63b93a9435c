package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "bowling"

	resultOK      = "ok"
	resultInvalid = "invalid"

	perfectScore = 300
)

// Metrics - prometheus collectors for the scoring path
type Metrics struct {
	gamesScored  *prometheus.CounterVec
	gameScore    prometheus.Histogram
	perfectGames prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		gamesScored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_scored_total",
			Help:      "Games submitted for scoring, by result.",
		}, []string{"result"}),
		gameScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "game_score",
			Help:      "Total score of scored games.",
			Buckets:   prometheus.LinearBuckets(0, 30, 11),
		}),
		perfectGames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "perfect_games_total",
			Help:      "Games scoring 300.",
		}),
	}

	reg.MustRegister(m.gamesScored, m.gameScore, m.perfectGames)
	return m
}

func (m *Metrics) ObserveGame(score int) {
	m.gamesScored.WithLabelValues(resultOK).Inc()
	m.gameScore.Observe(float64(score))
	if score == perfectScore {
		m.perfectGames.Inc()
	}
}

func (m *Metrics) ObserveInvalid() {
	m.gamesScored.WithLabelValues(resultInvalid).Inc()
}
