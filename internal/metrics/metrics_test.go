package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveGame(139)
	m.ObserveGame(300)
	m.ObserveInvalid()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.gamesScored.WithLabelValues(resultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gamesScored.WithLabelValues(resultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.perfectGames))
	assert.Equal(t, 1, testutil.CollectAndCount(m.gameScore))
}

func TestNew_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
