package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishFunding(t *testing.T) {
	m := New()

	m.PublishFunding(FundingSnapshot{
		Percent:      map[string]float64{"a": 40, "b": 115.5},
		Overfunded:   1,
		FlagMismatch: 2,
	})
	assert.Equal(t, 2, testutil.CollectAndCount(m.FundingPercent))
	assert.Equal(t, 115.5, testutil.ToFloat64(m.FundingPercent.WithLabelValues("b")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Overfunded))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.FlagMismatch))

	m.PublishFunding(FundingSnapshot{Percent: map[string]float64{"a": 50}})
	assert.Equal(t, 1, testutil.CollectAndCount(m.FundingPercent))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Overfunded))
}

func TestObserveAction(t *testing.T) {
	m := New()
	m.ObserveAction("like")
	m.ObserveAction("like")
	m.ObserveAction("follow")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Actions.WithLabelValues("like")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Actions.WithLabelValues("follow")))

	var disabled *Metrics
	assert.NotPanics(t, func() { disabled.ObserveAction("like") })
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveAction("contribute")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `giftwish_actions_total{action="contribute"} 1`)
}
