package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ReportsTotal.WithLabelValues(ResultOK).Inc()
	m.ReportsTotal.WithLabelValues(ResultOK).Inc()
	m.CacheRequests.WithLabelValues("miss").Inc()
	m.SeriesPoints.WithLabelValues("110011").Set(250)

	path := filepath.Join(t.TempDir(), "fundlens.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `fundlens_reports_total{result="ok"} 2`)
	assert.Contains(t, out, `fundlens_cache_requests_total{outcome="miss"} 1`)
	assert.Contains(t, out, `fundlens_series_points{fund_code="110011"} 250`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.CachePurged.Add(3)

	families, err := b.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "fundlens_cache_purged_total" {
			assert.Equal(t, 0.0, f.GetMetric()[0].GetCounter().GetValue())
		}
	}
}

func TestWriteTextfile_BadPath(t *testing.T) {
	m := New()
	assert.Error(t, m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
