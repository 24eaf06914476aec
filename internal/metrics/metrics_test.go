package metrics_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/homecmd/internal/control/action"
	"github.com/ja-he/homecmd/internal/control/dispatch"
	"github.com/ja-he/homecmd/internal/metrics"
)

func TestDispatcherMetrics(t *testing.T) {
	m := metrics.New()
	d := dispatch.New(2, zerolog.Nop(), dispatch.WithObserver(m))

	noop := func() error { return nil }
	d.Assign("1", action.NewReversible("A", noop, noop))
	d.Assign("2", action.NewReversible("B", func() error { return errors.New("boom") }, noop))

	for i := 0; i < 3; i++ {
		_ = d.ExecuteSlot("1")
	}
	_ = d.ExecuteSlot("2")
	_ = d.ExecuteSlot("3")
	_ = d.Undo()

	count, err := testutil.GatherAndCount(m.Registry(), "homecmd_executions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "one series per outcome")

	var buf bytes.Buffer
	require.NoError(t, m.Dump(&buf))
	out := buf.String()
	assert.Contains(t, out, `homecmd_executions_total{outcome="ok"} 3`)
	assert.Contains(t, out, `homecmd_executions_total{outcome="fault"} 1`)
	assert.Contains(t, out, `homecmd_executions_total{outcome="unassigned"} 1`)
	assert.Contains(t, out, `homecmd_undos_total{outcome="ok"} 1`)
	assert.Contains(t, out, "homecmd_history_evictions_total 1")
	assert.Contains(t, out, "homecmd_history_size 1")
}
