package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersAll(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()
	require.NotNil(t, m)

	m.CounterXPAwarded.WithLabelValues(SourceDaily).Add(30)
	m.CounterXPAwarded.WithLabelValues(SourceSession).Add(150)
	m.CounterLevelUps.Inc()
	m.CounterBadgesUnlocked.WithLabelValues("WORKOUTS_10").Inc()
	m.HistRewardDuration.WithLabelValues(SourceDaily).Observe(0.01)

	assert.Equal(t, float64(30), testutil.ToFloat64(m.CounterXPAwarded.WithLabelValues(SourceDaily)))
	assert.Equal(t, float64(150), testutil.ToFloat64(m.CounterXPAwarded.WithLabelValues(SourceSession)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterLevelUps))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]*dto.MetricFamily)
	for _, f := range families {
		names[f.GetName()] = f
	}
	require.Contains(t, names, "fitcoach_test_server_xp_awarded")
	require.Contains(t, names, "fitcoach_test_server_badges_unlocked")
	require.Contains(t, names, "fitcoach_test_server_reward_duration_seconds")

	badges := names["fitcoach_test_server_badges_unlocked"].GetMetric()
	require.Len(t, badges, 1)
	assert.Equal(t, "WORKOUTS_10", badges[0].GetLabel()[0].GetValue())
	assert.Equal(t, uint64(1), names["fitcoach_test_server_reward_duration_seconds"].GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestSetupPrometheus(t *testing.T) {
	m := NewTestManager()
	reg := SetupPrometheus(m.CounterLevelUps)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
