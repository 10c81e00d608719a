package observability

import (
	"context"
	"strings"
	"testing"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordScore_ExportsToRegistry(t *testing.T) {
	reg := promclient.NewRegistry()
	obs, err := NewWithRegisterer("credit-scoring-api-test", reg)
	require.NoError(t, err)
	defer obs.Shutdown()

	obs.RecordScore(context.Background(), "Low", 800)
	obs.RecordScore(context.Background(), "High", 560)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, strings.ReplaceAll(f.GetName(), ".", "_"))
	}
	joined := strings.Join(names, ",")
	assert.Contains(t, joined, "credit_scores_computed")
	assert.Contains(t, joined, "credit_score_value")
}

func TestZeroValueIsNoOp(t *testing.T) {
	var nilObs *Observability
	assert.NotPanics(t, func() {
		nilObs.RecordScore(context.Background(), "Low", 800)
		nilObs.Shutdown()
		(&Observability{}).RecordScore(context.Background(), "Low", 800)
	})
}
