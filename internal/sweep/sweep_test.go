package sweep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkoval/eulersim/internal/ode"
)

func newTestRunner() *Runner {
	cfg := ode.Config{A: 1, X0: 1, TMin: 0, TMax: 5}
	return New(ode.FromConfig(cfg), cfg)
}

func TestRunOne(t *testing.T) {
	r := newTestRunner()

	res, p, err := r.RunOne(context.Background(), 0.125)
	require.NoError(t, err)

	assert.Equal(t, 0.125, p.H)
	assert.Equal(t, res.Steps(), p.Steps)
	assert.Len(t, res.Values, len(res.Times))
	assert.Greater(t, p.Summary.RMSPercent, 0.0)
}

func TestRunOneInvalidStep(t *testing.T) {
	r := newTestRunner()

	_, _, err := r.RunOne(context.Background(), 0)
	require.ErrorIs(t, err, ode.ErrInvalidStep)
}

func TestErrorShrinksWithStep(t *testing.T) {
	r := newTestRunner()
	hs := []float64{0.5, 0.25, 0.125, 0.0625}

	points, err := r.Run(context.Background(), hs)
	require.NoError(t, err)
	require.Len(t, points, len(hs))

	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i].Summary.RMSPercent, points[i-1].Summary.RMSPercent,
			"halving h from %g to %g should shrink the error", hs[i-1], hs[i])
	}
}

func TestEnsembleMatchesSequential(t *testing.T) {
	r := newTestRunner()
	hs := []float64{0.5, 0.25, 0.125}

	seq, err := r.Run(context.Background(), hs)
	require.NoError(t, err)

	par, err := NewEnsemble(r).Run(context.Background(), hs)
	require.NoError(t, err)
	require.Len(t, par, len(seq))

	for i := range seq {
		assert.Equal(t, seq[i].H, par[i].H)
		assert.Equal(t, seq[i].Steps, par[i].Steps)
		// runs are deterministic, so the summaries are bit-identical
		assert.Equal(t, seq[i].Summary, par[i].Summary)
	}
}

func TestEnsemblePropagatesError(t *testing.T) {
	r := newTestRunner()

	_, err := NewEnsemble(r).Run(context.Background(), []float64{0.5, -1})
	require.ErrorIs(t, err, ode.ErrInvalidStep)
}
