package strategy

import (
	"errors"
	"testing"

	"capsim-round/internal/market"
	"capsim-round/internal/model"
	"capsim-round/internal/simulation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segment(t *testing.T, name string) model.SegmentProfile {
	t.Helper()
	s, err := market.Default().Lookup(name)
	require.NoError(t, err)
	return s
}

func TestIdealStrategy(t *testing.T) {
	in, err := IdealStrategy{}.Decide(Context{Name: "A", Segment: segment(t, market.LowEnd), MarketingBudget: 1000, Capacity: 1200})
	require.NoError(t, err)
	assert.Equal(t, model.ProductInput{
		Name: "A", Segment: "Low-End", Price: 20, Performance: 4, Size: 16, MarketingBudget: 1000, Capacity: 1200,
	}, in)

	res, err := simulation.New(nil).SimulateRound(in)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Scores.Satisfaction)
}

func TestOracleStrategy_IdleCapacityPicksMidpoint(t *testing.T) {
	// Capacity well above peak demand: price only trades volume for margin.
	ctx := Context{Segment: segment(t, market.Traditional), Capacity: 10000}
	in, err := NewOracleStrategy(OracleParams{PriceSteps: 400}).Decide(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 30, in.Price, 0.011)
}

func TestOracleStrategy_BindingCapacityRaisesPrice(t *testing.T) {
	ctx := Context{Segment: segment(t, market.Traditional), MarketingBudget: 1500, Capacity: 1000}
	in, err := NewOracleStrategy(OracleParams{}).Decide(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 32.0, in.Price, 1e-9, "capacity binds, so the top of the band still sells out")

	e := simulation.New(nil)
	best, err := e.SimulateRound(in)
	require.NoError(t, err)

	ideal, err := IdealStrategy{}.Decide(ctx)
	require.NoError(t, err)
	baseline, err := e.SimulateRound(ideal)
	require.NoError(t, err)

	assert.Greater(t, best.NetProfit, baseline.NetProfit)
	assert.Equal(t, 1000, best.UnitsSold)
}

func TestOracleStrategy_ZeroCapacity(t *testing.T) {
	in, err := NewOracleStrategy(OracleParams{PriceSteps: 10}).Decide(Context{Segment: segment(t, market.LowEnd)})
	require.NoError(t, err)
	assert.Equal(t, 18.0, in.Price, "nothing sells, so ties keep the lowest price")
}

func TestOracleStrategy_ZeroWidthBand(t *testing.T) {
	seg := model.SegmentProfile{Name: "Fixed", MarketSize: 100, IdealPrice: model.PriceRange{Min: 12, Max: 12}}
	in, err := NewOracleStrategy(OracleParams{}).Decide(Context{Segment: seg, Capacity: 50})
	require.NoError(t, err)
	assert.Equal(t, 12.0, in.Price)
	assert.Equal(t, "Fixed", in.Segment)
}

func TestNew(t *testing.T) {
	s, err := New("", OracleParams{})
	require.NoError(t, err)
	assert.Equal(t, "ideal", s.Name())

	s, err = New("oracle", OracleParams{})
	require.NoError(t, err)
	assert.Equal(t, "oracle", s.Name())

	_, err = New("schedule", OracleParams{})
	var unsupported *UnsupportedError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "schedule", unsupported.Name)
}
