package wizard

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unsub-dev/unsub/internal/model"
)

func testSubs() []model.Subscription {
	return []model.Subscription{
		{ID: "sub-1", Name: "Netflix", Amount: decimal.RequireFromString("15.99"), Frequency: model.FrequencyMonthly, Category: model.CategoryInvestigate},
		{ID: "sub-2", Name: "Spotify", Amount: decimal.RequireFromString("9.99"), Frequency: model.FrequencyMonthly, Category: model.CategoryInvestigate},
		{ID: "sub-3", Name: "Gym", Amount: decimal.RequireFromString("25.00"), Frequency: model.FrequencyWeekly, Category: model.CategoryInvestigate},
	}
}

func TestRelabel(t *testing.T) {
	subs := testSubs()
	out := Relabel(subs, Decisions{
		"sub-1": model.CategoryKeep,
		"sub-2": model.CategoryCancel,
	})

	require.Len(t, out, 3)
	assert.Equal(t, model.CategoryKeep, out[0].Category)
	assert.Equal(t, model.CategoryCancel, out[1].Category)
	assert.Equal(t, model.CategoryInvestigate, out[2].Category)

	// Only category changes; everything else passes through.
	assert.Equal(t, subs[0].Name, out[0].Name)
	assert.True(t, subs[0].Amount.Equal(out[0].Amount))
	assert.Equal(t, subs[0].Frequency, out[0].Frequency)
}

func TestRelabel_DoesNotMutateInput(t *testing.T) {
	subs := testSubs()
	Relabel(subs, Decisions{"sub-1": model.CategoryCancel})

	assert.Equal(t, model.CategoryInvestigate, subs[0].Category)
}

func TestRelabel_UnknownIDIgnored(t *testing.T) {
	out := Relabel(testSubs(), Decisions{"nope": model.CategoryCancel})
	for _, s := range out {
		assert.Equal(t, model.CategoryInvestigate, s.Category)
	}
}

func TestRun_CollectsDecisions(t *testing.T) {
	in := strings.NewReader("k\nc\ni\n")
	var out bytes.Buffer

	decisions, err := Run(in, &out, testSubs())
	require.NoError(t, err)

	assert.Equal(t, Decisions{
		"sub-1": model.CategoryKeep,
		"sub-2": model.CategoryCancel,
		"sub-3": model.CategoryInvestigate,
	}, decisions)
	assert.Contains(t, out.String(), "Netflix")
	assert.Contains(t, out.String(), "[1/3]")
}

func TestRun_SkipAndQuit(t *testing.T) {
	in := strings.NewReader("s\nq\n")
	var out bytes.Buffer

	decisions, err := Run(in, &out, testSubs())
	require.NoError(t, err)

	// First skipped, quit on second: nothing decided, third never shown.
	assert.Empty(t, decisions)
	assert.NotContains(t, out.String(), "Gym")
}

func TestRun_FullWords(t *testing.T) {
	in := strings.NewReader("keep\nCANCEL\n\n")
	var out bytes.Buffer

	decisions, err := Run(in, &out, testSubs())
	require.NoError(t, err)

	assert.Equal(t, model.CategoryKeep, decisions["sub-1"])
	assert.Equal(t, model.CategoryCancel, decisions["sub-2"])
	_, ok := decisions["sub-3"]
	assert.False(t, ok)
}

func TestRun_InputExhausted(t *testing.T) {
	in := strings.NewReader("k\n")
	var out bytes.Buffer

	decisions, err := Run(in, &out, testSubs())
	require.NoError(t, err)

	assert.Len(t, decisions, 1)
}
