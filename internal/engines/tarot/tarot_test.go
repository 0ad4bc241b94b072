package tarot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullDeck_Has78Cards(t *testing.T) {
	assert.Len(t, FullDeck(), 78)
}

func TestDraw_DeterministicForSameQuestionAndSeed(t *testing.T) {
	a := Draw("Will I find clarity?", 0, []string{"Past", "Present", "Future"}, false)
	b := Draw("Will I find clarity?", 0, []string{"Past", "Present", "Future"}, false)
	assert.Equal(t, a, b)
}

func TestDraw_DifferentSeedsTypicallyDiffer(t *testing.T) {
	a := Draw("Will I find clarity?", 0, []string{"Present"}, false)
	b := Draw("Will I find clarity?", 1, []string{"Present"}, false)
	assert.NotEqual(t, a[0].Card.Name, b[0].Card.Name)
}

func TestDraw_NoReversalsWhenDisabled(t *testing.T) {
	drawn := Draw("test", 0, []string{"a", "b", "c", "d", "e"}, false)
	for _, d := range drawn {
		assert.False(t, d.Reversed)
	}
}

func TestDraw_NoDuplicateCardsInOneSpread(t *testing.T) {
	drawn := Draw("test", 0, SpreadMustExist(t, "celtic_cross").Positions, true)
	seen := map[string]bool{}
	for _, d := range drawn {
		assert.False(t, seen[d.Card.Name], "duplicate card %s", d.Card.Name)
		seen[d.Card.Name] = true
	}
}

func SpreadMustExist(t *testing.T, name string) Spread {
	t.Helper()
	s, ok := SpreadByName(name)
	require.True(t, ok)
	return s
}

func TestEngine_DecodeInput_RejectsMissingQuestion(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{}`))
	require.Error(t, err)
}

func TestEngine_DecodeInput_RejectsUnknownSpread(t *testing.T) {
	e := New()
	_, err := e.DecodeInput(json.RawMessage(`{"question":"test","spread_type":"bogus"}`))
	require.Error(t, err)
}

func TestEngine_Calculate_MatchesSpreadCardCount(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"question":"What should I focus on?","spread_type":"three_card"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)
	out := raw.(*Output)
	assert.Len(t, out.DrawnCards, 3)
}

func TestEngine_Interpret_MentionsQuestion(t *testing.T) {
	e := New()
	in, err := e.DecodeInput(json.RawMessage(`{"question":"What should I focus on?"}`))
	require.NoError(t, err)

	raw, err := e.Calculate(in)
	require.NoError(t, err)

	summary, err := e.Interpret(raw, in)
	require.NoError(t, err)
	assert.Contains(t, summary.(string), "What should I focus on?")
}
