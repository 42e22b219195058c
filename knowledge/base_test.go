package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-chatbot-backend/models"
)

func TestDefault_IsSharedAndPopulated(t *testing.T) {
	kb := Default()
	require.Same(t, kb, Default())

	assert.Contains(t, kb.SubstanceNames(), "aspirin")
	assert.Contains(t, kb.SubstanceNames(), "grapefruit juice")
	assert.Contains(t, kb.ConditionNames(), "diabetes")
}

func TestInteraction_AspirinWarfarin(t *testing.T) {
	kb := Default()

	warning, ok := kb.Interaction("Aspirin", "warfarin")
	require.True(t, ok)
	assert.Contains(t, warning, "increase bleeding risk")
}

func TestInteraction_IsDirected(t *testing.T) {
	kb := New([]models.InteractionProfile{
		{Name: "A", Interactions: []string{"B"}, Warning: "a warns"},
		{Name: "B"},
	}, nil)

	warning, ok := kb.Interaction("a", "b")
	assert.True(t, ok)
	assert.Equal(t, "a warns", warning)

	_, ok = kb.Interaction("b", "a")
	assert.False(t, ok)

	_, ok = kb.Interaction("unknown", "a")
	assert.False(t, ok)
}

func TestNames_ReturnCopies(t *testing.T) {
	kb := Default()

	names := kb.SubstanceNames()
	names[0] = "mutated"

	assert.NotEqual(t, "mutated", kb.SubstanceNames()[0])
}

func TestEveryInteractionEdgeHasAWarning(t *testing.T) {
	kb := Default()

	for _, name := range kb.SubstanceNames() {
		profile, ok := kb.Substance(name)
		require.True(t, ok)
		if len(profile.Interactions) > 0 {
			assert.NotEmpty(t, profile.Warning, name)
		}
	}
}
