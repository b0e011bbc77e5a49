package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoster(t *testing.T) {
	tests := map[string]struct {
		agents  []Agent
		wantErr bool
	}{
		"default":       {DefaultAgents(), false},
		"too few":       {[]Agent{"A", "B", "C"}, true},
		"too many":      {[]Agent{"A", "B", "C", "D", "E"}, true},
		"duplicate":     {[]Agent{"A", "B", "A", "D"}, true},
		"blank name":    {[]Agent{"A", " ", "C", "D"}, true},
		"reserved name": {[]Agent{"A", "B", Emergency, "D"}, true},
		"reserved none": {[]Agent{"A", None, "C", "D"}, true},
		"custom names":  {[]Agent{"W", "X", "Y", "Z"}, false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewRoster(tc.agents)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoster_IsImmutable(t *testing.T) {
	input := []Agent{"A", "B", "C", "D"}
	r, err := NewRoster(input)
	require.NoError(t, err)

	input[0] = "Z"
	assert.Equal(t, Agent("A"), r.At(0))

	out := r.Agents()
	out[1] = "Z"
	assert.Equal(t, Agent("B"), r.At(1))
}

func TestDefaultAgents_ReturnsCopy(t *testing.T) {
	first := DefaultAgents()
	first[0], first[1] = first[1], first[0]

	assert.Equal(t, []Agent{"Djelloul", "Nour", "Abdennour", "Iheb"}, DefaultAgents())
	assert.Equal(t, Agent("Djelloul"), DefaultRoster().At(0))
}

func TestRoster_Contains(t *testing.T) {
	r := DefaultRoster()
	assert.True(t, r.Contains("Iheb"))
	assert.False(t, r.Contains(Emergency))
	assert.False(t, r.Contains(None))
	assert.False(t, r.Contains(""))
	assert.Equal(t, 4, r.Len())
}
