package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBehaviourString(t *testing.T) {
	tests := []struct {
		b    Behaviour
		want string
	}{
		{Default, "default"},
		{Constant, "constant"},
		{Linear, "linear"},
		{Repeat, "repeat"},
		{Behaviour(9), "Unknown(9)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.String())
		})
	}
}

func TestParseBehaviour(t *testing.T) {
	for _, b := range []Behaviour{Default, Constant, Linear, Repeat} {
		got, err := ParseBehaviour(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}

	got, err := ParseBehaviour(" Repeat ")
	require.NoError(t, err)
	assert.Equal(t, Repeat, got)

	got, err = ParseBehaviour("")
	require.NoError(t, err)
	assert.Equal(t, Default, got)

	_, err = ParseBehaviour("bounce")
	assert.ErrorIs(t, err, ErrUnknownBehaviour)
}

func TestBehaviourCodes(t *testing.T) {
	assert.Equal(t, uint32(0), Default.Code())
	assert.Equal(t, uint32(3), Repeat.Code())

	b, err := BehaviourFromCode(2)
	require.NoError(t, err)
	assert.Equal(t, Linear, b)

	_, err = BehaviourFromCode(4)
	assert.ErrorIs(t, err, ErrUnknownBehaviour)
}

func TestBehaviourYAML(t *testing.T) {
	var doc struct {
		Pre  Behaviour `yaml:"pre"`
		Post Behaviour `yaml:"post"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("pre: constant\npost: Linear\n"), &doc))
	assert.Equal(t, Constant, doc.Pre)
	assert.Equal(t, Linear, doc.Post)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "pre: constant\npost: linear\n", string(out))

	err = yaml.Unmarshal([]byte("pre: sideways\n"), &doc)
	assert.ErrorIs(t, err, ErrUnknownBehaviour)
}
