package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/wevm-cdk/abi"
	"github.com/wippyai/wevm-cdk/types"
)

func lineWith(view, s string) string {
	for _, l := range strings.Split(view, "\n") {
		if strings.Contains(l, s) {
			return l
		}
	}
	return ""
}

func TestInteractiveView(t *testing.T) {
	desc := &abi.Descriptor{Name: "flip", ABI: []abi.Function{
		{Name: "_constructor", Args: []abi.Arg{}},
		{Name: "set", Args: []abi.Arg{{Name: "value", Type: types.Boolean}}},
	}}
	m := newInteractiveModel(desc, "flip.json")

	view := m.View()
	assert.Contains(t, view, "Select an action to call")
	assert.Contains(t, lineWith(view, "_constructor("), "│")
	assert.True(t, strings.HasPrefix(lineWith(view, "set("), "  "))

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	view = m.View()
	assert.NotContains(t, lineWith(view, "_constructor("), "│")
	assert.Contains(t, lineWith(view, "set("), "│")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateInputArgs, m.state)
	assert.Contains(t, m.View(), "Calling set")
}

func TestInteractiveViewNoActions(t *testing.T) {
	m := newInteractiveModel(&abi.Descriptor{Name: "empty"}, "empty.json")
	assert.Contains(t, m.View(), "The contract has no actions.")
}
