package menu_test

import (
	"bytes"
	"strings"
	"testing"

	"server-launcher/feature/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*menu.Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return menu.NewPrompter(strings.NewReader(input), out), out
}

func TestPrompter_Select(t *testing.T) {
	p, out := newPrompter("0\nx\n2\n")

	idx, err := p.Select("Pick one", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a number between 1 and 2."))
}

func TestPrompter_SelectInputClosed(t *testing.T) {
	p, _ := newPrompter("")

	_, err := p.Select("Pick one", []string{"a"})
	assert.ErrorIs(t, err, menu.ErrInputClosed)
}

func TestPrompter_MultiSelect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"Spaces", "3 1\n", []int{0, 2}},
		{"Commas", "2,3\n", []int{1, 2}},
		{"Duplicates", "1 1\n", []int{0}},
		{"All", "ALL\n", []int{0, 1, 2}},
		{"Empty", "\n", nil},
		{"InvalidThenValid", "4\n2\n", []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPrompter(tt.input)
			got, err := p.MultiSelect("Pick", []string{"a", "b", "c"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompter_Ask(t *testing.T) {
	p, out := newPrompter("\n  \nLobby\n")

	got, err := p.Ask("Name?", false)
	require.NoError(t, err)
	assert.Equal(t, "Lobby", got)
	assert.Equal(t, 2, strings.Count(out.String(), "A value is required."))

	p, _ = newPrompter("\n")
	got, err = p.Ask("Value?", true)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestPrompter_AskPort(t *testing.T) {
	p, _ := newPrompter("\n")
	port, err := p.AskPort("Port?", 7777)
	require.NoError(t, err)
	assert.Equal(t, uint16(7777), port)

	p, out := newPrompter("abc\n70000\n 7780 \n")
	port, err = p.AskPort("Port?", 7777)
	require.NoError(t, err)
	assert.Equal(t, uint16(7780), port)
	assert.Contains(t, out.String(), "invalid port")
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"\n", true, true},
		{"\n", false, false},
		{"y\n", false, true},
		{"No\n", true, false},
		{"maybe\nyes\n", false, true},
	}

	for _, tt := range tests {
		p, _ := newPrompter(tt.input)
		got, err := p.Confirm("Sure?", tt.def)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestPrompter_LastLineWithoutNewline(t *testing.T) {
	p, _ := newPrompter("Lobby")

	got, err := p.Ask("Name?", false)
	require.NoError(t, err)
	assert.Equal(t, "Lobby", got)
}
