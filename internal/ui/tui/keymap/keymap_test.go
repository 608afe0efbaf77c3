package keymap

import (
	"testing"

	"github.com/isaacphi/tirc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBindingsKeys(t *testing.T) {
	b := DefaultBindings()
	assert.Equal(t, []string{"q"}, b.Quit.Keys())
	assert.Equal(t, []string{"i"}, b.InsertMode.Keys())
	assert.Equal(t, []string{"esc"}, b.ExitInsert.Keys())
	assert.Equal(t, []string{"tab"}, b.FocusNext.Keys())
	assert.Equal(t, []string{"shift+tab"}, b.FocusPrev.Keys())
	assert.Equal(t, []string{"enter"}, b.Submit.Keys())
	assert.Equal(t, "quit", b.Quit.Help().Desc)
}

func TestNewBindingsRejectsInvalidMaps(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.KeyMap)
		errMsg string
	}{
		{
			name:   "quit and focus share a key",
			mutate: func(k *config.KeyMap) { k.FocusNext = []string{"q"} },
			errMsg: `key "q" is bound to both quit and focusNext`,
		},
		{
			name:   "printable exit key",
			mutate: func(k *config.KeyMap) { k.ExitInsert = []string{"x"} },
			errMsg: `exitInsert cannot be bound to printable key "x"`,
		},
		{
			name:   "printable submit key",
			mutate: func(k *config.KeyMap) { k.Submit = []string{"space"} },
			errMsg: `submit cannot be bound to printable key "space"`,
		},
		{
			name:   "submit shares exit key",
			mutate: func(k *config.KeyMap) { k.Submit = []string{"esc"} },
			errMsg: `key "esc" is bound to both exitInsert and submit`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			km := config.DefaultKeyMap()
			tt.mutate(&km)
			_, err := NewBindings(km)
			require.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestNewBindingsAcceptsAlternateKeys(t *testing.T) {
	km := config.DefaultKeyMap()
	km.Quit = []string{"q", "ctrl+c"}
	b, err := NewBindings(km)
	require.NoError(t, err)
	assert.Equal(t, "q/ctrl+c", b.Quit.Help().Key)
}

func TestIsPrintableKey(t *testing.T) {
	assert.True(t, IsPrintableKey("a"))
	assert.True(t, IsPrintableKey("é"))
	assert.True(t, IsPrintableKey(" "))
	assert.True(t, IsPrintableKey("space"))
	assert.False(t, IsPrintableKey("esc"))
	assert.False(t, IsPrintableKey("ctrl+c"))
	assert.False(t, IsPrintableKey("shift+tab"))
}

func TestForModeGroups(t *testing.T) {
	b := DefaultBindings()

	normal := b.ForMode(NormalMode)
	require.Len(t, normal.FullHelp(), 2)
	assert.Len(t, normal.ShortHelp(), 2)
	assert.Len(t, normal.FullHelp()[1], 2)

	insert := b.ForMode(InsertMode)
	help := insert.FullHelp()
	require.Len(t, help, 2)
	assert.Equal(t, []string{"esc"}, help[0][0].Keys())
	assert.Equal(t, []string{"enter"}, help[1][0].Keys())

	assert.Empty(t, b.ForMode(Mode(9)).FullHelp())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "NORMAL", NormalMode.String())
	assert.Equal(t, "INSERT", InsertMode.String())
	assert.Equal(t, "UNKNOWN", Mode(7).String())
}
