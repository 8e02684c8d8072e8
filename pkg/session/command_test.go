package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	cmd := ParseCommand("!makeDeleteCounter alice al,ali")
	assert.Equal(t, CommandMakeCounter, cmd.Kind)
	assert.Equal(t, []string{"alice", "al,ali"}, cmd.Args)

	cmd = ParseCommand("  !runLottery   120  ")
	assert.Equal(t, CommandRunLottery, cmd.Kind)
	assert.Equal(t, []string{"120"}, cmd.Args)

	cmd = ParseCommand("!skiptts")
	assert.Equal(t, CommandSkipTTS, cmd.Kind)
	assert.Empty(t, cmd.Args)
}

func TestParseCommandUnknown(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"hello there",
		"makeDeleteCounter alice",
		"!nosuchcommand a b",
		// Names are case-sensitive.
		"!makedeletecounter alice",
		"!CHOOCHOO",
	} {
		assert.Equal(t, CommandUnknown, ParseCommand(raw).Kind, "raw=%q", raw)
	}
}
