package session

import (
	"strings"
)

// CommandKind is the closed set of widget commands. The parser maps raw
// text onto a kind; dispatch switches over every kind so a new command is
// a compile-time change.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandChooChoo
	CommandShowCounter
	CommandHideCounter
	CommandFlashCounter
	CommandMakeCounter
	CommandRemoveCounter
	CommandRunLottery
	CommandEnableTTS
	CommandDisableTTS
	CommandUpdateVoice
	CommandSkipTTS
	CommandShowVoices
	CommandHideVoices
	CommandSetVolume
	CommandRequest
)

// Command names are case-sensitive; !chooChoo and !runLottery keep their
// camel case.
var commandNames = map[string]CommandKind{
	"!chooChoo":            CommandChooChoo,
	"!showDeleteCounter":   CommandShowCounter,
	"!hideDeleteCounter":   CommandHideCounter,
	"!flashDeleteCounter":  CommandFlashCounter,
	"!makeDeleteCounter":   CommandMakeCounter,
	"!removeDeleteCounter": CommandRemoveCounter,
	"!runLottery":          CommandRunLottery,
	"!enabletts":           CommandEnableTTS,
	"!disabletts":          CommandDisableTTS,
	"!updateVoice":         CommandUpdateVoice,
	"!skiptts":             CommandSkipTTS,
	"!showVoices":          CommandShowVoices,
	"!hideVoices":          CommandHideVoices,
	"!setVoiceVolume":      CommandSetVolume,
	"!request":             CommandRequest,
}

// Command is one parsed chat command. Args are the whitespace-delimited
// tokens after the name; there is no quoting or escaping.
type Command struct {
	Kind CommandKind
	Args []string
}

// ParseCommand tokenizes raw chat text. Anything that does not start with
// '!' or does not match a known name comes back as CommandUnknown, which
// dispatch treats as a no-op.
func ParseCommand(raw string) Command {
	fields := strings.Fields(raw)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "!") {
		return Command{Kind: CommandUnknown}
	}

	kind, ok := commandNames[fields[0]]
	if !ok {
		return Command{Kind: CommandUnknown}
	}
	return Command{Kind: kind, Args: fields[1:]}
}
