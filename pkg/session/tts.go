package session

import (
	"strconv"
	"strings"
)

// knownVoices are the aliases the overlay page can synthesize. Most map in
// pairs (style + persona name) onto the same synth template on the page.
var knownVoices = []string{
	"british", "charles",
	"swedish", "felix",
	"irish", "murphy",
	"kiwi", "oliver",
	"shout", "tim",
	"mad", "andy",
	"asmr", "ari",
	"biden", "ranger", "nerd",
	"betty", "shrek", "plankton", "sandy", "spongebob", "patrick",
}

// TTS gates reward-triggered speech: an enablement flag, the allow-list of
// custom-reward ids, the current voice, and a volume kept within [0, 1].
type TTS struct {
	enabled  bool
	eventIDs map[string]bool
	volume   float64
	voice    string
}

func NewTTS(rewardIDs []string, voice string) *TTS {
	t := &TTS{
		eventIDs: make(map[string]bool),
		volume:   1,
		voice:    "british",
	}
	for _, id := range rewardIDs {
		t.eventIDs[id] = true
	}
	t.SetVoice(voice)
	return t
}

func (t *TTS) Enabled() bool      { return t.enabled }
func (t *TTS) SetEnabled(on bool) { t.enabled = on }
func (t *TTS) Voice() string      { return t.voice }
func (t *TTS) Volume() float64    { return t.volume }

// SetVoice validates name against the known-voice table; unknown names are
// rejected and the prior voice kept.
func (t *TTS) SetVoice(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range knownVoices {
		if v == name {
			t.voice = name
			return true
		}
	}
	return false
}

// SetVolume parses raw and keeps the prior volume on anything non-numeric
// or outside [0, 1].
func (t *TTS) SetVolume(raw string) bool {
	volume, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || volume < 0 || volume > 1 {
		return false
	}
	t.volume = volume
	return true
}

// ShouldSpeak reports whether a message carrying rewardID gets read out:
// TTS is on, the message came through a custom reward, and that reward is
// on the allow-list.
func (t *TTS) ShouldSpeak(rewardID string) bool {
	return t.enabled && rewardID != "" && t.eventIDs[rewardID]
}

// VoiceNames returns the table for the overlay's voice list.
func VoiceNames() []string {
	names := make([]string, len(knownVoices))
	copy(names, knownVoices)
	return names
}
