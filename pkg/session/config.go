package session

// Features switches whole command families on and off per streamer. A
// command whose feature is off behaves exactly like an unknown command.
type Features struct {
	TTS           bool
	HypeTrain     bool
	DeleteCounter bool
	ChatLottery   bool
}

// Config is selected once at process start and never mutated afterwards.
type Config struct {
	Channel  string
	Features Features

	// Admins may issue widget commands in addition to channel moderators.
	Admins []string

	// LotteryBlacklist ids are silently ignored even while a lottery is open.
	LotteryBlacklist []string

	// TTSRewardIDs are the custom-reward ids allowed to trigger speech.
	TTSRewardIDs []string

	// JoinCommands are the exact lowercase messages that enter an open
	// lottery. Defaults to !join and !play.
	JoinCommands []string

	// DefaultVoice must be a known voice name; falls back to "british".
	DefaultVoice string
}
