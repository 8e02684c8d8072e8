package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/asdine/storm"
	"github.com/gempir/go-twitch-irc/v2"
	"github.com/nicklaw5/helix"

	_ "github.com/joho/godotenv/autoload"

	"github.com/fated/overlay-bot/pkg/db"
	"github.com/fated/overlay-bot/pkg/models"
	"github.com/fated/overlay-bot/pkg/overlay"
	"github.com/fated/overlay-bot/pkg/session"
	"github.com/fated/overlay-bot/pkg/store"
)

var (
	ircClient = twitch.NewClient(os.Getenv("TWITCH_USER"), os.Getenv("TWITCH_OAUTH"))
	channel   = os.Getenv("TWITCH_CHANNEL")
)

func init() {
	// Open DB
	var err error
	db.DB, err = storm.Open("db")
	if err != nil {
		log.Println("storm.Open()", err)
		panic("Could not init")
	}

	if err := db.DB.Init(&models.Counter{}); err != nil {
		log.Println("db.DB.Init()", err)
		panic("Could not init")
	}
}

func loadConfig() session.Config {
	features := make(map[string]bool)
	for _, f := range splitList(os.Getenv("FEATURES")) {
		features[f] = true
	}

	return session.Config{
		Channel: channel,
		Features: session.Features{
			TTS:           features["tts"],
			HypeTrain:     features["hype_train"],
			DeleteCounter: features["delete_counter"],
			ChatLottery:   features["chat_lottery"],
		},
		Admins:           splitList(os.Getenv("ADMIN_IDS")),
		LotteryBlacklist: splitList(os.Getenv("LOTTERY_BLACKLIST")),
		TTSRewardIDs:     splitList(os.Getenv("TTS_REWARD_IDS")),
		DefaultVoice:     os.Getenv("TTS_VOICE"),
	}
}

func main() {
	cfg := loadConfig()

	helixClient, err := helix.NewClient(&helix.Options{
		ClientID:        os.Getenv("TWITCH_CLIENT_ID"),
		UserAccessToken: os.Getenv("TWITCH_TOKEN"),
	})
	if err != nil {
		log.Fatalln("helix.NewClient()", err)
	}

	webDir := os.Getenv("OVERLAY_DIR")
	if webDir == "" {
		webDir = "./web"
	}
	widget := overlay.New(webDir)

	directory := helixDirectory{client: helixClient}
	sess := session.New(cfg, session.Collaborators{
		Directory: directory,
		Display:   widget,
		Speech:    widget,
		Store:     store.Counters{},
		HypeTrain: widget,
		Picker:    &chatPicker{channel: channel, directory: directory, widget: widget},
		Issues:    gitIssues{channel: channel},
	})
	sess.Restore()

	addr := os.Getenv("OVERLAY_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	go func() {
		if err := widget.ListenAndServe(addr); err != nil {
			log.Fatalln("overlay: ListenAndServe()", err)
		}
	}()

	// Register Twitch chat hooks.
	ircClient.OnPrivateMessage(func(message twitch.PrivateMessage) {
		sess.HandleMessage(session.Message{
			ID:       message.ID,
			UserID:   message.User.ID,
			Login:    message.User.Name,
			Text:     message.Message,
			IsMod:    message.Tags["mod"] == "1",
			RewardID: message.Tags["custom-reward-id"],
		})
	})

	// Deletion confirmations arrive as CLEARMSG.
	ircClient.OnClearMessage(func(message twitch.ClearMessage) {
		sess.ConfirmDeletion(message.TargetMsgID)
	})

	ircClient.Join(channel)

	// Shutdown logic --------------------------------------------------------
	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-gracefulStop
		log.Println("Preparing to shut down...")
		db.DB.Close()
		log.Println("Exiting")
		os.Exit(0)
	}()
	// End Shutdown logic ----------------------------------------------------

	// Connect to Twitch.
	if err := ircClient.Connect(); err != nil {
		log.Fatalln(err)
	}
}
