package session

import (
	"log"
	"strings"
	"sync"
	"time"
)

// User is a cached profile from the platform directory.
type User struct {
	ID          string
	Login       string
	DisplayName string
}

// Message is one normalized incoming chat message.
type Message struct {
	ID       string
	UserID   string
	Login    string
	Text     string
	IsMod    bool
	RewardID string
}

// Directory looks users up on the platform. Either result may be empty;
// the session treats absence as "unknown user" and carries on.
type Directory interface {
	UsersByID(ids ...string) ([]User, error)
	UsersByName(logins ...string) ([]User, error)
}

// Display drives the overlay page. Pure side effects; no return values.
type Display interface {
	ShowCounter(handle string)
	HideCounter(handle string)
	FlashCounter(handle string)
	UpdateCounter(handle string, deleted int)
	LotteryCount(n int)
	ShowVoices(names []string)
	HideVoices()
}

// Speech synthesizes reward-triggered messages. Fire and forget.
type Speech interface {
	Speak(voice string, volume float64, text string)
	Skip()
}

// Store persists deletion counters across sessions. Failures are logged
// and in-memory state is kept as-is; there is no rollback.
type Store interface {
	InitCounter(userID string, nicknames []string) error
	SaveCounters(counters []*Counter) error
	LoadCounters() ([]*Counter, error)
}

// HypeTrain fires the overlay's hype-train effect.
type HypeTrain interface {
	Trigger(force bool)
}

// Picker receives the final entrant pool when a lottery closes.
type Picker interface {
	Pick(entrants []string, winners int)
}

// Issues files a tracker issue for a !request.
type Issues interface {
	File(login, text string) error
}

// Collaborators are the external surfaces injected into a Session.
type Collaborators struct {
	Directory Directory
	Display   Display
	Speech    Speech
	Store     Store
	HypeTrain HypeTrain
	Picker    Picker
	Issues    Issues
}

// Session holds all mutable state for one connected stream. One message is
// dispatched at a time by the IRC client, but the lottery timer and the
// overlay run on their own goroutines, so the state sits behind a mutex.
type Session struct {
	cfg Config
	ext Collaborators

	mu       sync.Mutex
	users    map[string]User
	counters *Registry
	lottery  *Lottery
	tts      *TTS

	lotteryTimer *time.Timer
	lotteryGen   int
	timerUnit    time.Duration

	admins       map[string]bool
	joinCommands map[string]bool
}

func New(cfg Config, ext Collaborators) *Session {
	s := &Session{
		cfg:          cfg,
		ext:          ext,
		users:        make(map[string]User),
		counters:     NewRegistry(),
		lottery:      NewLottery(cfg.LotteryBlacklist),
		tts:          NewTTS(cfg.TTSRewardIDs, cfg.DefaultVoice),
		admins:       make(map[string]bool),
		joinCommands: make(map[string]bool),
		timerUnit:    time.Second,
	}
	for _, id := range cfg.Admins {
		s.admins[id] = true
	}
	joins := cfg.JoinCommands
	if len(joins) == 0 {
		joins = []string{"!join", "!play"}
	}
	for _, alias := range joins {
		s.joinCommands[strings.ToLower(alias)] = true
	}
	return s
}

// HandleMessage runs the per-message pipeline: cache the sender, record
// the message id on their counter, try a lottery join, dispatch an admin
// command, and finally speak the text if the reward allows it. Each step
// is independent; an earlier failure never skips a later step.
func (s *Session) HandleMessage(msg Message) {
	s.cacheUser(msg.UserID)

	s.mu.Lock()
	s.counters.Record(msg.UserID, msg.ID)

	lotterySize := -1
	if s.cfg.Features.ChatLottery && s.lottery.IsOpen() &&
		s.joinCommands[strings.ToLower(strings.TrimSpace(msg.Text))] {
		s.lottery.Join(msg.UserID)
		lotterySize = s.lottery.Size()
	}
	s.mu.Unlock()

	if lotterySize >= 0 {
		s.ext.Display.LotteryCount(lotterySize)
	}

	if s.isAdmin(msg) {
		s.handleAdmin(msg)
	}

	if s.cfg.Features.TTS {
		s.mu.Lock()
		speak := s.tts.ShouldSpeak(msg.RewardID)
		voice, volume := s.tts.Voice(), s.tts.Volume()
		s.mu.Unlock()
		if speak {
			s.ext.Speech.Speak(voice, volume, msg.Text)
		}
	}
}

// ConfirmDeletion reacts to a platform CLEARMSG: if some counter was
// holding msgID as pending, its tally goes up, the overlay refreshes, and
// the counters are persisted.
func (s *Session) ConfirmDeletion(msgID string) {
	if !s.cfg.Features.DeleteCounter {
		return
	}

	s.mu.Lock()
	counter := s.counters.Confirm(msgID)
	s.mu.Unlock()
	if counter == nil {
		return
	}

	s.ext.Display.UpdateCounter(counter.Handle, counter.Deleted)
	s.saveCounters()
}

// Restore re-registers persisted counters at session start. Duplicates are
// skipped under the same rule as creation.
func (s *Session) Restore() {
	stored, err := s.ext.Store.LoadCounters()
	if err != nil {
		log.Println(s.cfg.Channel, "Restore: Store.LoadCounters()", err)
		return
	}

	s.mu.Lock()
	for _, c := range stored {
		if created := s.counters.Create(c.UserID, c.Nicknames); created != nil {
			created.Deleted = c.Deleted
		}
	}
	counters := s.counters.All()
	s.mu.Unlock()

	for _, c := range counters {
		s.ext.Display.UpdateCounter(c.Handle, c.Deleted)
	}
}

// CloseLottery ends an open lottery right now, superseding the timer, and
// hands the pool to the picker.
func (s *Session) CloseLottery() {
	s.mu.Lock()
	s.lotteryGen++
	if s.lotteryTimer != nil {
		s.lotteryTimer.Stop()
	}
	if !s.lottery.IsOpen() {
		s.mu.Unlock()
		return
	}
	entrants, winners := s.lottery.Close()
	s.mu.Unlock()

	s.ext.Picker.Pick(entrants, winners)
}

// closeLottery is the timer path. gen guards against a timer that was
// superseded by a later !runLottery firing anyway.
func (s *Session) closeLottery(gen int) {
	s.mu.Lock()
	if gen != s.lotteryGen || !s.lottery.IsOpen() {
		s.mu.Unlock()
		return
	}
	entrants, winners := s.lottery.Close()
	s.mu.Unlock()

	s.ext.Picker.Pick(entrants, winners)
}

func (s *Session) cacheUser(userID string) {
	s.mu.Lock()
	_, ok := s.users[userID]
	s.mu.Unlock()
	if ok {
		return
	}

	users, err := s.ext.Directory.UsersByID(userID)
	if err != nil {
		log.Println(s.cfg.Channel, "cacheUser: Directory.UsersByID()", err)
		return
	}
	if len(users) == 0 {
		return
	}

	s.mu.Lock()
	s.users[userID] = users[0]
	s.mu.Unlock()
}

func (s *Session) saveCounters() {
	s.mu.Lock()
	counters := s.counters.All()
	s.mu.Unlock()

	if err := s.ext.Store.SaveCounters(counters); err != nil {
		log.Println(s.cfg.Channel, "saveCounters: Store.SaveCounters()", err)
	}
}
