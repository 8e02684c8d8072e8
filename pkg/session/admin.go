package session

import (
	"log"
	"strconv"
	"strings"
	"time"
)

// isAdmin passes channel moderators and the static admin list. Everything
// privileged hangs off this single check.
func (s *Session) isAdmin(msg Message) bool {
	return msg.IsMod || s.admins[msg.UserID]
}

// handleAdmin parses and dispatches one admin command. A command whose
// feature is disabled falls through silently, exactly like an unknown
// command, so chat never learns which features exist.
func (s *Session) handleAdmin(msg Message) {
	cmd := ParseCommand(msg.Text)
	features := s.cfg.Features

	switch cmd.Kind {
	case CommandUnknown:
	case CommandChooChoo:
		if features.HypeTrain {
			s.ext.HypeTrain.Trigger(true)
		}
	case CommandShowCounter:
		if features.DeleteCounter {
			s.renderCounter(cmd.Args, s.ext.Display.ShowCounter)
		}
	case CommandHideCounter:
		if features.DeleteCounter {
			s.renderCounter(cmd.Args, s.ext.Display.HideCounter)
		}
	case CommandFlashCounter:
		if features.DeleteCounter {
			s.renderCounter(cmd.Args, s.ext.Display.FlashCounter)
		}
	case CommandMakeCounter:
		if features.DeleteCounter {
			s.makeCounter(cmd.Args)
		}
	case CommandRemoveCounter:
		if features.DeleteCounter {
			s.removeCounter(cmd.Args)
		}
	case CommandRunLottery:
		if features.ChatLottery {
			s.runLottery(cmd.Args)
		}
	case CommandEnableTTS:
		if features.TTS {
			s.setTTSEnabled(true)
		}
	case CommandDisableTTS:
		if features.TTS {
			s.setTTSEnabled(false)
		}
	case CommandUpdateVoice:
		if features.TTS && len(cmd.Args) == 1 {
			s.mu.Lock()
			s.tts.SetVoice(cmd.Args[0])
			s.mu.Unlock()
		}
	case CommandSkipTTS:
		if features.TTS {
			s.ext.Speech.Skip()
		}
	case CommandShowVoices:
		if features.TTS {
			s.ext.Display.ShowVoices(VoiceNames())
		}
	case CommandHideVoices:
		if features.TTS {
			s.ext.Display.HideVoices()
		}
	case CommandSetVolume:
		if features.TTS && len(cmd.Args) == 1 {
			s.mu.Lock()
			s.tts.SetVolume(cmd.Args[0])
			s.mu.Unlock()
		}
	case CommandRequest:
		if len(cmd.Args) > 0 {
			if err := s.ext.Issues.File(msg.Login, strings.Join(cmd.Args, " ")); err != nil {
				log.Println(s.cfg.Channel, "handleAdmin: Issues.File()", err)
			}
		}
	}
}

func (s *Session) setTTSEnabled(on bool) {
	s.mu.Lock()
	s.tts.SetEnabled(on)
	s.mu.Unlock()
}

// renderCounter resolves a nickname and hands the counter's handle to one
// of the Display calls. Wrong arity or unknown nickname is a no-op.
func (s *Session) renderCounter(args []string, render func(handle string)) {
	if len(args) != 1 {
		return
	}

	s.mu.Lock()
	counter := s.counters.ByNickname(args[0])
	s.mu.Unlock()
	if counter == nil {
		return
	}
	render(counter.Handle)
}

// makeCounter resolves the username on the platform first, then registers
// the counter. The lookup can interleave with other messages, so the
// uniqueness check inside Create, taken under the lock right before
// insertion, is the serialization point: of two racing makes for the same
// user, only the first insert wins.
func (s *Session) makeCounter(args []string) {
	if len(args) < 1 || len(args) > 2 {
		return
	}

	username := args[0]
	users, err := s.ext.Directory.UsersByName(username)
	if err != nil {
		log.Println(s.cfg.Channel, "makeCounter: Directory.UsersByName()", err)
		return
	}
	if len(users) == 0 {
		return
	}
	user := users[0]

	nicknames := []string{user.Login}
	if len(args) == 2 {
		nicknames = append(nicknames, strings.Split(args[1], ",")...)
	}

	s.mu.Lock()
	counter := s.counters.Create(user.ID, nicknames)
	s.mu.Unlock()
	if counter == nil {
		return
	}

	s.ext.Display.UpdateCounter(counter.Handle, counter.Deleted)

	if err := s.ext.Store.InitCounter(counter.UserID, counter.Nicknames); err != nil {
		log.Println(s.cfg.Channel, "makeCounter: Store.InitCounter()", err)
	}
	s.saveCounters()
}

func (s *Session) removeCounter(args []string) {
	if len(args) != 1 {
		return
	}

	s.mu.Lock()
	counter := s.counters.Remove(args[0])
	s.mu.Unlock()
	if counter == nil {
		return
	}

	s.ext.Display.HideCounter(counter.Handle)
	s.saveCounters()
}

// runLottery (re)opens the pool. Re-opening supersedes the previous close
// timer rather than stacking a second one. A missing or unusable seconds
// argument falls back to 60; an optional second argument asks the picker
// for that many winners.
func (s *Session) runLottery(args []string) {
	seconds := 60
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			seconds = n
		}
	}
	winners := 1
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			winners = n
		}
	}

	s.mu.Lock()
	s.lottery.Open(winners)
	s.lotteryGen++
	gen := s.lotteryGen
	if s.lotteryTimer != nil {
		s.lotteryTimer.Stop()
	}
	s.lotteryTimer = time.AfterFunc(time.Duration(seconds)*s.timerUnit, func() {
		s.closeLottery(gen)
	})
	s.mu.Unlock()

	s.ext.Display.LotteryCount(0)
}
