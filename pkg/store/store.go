package store

import (
	"github.com/asdine/storm"

	"github.com/fated/overlay-bot/pkg/db"
	"github.com/fated/overlay-bot/pkg/models"
	"github.com/fated/overlay-bot/pkg/session"
)

// Counters persists deletion counters in the bot's storm database so a
// restart keeps the tallies. Implements session.Store.
type Counters struct{}

func (Counters) InitCounter(userID string, nicknames []string) error {
	return db.DB.Save(&models.Counter{
		UserID:    userID,
		Nicknames: nicknames,
	})
}

// SaveCounters writes the full live set and drops persisted records whose
// counter no longer exists, so removal survives a restart too.
func (Counters) SaveCounters(counters []*session.Counter) error {
	keep := make(map[string]bool, len(counters))
	for _, c := range counters {
		keep[c.UserID] = true
		if err := db.DB.Save(&models.Counter{
			UserID:    c.UserID,
			Nicknames: c.Nicknames,
			Deleted:   c.Deleted,
		}); err != nil {
			return err
		}
	}

	var stored []models.Counter
	if err := db.DB.All(&stored); err != nil {
		return err
	}
	for _, c := range stored {
		if keep[c.UserID] {
			continue
		}
		if err := db.DB.DeleteStruct(&models.Counter{UserID: c.UserID}); err != nil && err != storm.ErrNotFound {
			return err
		}
	}
	return nil
}

func (Counters) LoadCounters() ([]*session.Counter, error) {
	var stored []models.Counter
	if err := db.DB.All(&stored); err != nil {
		return nil, err
	}

	counters := make([]*session.Counter, 0, len(stored))
	for _, c := range stored {
		counters = append(counters, &session.Counter{
			UserID:    c.UserID,
			Nicknames: c.Nicknames,
			Deleted:   c.Deleted,
		})
	}
	return counters, nil
}
