package session

import (
	"strings"
)

// Counter tracks one user's deleted messages. Pending holds message ids
// seen in chat that have not been deleted yet; a CLEARMSG flips the entry
// and bumps Deleted. Handle is the overlay element id and is only ever
// passed back to the Display collaborator.
type Counter struct {
	UserID    string
	Nicknames []string
	Pending   map[string]bool
	Deleted   int
	Handle    string
}

// Registry indexes counters both by owning user id (message events) and by
// nickname (admin commands). The two indices are kept consistent: every
// nickname, including the username itself, points at exactly one counter.
type Registry struct {
	byID   map[string]*Counter
	byNick map[string]*Counter
}

func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]*Counter),
		byNick: make(map[string]*Counter),
	}
}

// Create registers a counter for userID under the given nicknames. The
// first nickname is conventionally the username. Returns nil without side
// effects if the user already has a counter or any nickname is taken;
// duplicate registration is rejected, not merged.
func (r *Registry) Create(userID string, nicknames []string) *Counter {
	if _, ok := r.byID[userID]; ok {
		return nil
	}

	lowered := make([]string, 0, len(nicknames))
	for _, nick := range nicknames {
		nick = strings.ToLower(strings.TrimSpace(nick))
		if nick == "" {
			continue
		}
		if _, ok := r.byNick[nick]; ok {
			return nil
		}
		lowered = append(lowered, nick)
	}
	if len(lowered) == 0 {
		return nil
	}

	counter := &Counter{
		UserID:    userID,
		Nicknames: lowered,
		Pending:   make(map[string]bool),
		Handle:    "delete_counter_" + userID,
	}
	r.byID[userID] = counter
	for _, nick := range lowered {
		r.byNick[nick] = counter
	}
	return counter
}

// ByNickname is a case-insensitive exact match.
func (r *Registry) ByNickname(nickname string) *Counter {
	return r.byNick[strings.ToLower(strings.TrimSpace(nickname))]
}

func (r *Registry) ByID(userID string) *Counter {
	return r.byID[userID]
}

// Record marks msgID as pending on the sender's counter. Users without a
// counter are ignored; recording never creates one.
func (r *Registry) Record(userID, msgID string) {
	counter, ok := r.byID[userID]
	if !ok {
		return
	}
	counter.Pending[msgID] = false
}

// Confirm flips a pending message to deleted and returns the owning
// counter, or nil if no counter was holding msgID.
func (r *Registry) Confirm(msgID string) *Counter {
	for _, counter := range r.byID {
		deleted, ok := counter.Pending[msgID]
		if !ok || deleted {
			continue
		}
		counter.Pending[msgID] = true
		counter.Deleted++
		return counter
	}
	return nil
}

// Remove accepts a user id or a nickname, drops the counter from both
// indices, and returns it. Unknown identifiers return nil.
func (r *Registry) Remove(identifier string) *Counter {
	counter, ok := r.byID[identifier]
	if !ok {
		counter = r.ByNickname(identifier)
	}
	if counter == nil {
		return nil
	}

	delete(r.byID, counter.UserID)
	for _, nick := range counter.Nicknames {
		delete(r.byNick, nick)
	}
	return counter
}

// All returns every registered counter, order unspecified.
func (r *Registry) All() []*Counter {
	counters := make([]*Counter, 0, len(r.byID))
	for _, counter := range r.byID {
		counters = append(counters, counter)
	}
	return counters
}
