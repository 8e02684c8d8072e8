package session

// Lottery is the opt-in pool. It holds pure state; the session owns the
// closing timer and the lock guarding these methods.
type Lottery struct {
	isOpen    bool
	users     map[string]bool
	winners   int
	blacklist map[string]bool
}

func NewLottery(blacklist []string) *Lottery {
	l := &Lottery{
		users:     make(map[string]bool),
		blacklist: make(map[string]bool),
	}
	for _, id := range blacklist {
		l.blacklist[id] = true
	}
	return l
}

func (l *Lottery) IsOpen() bool {
	return l.isOpen
}

// Open clears any previous pool and starts accepting entrants. winners is
// the count handed to the picker on close, minimum 1.
func (l *Lottery) Open(winners int) {
	if winners < 1 {
		winners = 1
	}
	l.isOpen = true
	l.winners = winners
	l.users = make(map[string]bool)
}

// Join is idempotent and ignored while closed. Blacklisted ids are dropped
// silently even while open.
func (l *Lottery) Join(userID string) {
	if !l.isOpen || l.blacklist[userID] {
		return
	}
	l.users[userID] = true
}

// Close ends the lottery and returns the final entrant set plus the
// requested winner count. Closing a closed lottery returns nil.
func (l *Lottery) Close() ([]string, int) {
	if !l.isOpen {
		return nil, 0
	}
	l.isOpen = false

	entrants := make([]string, 0, len(l.users))
	for id := range l.users {
		entrants = append(entrants, id)
	}
	return entrants, l.winners
}

func (l *Lottery) Size() int {
	return len(l.users)
}
