package models

// Counter is the persisted slice of a deletion counter: who is tracked,
// under which nicknames, and how many of their messages have been deleted
// so far. Pending message ids are session-scoped and not stored.
type Counter struct {
	UserID    string `storm:"id"` // Twitch user id
	Nicknames []string
	Deleted   int
}
