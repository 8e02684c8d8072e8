package main

import (
	"log"
	"strings"

	"github.com/fated/overlay-bot/pkg/overlay"
	"github.com/fated/overlay-bot/pkg/session"
)

// chatPicker draws lottery winners uniformly from the final pool and
// announces them in chat and on the overlay.
type chatPicker struct {
	channel   string
	directory session.Directory
	widget    *overlay.Server
}

func (p *chatPicker) Pick(entrants []string, winners int) {
	if len(entrants) == 0 {
		say(p.channel, "Lottery closed with an empty pool. Sad trombone.")
		return
	}
	if winners > len(entrants) {
		winners = len(entrants)
	}

	ids := make([]string, 0, winners)
	for i := 0; i < winners; i++ {
		r := random(0, len(entrants))
		ids = append(ids, entrants[r])
		entrants = remove(entrants, r)
	}

	names := p.resolve(ids)
	p.widget.AnnounceWinners(names)
	say(p.channel, "Lottery winners: "+strings.Join(names, ", ")+"! Suck it nerds!")
}

// resolve swaps ids for display names where the lookup cooperates; anyone
// it can't resolve keeps their raw id.
func (p *chatPicker) resolve(ids []string) []string {
	names := make([]string, len(ids))
	copy(names, ids)

	users, err := p.directory.UsersByID(ids...)
	if err != nil {
		log.Println(p.channel, "resolve: UsersByID()", err)
		return names
	}

	byID := make(map[string]string, len(users))
	for _, u := range users {
		byID[u.ID] = u.DisplayName
	}
	for i, id := range ids {
		if name, ok := byID[id]; ok && name != "" {
			names[i] = name
		}
	}
	return names
}
