package main

import (
	"github.com/nicklaw5/helix"

	"github.com/fated/overlay-bot/pkg/session"
)

// helixDirectory answers user lookups through the Helix API.
type helixDirectory struct {
	client *helix.Client
}

func (d helixDirectory) UsersByID(ids ...string) ([]session.User, error) {
	return d.getUsers(&helix.UsersParams{IDs: ids})
}

func (d helixDirectory) UsersByName(logins ...string) ([]session.User, error) {
	return d.getUsers(&helix.UsersParams{Logins: logins})
}

func (d helixDirectory) getUsers(params *helix.UsersParams) ([]session.User, error) {
	resp, err := d.client.GetUsers(params)
	if err != nil {
		return nil, err
	}

	users := make([]session.User, 0, len(resp.Data.Users))
	for _, u := range resp.Data.Users {
		users = append(users, session.User{
			ID:          u.ID,
			Login:       u.Login,
			DisplayName: u.DisplayName,
		})
	}
	return users, nil
}
