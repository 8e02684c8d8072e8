package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/go-github/v32/github"
	"golang.org/x/oauth2"
)

// gitIssues files !request messages as issues on the widget's tracker.
type gitIssues struct {
	channel string
}

func (g gitIssues) File(login, text string) error {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: os.Getenv("GITHUB")},
	)
	tc := oauth2.NewClient(ctx, ts)

	git := github.NewClient(tc)

	title := text
	if len(title) > 60 {
		title = title[:60]
	}
	body := text + "\n\nrequested by " + login
	state := "open"
	labels := []string{"twitch request"}

	issue := github.IssueRequest{
		Title:  &title,
		Body:   &body,
		Labels: &labels,
		State:  &state,
	}

	repo := strings.SplitN(os.Getenv("GITHUB_REPO"), "/", 2)
	if len(repo) != 2 {
		log.Println(g.channel, "File(): GITHUB_REPO not set")
		return nil
	}

	iss, _, err := git.Issues.Create(ctx, repo[0], repo[1], &issue)
	if err != nil {
		return err
	}

	say(g.channel, "@"+login+" Issue #"+strconv.Itoa(iss.GetNumber())+" has been created")
	return nil
}
