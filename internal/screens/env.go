// Package screens holds what every player screen shares.
package screens

import (
	"context"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/encourage"
	"github.com/abhisek/mathplay/internal/play"
)

// cheerTimeout bounds one encouragement request.
const cheerTimeout = 10 * time.Second

// Env carries the services screens need. A single Env lives for the whole
// program; the Bubble Tea loop is single-threaded, so Rand and Session are
// only touched from Update.
type Env struct {
	Dispatcher *catalog.Dispatcher
	Cheer      *encourage.Cheerleader
	Session    *play.Session
	Rand       *rand.Rand
}

// CheerMsg delivers an encouragement phrase.
type CheerMsg struct {
	Phrase string
}

// CheerCmd asks the cheerleader for a phrase in the background.
func (e *Env) CheerCmd(gameName string) tea.Cmd {
	in := encourage.CheerInput{GameName: gameName, Streak: e.Session.Streak()}
	cheer := e.Cheer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), cheerTimeout)
		defer cancel()
		return CheerMsg{Phrase: cheer.Phrase(ctx, in)}
	}
}
