package play

import "github.com/abhisek/mathplay/internal/difficulty"

// Session keeps the win streak across the levels of one game and the win and
// miss totals across the whole sitting.
type Session struct {
	policy difficulty.Policy
	streak int
	wins   int
	misses int
}

// NewSession starts a session that picks tiers with policy.
func NewSession(policy difficulty.Policy) *Session {
	return &Session{policy: policy}
}

// RecordWin bumps the streak.
func (s *Session) RecordWin() {
	s.streak++
	s.wins++
}

// RecordMiss counts a wrong answer. The streak is kept: a child may retry
// the same level until it is solved.
func (s *Session) RecordMiss() {
	s.misses++
}

// ResetStreak starts a new game at the bottom tier. Wins and misses are kept.
func (s *Session) ResetStreak() {
	s.streak = 0
}

// Streak is the number of consecutive wins.
func (s *Session) Streak() int { return s.streak }

// Wins is the total number of wins.
func (s *Session) Wins() int { return s.wins }

// Misses is the total number of wrong answers.
func (s *Session) Misses() int { return s.misses }

// Tier is the difficulty for the next level.
func (s *Session) Tier() difficulty.Tier {
	return s.policy.FromStreak(s.streak)
}
