package problemgen

import (
	"strconv"

	"github.com/abhisek/mathplay/internal/difficulty"
)

// Mode tells the consumer how a level is won.
type Mode string

const (
	// ModeSingleChoice levels are won by picking the one option with IsCorrect set.
	ModeSingleChoice Mode = "single_choice"
	// ModeCollection levels are won by selecting options whose NumericValue
	// sums to Target.
	ModeCollection Mode = "collection"
)

// PayloadKind tags the variant held by a Payload.
type PayloadKind string

const (
	PayloadNumber PayloadKind = "number"
	PayloadText   PayloadKind = "text"
	PayloadEmoji  PayloadKind = "emoji"
)

// Payload is the displayable value of an option.
type Payload struct {
	Kind   PayloadKind `json:"kind"`
	Number int         `json:"number,omitempty"`
	Text   string      `json:"text,omitempty"`
}

// Number returns a numeric payload.
func Number(n int) Payload { return Payload{Kind: PayloadNumber, Number: n} }

// Text returns a short text or expression payload, e.g. "3 + 4" or "7kg".
func Text(s string) Payload { return Payload{Kind: PayloadText, Text: s} }

// Emoji returns an emoji-run payload, e.g. "🥕🥕🥕".
func Emoji(s string) Payload { return Payload{Kind: PayloadEmoji, Text: s} }

// String returns the value as displayed to the player.
func (p Payload) String() string {
	if p.Kind == PayloadNumber {
		return strconv.Itoa(p.Number)
	}
	return p.Text
}

// Option is one candidate answer or piece within a level.
type Option struct {
	ID        string  `json:"id"`
	Value     Payload `json:"value"`
	IsCorrect bool    `json:"isCorrect"`

	// InSolution marks collection pieces that make up the generated solution.
	InSolution   bool `json:"inSolution,omitempty"`
	NumericValue *int `json:"numericValue,omitempty"`

	// Display-only annotations.
	Content string `json:"content,omitempty"`
	Style   string `json:"style,omitempty"`
}

// Numeric returns NumericValue, or 0 and false if the option carries none.
func (o Option) Numeric() (int, bool) {
	if o.NumericValue == nil {
		return 0, false
	}
	return *o.NumericValue, true
}

// Level is one generated puzzle. Levels are built fresh on every request and
// never modified afterwards; play state lives with the caller.
type Level struct {
	ID              string          `json:"id"`
	GameID          string          `json:"gameId,omitempty"`
	Tier            difficulty.Tier `json:"tier,omitempty"`
	Mode            Mode            `json:"mode"`
	Question        string          `json:"question"`
	Target          int             `json:"target,omitempty"` // zero means no target
	BackgroundTheme string          `json:"backgroundTheme,omitempty"`
	Hint            string          `json:"hint,omitempty"`
	Options         []Option        `json:"options"`
}

// Correct returns the winning option of a single-choice level.
func (l *Level) Correct() (Option, bool) {
	for _, o := range l.Options {
		if o.IsCorrect {
			return o, true
		}
	}
	return Option{}, false
}

// Option returns the option with the given id.
func (l *Level) Option(id string) (Option, bool) {
	for _, o := range l.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// TowerLevel is the stacking game's puzzle: a shuffled bag of blocks that
// contains at least one subset summing to Target.
type TowerLevel struct {
	Target   int   `json:"target"`
	Blocks   []int `json:"blocks"`
	Solution []int `json:"solution,omitempty"`
}

func intPtr(v int) *int { return &v }
