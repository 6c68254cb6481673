package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// Color is one ball colour in the colour-match game.
type Color struct {
	Name  string
	Ball  string
	Style string // hex colour for renderers
}

// Palette is the fixed set of colours offered every level.
var Palette = []Color{
	{Name: "Đỏ", Ball: "🔴", Style: "#EF4444"},
	{Name: "Xanh", Ball: "🔵", Style: "#3B82F6"},
	{Name: "Vàng", Ball: "🟡", Style: "#FACC15"},
	{Name: "Tím", Ball: "🟣", Style: "#A855F7"},
}

// ColorMatch asks the player to pick the ball of a named colour.
func ColorMatch(rng *rand.Rand) Level {
	want := Palette[rng.IntN(len(Palette))]

	opts := make([]Option, 0, len(Palette))
	for _, c := range Palette {
		opts = append(opts, Option{
			ID:        c.Name,
			Value:     Emoji(c.Ball),
			IsCorrect: c.Name == want.Name,
			Style:     c.Style,
		})
	}
	shuffle(rng, opts)

	return Level{
		ID:       newID(rng),
		Mode:     ModeSingleChoice,
		Question: fmt.Sprintf("Chọn bóng màu %s!", want.Name),
		Hint:     "Màu sắc",
		Options:  opts,
	}
}
