package encourage

import "math/rand/v2"

// Phrases is the fixed set of cheers shown after a win.
var Phrases = []string{
	"Tuyệt vời!",
	"Bé giỏi quá!",
	"Xuất sắc!",
	"Hoan hô!",
	"Đúng rồi!",
	"Thông minh quá!",
	"Bingo!",
}

// Pick returns a uniformly chosen phrase.
func Pick(rng *rand.Rand) string {
	return Phrases[rng.IntN(len(Phrases))]
}
