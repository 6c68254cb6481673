package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	minCollectionTarget = 4
	collectionExtras    = 3
	extraPieceMax       = 5
	maxBridgeBars       = 12
)

// CollectionParams configures Collection.
type CollectionParams struct {
	Items     []string // emoji the pieces are drawn from
	PoolBound int      // target is drawn from [4, max(5, PoolBound-2)]
	Verb      string   // e.g. "Thu hoạch"
	Unit      string   // appended to numbers, e.g. "m" or "vàng"
	Priced    bool     // pieces render as "💎 7vàng"
	Bridge    bool     // pieces render as "[=== 3m ===]"
}

// CollectionTargetRange returns the inclusive target bounds for a pool bound.
func CollectionTargetRange(poolBound int) (lo, hi int) {
	return minCollectionTarget, max(5, poolBound-2)
}

// Collection builds a subset-sum level. The solution pieces are split
// greedily from the target so they always add up exactly; a few small extra
// pieces are mixed in.
func Collection(rng *rand.Rand, p CollectionParams) Level {
	lo, hi := CollectionTargetRange(p.PoolBound)
	target := between(rng, lo, hi)

	var opts []Option
	for remaining := target; remaining > 0; {
		v := between(rng, 1, remaining)
		opts = append(opts, p.piece(rng, v, true))
		remaining -= v
	}
	for range collectionExtras {
		opts = append(opts, p.piece(rng, between(rng, 1, extraPieceMax), false))
	}
	shuffle(rng, opts)

	verb := p.Verb
	if verb == "" {
		verb = "Thu thập"
	}
	return Level{
		ID:       newID(rng),
		Mode:     ModeCollection,
		Question: fmt.Sprintf("%s đủ %d%s nhé!", verb, target, p.Unit),
		Target:   target,
		Options:  opts,
	}
}

func (p CollectionParams) piece(rng *rand.Rand, v int, solution bool) Option {
	item := "⭐"
	if len(p.Items) > 0 {
		item = p.Items[rng.IntN(len(p.Items))]
	}

	var value Payload
	switch {
	case p.Bridge:
		bars := strings.Repeat("=", min(v, maxBridgeBars))
		value = Text(fmt.Sprintf("[%s %d%s %s]", bars, v, p.Unit, bars))
	case p.Priced:
		value = Text(fmt.Sprintf("%s %d%s", item, v, p.Unit))
	default:
		value = Emoji(strings.Repeat(item, v))
	}

	return Option{
		ID:           newID(rng),
		Value:        value,
		InSolution:   solution,
		NumericValue: intPtr(v),
	}
}
