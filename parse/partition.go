package parse

import (
	"math"

	"github.com/vantara-labs/units/matchflags"
	"github.com/vantara-labs/units/unit"
)

// partition implements phase 14: split s character by character
// (bracket-respecting) into a left/right pair, resolve each half
// independently, and combine by implicit multiplication. Among every
// split point that resolves both halves, the tie-break rule picks
// the longest resolvable left prefix, and among those of equal length,
// the one whose combined multiplier's |log10| is closest to zero.
func (p *Parser) partition(s string, c ctx) (unit.Precise, bool) {
	if c.partitionDepth >= matchflags.MaxPartitionDepth || c.flags.SkipPartitionCheck() {
		return unit.Precise{}, false
	}

	minSeg := int(c.flags.MinPartitionSegment())
	if minSeg < 1 {
		minSeg = 1
	}

	depth := 0
	type candidate struct {
		leftLen int
		score   float64
		u       unit.Precise
	}
	var best *candidate

	childCtx := c
	childCtx.partitionDepth++
	childCtx.notFirstPass = true

	for i := minSeg; i <= len(s)-minSeg; i++ {
		switch s[i-1] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
		if depth != 0 {
			continue
		}
		left, right := s[:i], s[i:]
		lu, lerr := p.parseCtx(left, childCtx)
		if lerr != nil || lu.IsInvalid() || lu.IsError() {
			continue
		}
		ru, rerr := p.parseCtx(right, childCtx)
		if rerr != nil || ru.IsInvalid() || ru.IsError() {
			continue
		}
		combined := unit.Mul(lu, ru)
		if combined.IsError() {
			continue
		}
		score := math.Abs(math.Log10(math.Abs(float64(combined.Multiplier))))
		if math.IsInf(score, 0) || math.IsNaN(score) {
			continue
		}
		if best == nil || i > best.leftLen || (i == best.leftLen && score < best.score) {
			best = &candidate{leftLen: i, score: score, u: combined}
		}
	}

	if best == nil {
		return unit.Precise{}, false
	}
	return best.u, true
}
