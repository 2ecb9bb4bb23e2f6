package betpool

import (
	"math/big"

	"github.com/wagerworks/parimutuel/internal/domain"
)

// mulDiv computes floor(a * b / den) without intermediate overflow.
// den must be positive.
func mulDiv(a, b, den int64) int64 {
	product := new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
	product.Quo(product, big.NewInt(den))
	return product.Int64()
}

// feeAmount returns the creator fee retained from the pool, floored.
func feeAmount(pool int64, feeBps int) int64 {
	return mulDiv(pool, int64(feeBps), domain.FeeDenominator)
}

// distributable returns the portion of the pool paid out to the winning side.
func distributable(pool int64, feeBps int) int64 {
	return pool - feeAmount(pool, feeBps)
}

// entitlement computes what a participant with the given per-side stakes can
// claim from a resolved round. Refund outcomes return the participant's own
// stakes with no fee taken. Side wins split the post-fee pool proportionally
// to stake on the winning side, flooring each share; rounding remainders stay
// with the engine.
func entitlement(round *domain.Round, stakes map[domain.Side]int64) int64 {
	switch round.State {
	case domain.RoundStateCancelled, domain.RoundStateDraw:
		return stakes[domain.SideX] + stakes[domain.SideY]
	case domain.RoundStateWinX, domain.RoundStateWinY:
		side := domain.SideX
		if round.State == domain.RoundStateWinY {
			side = domain.SideY
		}
		stake := stakes[side]
		sideTotal := round.SideTotal(side)
		if stake == 0 || sideTotal == 0 {
			return 0
		}
		return mulDiv(distributable(round.Pool(), round.FeeBps), stake, sideTotal)
	default:
		return 0
	}
}
