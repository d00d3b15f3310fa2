package fine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/casefine/internal/offense"
)

// penaltyStep is the surcharge per prior offense of the same type.
var penaltyStep = decimal.New(25, -2) // 0.25

// Compute derives the fine amount for an offense type given how many prior
// offenses of that exact type the offender already has on record:
//
//	amount = base × (1 + 0.25 × prior)
//
// Pure function of its inputs; zero priors yields exactly the base fine.
func Compute(t offense.Type, priorSameType int) (decimal.Decimal, error) {
	info, ok := offense.Lookup(t)
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown offense type %q", t)
	}

	factor := decimal.NewFromInt(1).Add(penaltyStep.Mul(decimal.NewFromInt(int64(priorSameType))))

	return info.BaseFine.Mul(factor), nil
}
