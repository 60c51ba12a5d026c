// Package valuation implements the heuristic player value model. The model
// assumes value peaks at age 27, longer contracts add value, potential
// holds half the worth of realized skill, and injury-prone players trade
// at a discount.
package valuation

// BaseValue anchors all player valuations.
const BaseValue = 1000

// Input carries the attributes the value model depends on.
type Input struct {
	Age             float64
	ContractYears   float64
	SkillLevel      float64
	PotentialLevel  float64
	InjuryProneness float64
}

// PlayerValue computes the monetary value of a player from its current
// attributes. It is side-effect free; callers overwrite the stored value
// after any attribute mutation. A non-positive remaining contract yields
// zero value; this is the documented degenerate case, not an error.
func PlayerValue(in Input) float64 {
	skillComponent := in.SkillLevel * in.SkillLevel * BaseValue
	potentialComponent := 0.5 * (in.PotentialLevel*in.PotentialLevel*BaseValue - skillComponent)

	return (skillComponent + potentialComponent) *
		ageMultiplier(in.Age) *
		contractMultiplier(in.ContractYears) *
		(1 - in.InjuryProneness)
}

// ageMultiplier assumes prime utility at 27: above 1 before, below 1 after.
func ageMultiplier(age float64) float64 {
	return 27 / age
}

// contractMultiplier works in whole months; an expired contract zeroes the
// valuation entirely.
func contractMultiplier(contractYears float64) float64 {
	months := int(contractYears * 12)
	if months <= 0 {
		return 0
	}
	return 1 + 36/float64(months)
}
