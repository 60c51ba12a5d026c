package gen

import "math/rand"

// maxResamples caps every rejection-resampling loop. The default bounds sit
// well inside their distributions, so hitting the cap indicates broken
// parameters rather than bad luck.
const maxResamples = 10000

// normalWithin draws from a normal distribution until the value falls in
// [lo, hi]. The mean and deviation stay fixed across redraws; rejection
// only discards out-of-range values. Returns the accepted value and how
// many draws were rejected along the way.
func normalWithin(rng *rand.Rand, mu, sigma, lo, hi float64, kind string) (float64, int, error) {
	rejected := 0
	for attempt := 1; attempt <= maxResamples; attempt++ {
		v := mu + rng.NormFloat64()*sigma
		if v >= lo && v <= hi {
			return v, rejected, nil
		}
		rejected++
	}
	return 0, rejected, &GenerationError{Kind: kind, Attempts: maxResamples}
}

func uniformBetween(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// AgeSampler generates player ages within squad-wide bounds.
type AgeSampler struct {
	MinAge     float64
	MaxAge     float64
	MaxAcademy float64
}

// DefaultAgeSampler covers the 18-35 population with a 21-year academy cap.
func DefaultAgeSampler() AgeSampler {
	return AgeSampler{MinAge: 18, MaxAge: 35, MaxAcademy: 21}
}

// Regular draws the age of a starter or sub from normal(25, 3.5).
func (s AgeSampler) Regular(rng *rand.Rand) (float64, int, error) {
	return normalWithin(rng, 25.0, 3.5, s.MinAge, s.MaxAge, "regular_age")
}

// Academy draws the age of an academy player from normal(18.5, 1.0).
func (s AgeSampler) Academy(rng *rand.Rand) (float64, int, error) {
	return normalWithin(rng, 18.5, 1.0, s.MinAge, s.MaxAcademy, "academy_age")
}

// ContractSampler generates contract lengths in whole years.
type ContractSampler struct {
	MinYears int
	MaxYears int
}

// DefaultContractSampler allows 1-5 year contracts.
func DefaultContractSampler() ContractSampler {
	return ContractSampler{MinYears: 1, MaxYears: 5}
}

// Regular draws a uniform contract length for a starter or sub.
func (s ContractSampler) Regular(rng *rand.Rand) int {
	return s.MinYears + rng.Intn(s.MaxYears-s.MinYears+1)
}

// Academy draws a contract length for an academy player. Academy players
// currently share the regular 1-5 bound; a tighter cap is a product call
// that has not been made.
func (s ContractSampler) Academy(rng *rand.Rand) int {
	return s.Regular(rng)
}

// SkillSampler generates tier-dependent skill levels around a team
// strength. Academy skill can never exceed sub skill ranges, and sub skill
// can never exceed starter ranges.
type SkillSampler struct {
	TeamStrength float64
	StrengthSD   float64
}

// Starter draws uniformly from strength +/- 0.5 SD.
func (s SkillSampler) Starter(rng *rand.Rand) float64 {
	return s.window(rng, 0)
}

// Sub draws from the starter window re-centered one SD lower.
func (s SkillSampler) Sub(rng *rand.Rand) float64 {
	return s.window(rng, s.StrengthSD)
}

// Academy draws from the starter window re-centered 1.5 SD lower.
func (s SkillSampler) Academy(rng *rand.Rand) float64 {
	return s.window(rng, 1.5*s.StrengthSD)
}

// window draws uniformly from [center-0.5SD, center+0.5SD] clamped to the
// 0-100 skill scale, where center is the team strength minus shift.
func (s SkillSampler) window(rng *rand.Rand, shift float64) float64 {
	halfWidth := 0.5 * s.StrengthSD
	center := s.TeamStrength - shift

	lower := center - halfWidth
	if lower < 0 {
		lower = 0
	}
	upper := center + halfWidth
	if upper > 100 {
		upper = 100
	}
	return uniformBetween(rng, lower, upper)
}

// Potential draws a potential level gated by age: unlimited upside through
// 24, one SD of headroom in the 24-28 prime, and no further growth from 28.
func Potential(rng *rand.Rand, age, skill, strengthSD float64) float64 {
	switch {
	case age <= 24:
		return uniformBetween(rng, skill, 100)
	case age < 28:
		upper := skill + strengthSD
		if upper > 100 {
			upper = 100
		}
		return uniformBetween(rng, skill, upper)
	default:
		return skill
	}
}

// InjuryProneness draws from normal(0.05, 0.02); negative draws collapse to
// a token 0.01 risk instead of being resampled.
func InjuryProneness(rng *rand.Rand) float64 {
	risk := 0.05 + rng.NormFloat64()*0.02
	if risk < 0 {
		return 0.01
	}
	return risk
}
