// Package gen grows simulated family trees from demographic statistics:
// per-decade birth and marriage rates, name frequency tables and life
// expectancy. The same seed always grows the same tree.
package gen

import (
	"math"
	"math/rand"
	"time"

	"github.com/arbores/kin/loader"
	"github.com/arbores/kin/person"
)

// Fallback names for decades missing from the tables.
const (
	fallbackFirstName = "Alex"
	fallbackLastName  = "Smith"
	fallbackLifeExp   = 75.0
)

// deathJitterYears is the spread around expected life expectancy.
const deathJitterYears = 10.0

// Factory samples persons from the demographic tables.
type Factory struct {
	stats *loader.Stats
	rng   *rand.Rand

	// Seed actually used (resolved from the clock when 0 was asked for).
	Seed int64
}

// NewFactory creates a factory over stats. A zero seed is replaced by
// the clock so casual runs differ; pass a fixed seed for reproducible
// trees.
func NewFactory(stats *loader.Stats, seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{
		stats: stats,
		rng:   rand.New(rand.NewSource(seed)),
		Seed:  seed,
	}
}

// weightedPick samples one value; weights need not sum to 1. A
// non-positive total degrades to a uniform pick.
func (f *Factory) weightedPick(items []loader.Weighted) string {
	total := 0.0
	for _, it := range items {
		total += it.Weight
	}
	if total <= 0 {
		return items[f.rng.Intn(len(items))].Value
	}

	r := f.rng.Float64() * total
	acc := 0.0
	for _, it := range items {
		acc += it.Weight
		if acc >= r {
			return it.Value
		}
	}
	return items[len(items)-1].Value
}

// sampleGender is a uniform coin flip; the gender probability table
// skews name choice, not gender itself.
func (f *Factory) sampleGender() person.Gender {
	if f.rng.Intn(2) == 0 {
		return person.GenderMale
	}
	return person.GenderFemale
}

// sampleFirstName rolls against the decade's gender-match probability:
// usually the name comes from the person's own gender list, occasionally
// from the opposite one. Missing buckets fall through to the other list,
// then to a fixed fallback.
func (f *Factory) sampleFirstName(decade string, gender person.Gender) string {
	other := person.GenderFemale
	if gender == person.GenderFemale {
		other = person.GenderMale
	}

	pMatch := 1.0
	if probs, ok := f.stats.GenderProbs[decade]; ok {
		if p, ok := probs[gender]; ok {
			pMatch = p
		}
	}

	pick := gender
	if f.rng.Float64() > pMatch {
		pick = other
	}

	if names := f.stats.FirstNames[loader.NameKey{Decade: decade, Gender: pick}]; len(names) > 0 {
		return f.weightedPick(names)
	}
	if names := f.stats.FirstNames[loader.NameKey{Decade: decade, Gender: other}]; len(names) > 0 {
		return f.weightedPick(names)
	}
	return fallbackFirstName
}

// sampleLastName picks a rank-weighted surname for the decade, any
// decade as fallback, then the fixed fallback.
func (f *Factory) sampleLastName(decade string) string {
	if names := f.stats.LastNames[decade]; len(names) > 0 {
		return f.weightedPick(names)
	}
	for _, names := range f.stats.LastNames {
		if len(names) > 0 {
			return f.weightedPick(names)
		}
	}
	return fallbackLastName
}

// lifeExpectancy returns the decade's average, the latest known decade's
// as fallback, then a fixed default.
func (f *Factory) lifeExpectancy(decade string) float64 {
	if exp, ok := f.stats.LifeExpectancy[decade]; ok {
		return exp
	}
	if exp, ok := f.stats.LifeExpectancy[f.stats.LatestDecade]; ok {
		return exp
	}
	return fallbackLifeExp
}

// CreatePerson samples a new person born in yearBorn. The death year is
// expected life expectancy plus jitter, never before birth. When
// surnames is non-empty the surname is drawn from it (founder lineage)
// instead of the decade table.
func (f *Factory) CreatePerson(yearBorn int, surnames []string) *person.Person {
	decade := person.DecadeOf(yearBorn)

	gender := f.sampleGender()
	firstName := f.sampleFirstName(decade, gender)

	var lastName string
	if len(surnames) > 0 {
		lastName = surnames[f.rng.Intn(len(surnames))]
	} else {
		lastName = f.sampleLastName(decade)
	}

	expected := float64(yearBorn) + f.lifeExpectancy(decade)
	jitter := (f.rng.Float64()*2 - 1) * deathJitterYears
	yearDied := int(math.Round(expected + jitter))
	if yearDied < yearBorn {
		yearDied = yearBorn
	}

	return &person.Person{
		FirstName: firstName,
		LastName:  lastName,
		Gender:    gender,
		YearBorn:  yearBorn,
		YearDied:  yearDied,
	}
}
