package query

import (
	"strconv"
	"strings"

	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/person"
	"github.com/arbores/kin/tree"
)

// DeathFilter selects persons by a death-related predicate.
type DeathFilter struct {
	// Alive selects the living instead of the deceased.
	Alive bool
	// FromYear/ToYear bound the death year, inclusive. Zero means
	// unbounded on that side. Ignored when Alive is set.
	FromYear int
	ToYear   int
}

// ParseDeathFilter interprets a menu argument: empty or "dead" for all
// deceased, "alive" for the living, "1990-2010" (either side optional)
// for a death-year range.
func ParseDeathFilter(arg string) (DeathFilter, error) {
	arg = strings.ToLower(strings.TrimSpace(arg))
	switch arg {
	case "", "dead", "deceased":
		return DeathFilter{}, nil
	case "alive", "living":
		return DeathFilter{Alive: true}, nil
	}

	from, to, ok := strings.Cut(arg, "-")
	if !ok {
		return DeathFilter{}, errors.Wrapf(errors.ErrInvalidInput,
			"unknown death filter %q (use alive, dead, or a year range like 1990-2010)", arg)
	}
	f := DeathFilter{}
	var err error
	if strings.TrimSpace(from) != "" {
		if f.FromYear, err = strconv.Atoi(strings.TrimSpace(from)); err != nil {
			return DeathFilter{}, errors.Wrapf(errors.ErrInvalidInput, "bad year %q", from)
		}
	}
	if strings.TrimSpace(to) != "" {
		if f.ToYear, err = strconv.Atoi(strings.TrimSpace(to)); err != nil {
			return DeathFilter{}, errors.Wrapf(errors.ErrInvalidInput, "bad year %q", to)
		}
	}
	if f.FromYear != 0 && f.ToYear != 0 && f.ToYear < f.FromYear {
		return DeathFilter{}, errors.Wrapf(errors.ErrInvalidInput,
			"empty year range %d-%d", f.FromYear, f.ToYear)
	}
	return f, nil
}

// matches applies the predicate to one person.
func (f DeathFilter) matches(p *person.Person) bool {
	if f.Alive {
		return p.Alive()
	}
	if p.Alive() {
		return false
	}
	if f.FromYear != 0 && p.YearDied < f.FromYear {
		return false
	}
	if f.ToYear != 0 && p.YearDied > f.ToYear {
		return false
	}
	return true
}

// Deceased returns all persons matching the death filter, in insertion
// order. An empty result is a valid answer, not an error.
func Deceased(t *tree.Tree, f DeathFilter) []*person.Person {
	var matched []*person.Person
	for _, p := range t.All() {
		if f.matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}
