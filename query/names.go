package query

import (
	"sort"
	"strings"

	"github.com/arbores/kin/person"
	"github.com/arbores/kin/tree"
)

// NameMatch is the N-query result for one queried name.
type NameMatch struct {
	Name   string           `json:"name"`
	Count  int              `json:"count"`
	People []*person.Person `json:"people,omitempty"`
}

// Names counts and lists persons matching name. A single word matches
// first names; anything longer is a full-name match. Matching is
// case-insensitive. A name nobody carries yields a zero-count match, not
// an error; only anchored queries distinguish "not found".
func Names(t *tree.Tree, name string) NameMatch {
	name = strings.TrimSpace(name)
	match := NameMatch{Name: name}

	fullName := len(strings.Fields(name)) > 1
	needle := strings.ToLower(name)
	for _, p := range t.All() {
		var candidate string
		if fullName {
			candidate = p.FullName()
		} else {
			candidate = p.FirstName
		}
		if strings.ToLower(candidate) == needle {
			match.People = append(match.People, p)
		}
	}
	match.Count = len(match.People)
	return match
}

// DuplicateName is one full name carried by more than one person.
type DuplicateName struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DuplicateNames returns every full name that occurs more than once,
// sorted by name for stable display.
func DuplicateNames(t *tree.Tree) []DuplicateName {
	counts := make(map[string]int)
	for _, p := range t.All() {
		counts[p.FullName()]++
	}

	var dups []DuplicateName
	for name, count := range counts {
		if count > 1 {
			dups = append(dups, DuplicateName{Name: name, Count: count})
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i].Name < dups[j].Name })
	return dups
}

// Census summarizes the whole tree.
type Census struct {
	Total int `json:"total"`
	// ByDecade counts births per decade, sorted by decade label.
	ByDecade []DecadeCount `json:"by_decade"`
}

// DecadeCount is one birth-decade bucket.
type DecadeCount struct {
	Decade string `json:"decade"`
	Count  int    `json:"count"`
}

// Stats computes the census: total people and births per decade.
func Stats(t *tree.Tree) Census {
	counts := make(map[string]int)
	for _, p := range t.All() {
		counts[p.Decade()]++
	}

	c := Census{Total: t.Len()}
	for decade, count := range counts {
		c.ByDecade = append(c.ByDecade, DecadeCount{Decade: decade, Count: count})
	}
	sort.Slice(c.ByDecade, func(i, j int) bool { return c.ByDecade[i].Decade < c.ByDecade[j].Decade })
	return c
}
