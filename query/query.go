// Package query answers the fixed query kinds over a built tree: lineage
// traces (T), death filters (D), name counts (N) and census stats (S).
//
// Every query is a pure function of the tree plus parameters: nothing is
// cached, nothing is mutated, and identical calls return identical
// results. A missing anchor person yields ErrNotFound for the caller to
// report; it is never fatal.
package query

import (
	"strings"

	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/person"
	"github.com/arbores/kin/tree"
)

// Direction selects which way a lineage trace walks.
type Direction int

const (
	Ancestors Direction = iota
	Descendants
)

func (d Direction) String() string {
	if d == Descendants {
		return "descendants"
	}
	return "ancestors"
}

// ParseDirection interprets a menu argument: "a"/"ancestors" or
// "d"/"descendants".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a", "anc", "ancestors":
		return Ancestors, nil
	case "d", "desc", "descendants":
		return Descendants, nil
	default:
		return Ancestors, errors.Wrapf(errors.ErrInvalidInput,
			"unknown direction %q (use a or d)", s)
	}
}

// GenerationRow is one generation of a trace: all persons at the same
// ancestral depth relative to the anchor, in the order their links were
// encountered.
type GenerationRow struct {
	// Depth is the generation distance from the anchor: 1 = parents or
	// children, 2 = grandparents or grandchildren, and so on.
	Depth  int              `json:"depth"`
	People []*person.Person `json:"people"`
}

// Trace returns the anchor's full lineage in the given direction,
// breadth-first by generation. Each person appears at most once, at the
// shallowest depth it is reachable; the visited set also keeps the walk
// finite if malformed data ever smuggled a cycle past the builder.
func Trace(t *tree.Tree, anchorName string, dir Direction) ([]GenerationRow, error) {
	anchor, err := resolveAnchor(t, anchorName)
	if err != nil {
		return nil, err
	}

	visited := map[person.ID]bool{anchor: true}
	frontier := []person.ID{anchor}

	var rows []GenerationRow
	for depth := 1; len(frontier) > 0; depth++ {
		var next []person.ID
		for _, id := range frontier {
			p := t.Get(id)
			if p == nil {
				continue
			}
			for _, linked := range step(p, dir) {
				if !linked.Valid() || visited[linked] {
					continue
				}
				visited[linked] = true
				next = append(next, linked)
			}
		}
		if len(next) == 0 {
			break
		}
		row := GenerationRow{Depth: depth, People: make([]*person.Person, 0, len(next))}
		for _, id := range next {
			row.People = append(row.People, t.Get(id))
		}
		rows = append(rows, row)
		frontier = next
	}
	return rows, nil
}

// step returns the IDs one generation away in the trace direction.
func step(p *person.Person, dir Direction) []person.ID {
	if dir == Descendants {
		return p.ChildIDs
	}
	return p.ParentIDs()
}

// resolveAnchor turns a name into an ID or a reportable not-found error.
func resolveAnchor(t *tree.Tree, name string) (person.ID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return person.None, errors.Wrap(errors.ErrInvalidInput, "no person named")
	}
	id, ok := t.Resolve(name)
	if !ok {
		return person.None, errors.NewNotFoundError("person %q is not in the tree", name)
	}
	return id, nil
}
