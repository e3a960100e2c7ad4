// Package tree holds the family tree: an arena of Person records plus
// the builder that assembles relationship links from raw CSV records.
package tree

import (
	"strings"

	"github.com/arbores/kin/person"
)

// Tree is an arena of Person records. IDs are 1-based indexes assigned
// at insertion; relationships reference IDs, never pointers, so the tree
// is the single owner of every record.
type Tree struct {
	people []*person.Person
	byName map[string][]person.ID
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{
		byName: make(map[string][]person.ID),
	}
}

// Add inserts a person, assigns its ID and returns it. The name index is
// only updated for persons that already have a surname; call Reindex
// after late surname assignment.
func (t *Tree) Add(p *person.Person) person.ID {
	id := person.ID(len(t.people) + 1)
	p.ID = id
	t.people = append(t.people, p)
	if p.LastName != "" {
		t.index(p)
	}
	return id
}

// Get returns the person for id, or nil for an invalid ID.
func (t *Tree) Get(id person.ID) *person.Person {
	if !id.Valid() || int(id) > len(t.people) {
		return nil
	}
	return t.people[id-1]
}

// Len returns the number of people in the tree.
func (t *Tree) Len() int { return len(t.people) }

// All returns every person in insertion order. The slice is shared;
// callers must treat it as read-only.
func (t *Tree) All() []*person.Person { return t.people }

// Resolve finds a person by full name, case-insensitively. The second
// return is false when the name is unknown. Ambiguous names (duplicates)
// resolve to the earliest inserted person, which keeps resolution
// deterministic.
func (t *Tree) Resolve(fullName string) (person.ID, bool) {
	ids := t.byName[nameKey(fullName)]
	if len(ids) == 0 {
		return person.None, false
	}
	return ids[0], true
}

// ResolveAll returns every person sharing a full name.
func (t *Tree) ResolveAll(fullName string) []person.ID {
	return t.byName[nameKey(fullName)]
}

// Reindex adds p to the name index after its surname was assigned.
func (t *Tree) Reindex(p *person.Person) {
	t.index(p)
}

// IsAncestorOf walks ancestor links from descendant and reports whether
// ancestor is reached. Used to reject cycle-creating parent links. The
// visited set keeps the walk finite even over malformed input.
func (t *Tree) IsAncestorOf(ancestor, descendant person.ID) bool {
	visited := make(map[person.ID]bool)
	stack := []person.ID{descendant}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		p := t.Get(id)
		if p == nil {
			continue
		}
		for _, parent := range p.ParentIDs() {
			if parent == ancestor {
				return true
			}
			stack = append(stack, parent)
		}
	}
	return false
}

func (t *Tree) index(p *person.Person) {
	key := nameKey(p.FullName())
	for _, existing := range t.byName[key] {
		if existing == p.ID {
			return
		}
	}
	t.byName[key] = append(t.byName[key], p.ID)
}

func nameKey(fullName string) string {
	return strings.ToLower(strings.Join(strings.Fields(fullName), " "))
}
