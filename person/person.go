// Package person defines the Person entity and the identity rules used
// across the tree: arena IDs, gender cues, and decade bucketing.
package person

import "fmt"

// ID is a stable arena index into a tree. IDs are assigned sequentially
// starting at 1; None marks an absent relationship.
type ID int

// None is the zero ID, meaning "no person".
const None ID = 0

// Valid reports whether the ID refers to a person.
func (id ID) Valid() bool { return id > None }

// Person is a single record in the family tree. Relationship links are
// stored as arena IDs rather than pointers so the tree owns all records
// and links can never dangle silently.
//
// A Person is created once during tree construction and is read-only
// afterwards; queries never mutate it.
type Person struct {
	ID        ID     `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    Gender `json:"gender"`
	YearBorn  int    `json:"year_born"`
	YearDied  int    `json:"year_died,omitempty"` // 0 = alive

	SpouseID ID `json:"spouse_id,omitempty"`
	FatherID ID `json:"father_id,omitempty"`
	MotherID ID `json:"mother_id,omitempty"`

	// ChildIDs keeps the order children were encountered during build.
	ChildIDs []ID `json:"child_ids,omitempty"`
}

// FullName returns "First Last".
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Alive reports whether the person has no recorded death year.
func (p *Person) Alive() bool { return p.YearDied == 0 }

// Deceased reports whether the person has a recorded death year.
func (p *Person) Deceased() bool { return p.YearDied != 0 }

// Decade returns the birth decade in "1950s" form.
func (p *Person) Decade() string { return DecadeOf(p.YearBorn) }

// ParentIDs returns the known parents, father first. Absent parents are
// omitted, so the result has 0, 1 or 2 entries.
func (p *Person) ParentIDs() []ID {
	ids := make([]ID, 0, 2)
	if p.FatherID.Valid() {
		ids = append(ids, p.FatherID)
	}
	if p.MotherID.Valid() {
		ids = append(ids, p.MotherID)
	}
	return ids
}

// AddChild appends a child link, preserving encounter order. Duplicate
// links are ignored.
func (p *Person) AddChild(child ID) {
	for _, existing := range p.ChildIDs {
		if existing == child {
			return
		}
	}
	p.ChildIDs = append(p.ChildIDs, child)
}

// Lifespan returns "1950–2031" or "1950–" for the living.
func (p *Person) Lifespan() string {
	if p.Alive() {
		return fmt.Sprintf("%d–", p.YearBorn)
	}
	return fmt.Sprintf("%d–%d", p.YearBorn, p.YearDied)
}

// DecadeOf buckets a year into its decade label: 1957 -> "1950s".
func DecadeOf(year int) string {
	return fmt.Sprintf("%ds", (year/10)*10)
}
