package tree

import (
	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/loader"
	"github.com/arbores/kin/logger"
	"github.com/arbores/kin/person"
)

// SurnameLine selects which parental line children inherit their surname
// from when their own record leaves it empty.
type SurnameLine string

const (
	SurnameFromFather SurnameLine = "father"
	SurnameFromMother SurnameLine = "mother"
)

// Valid reports whether the policy value is one of the known lines.
func (s SurnameLine) Valid() bool {
	return s == SurnameFromFather || s == SurnameFromMother
}

// Policy is the configurable part of relationship construction. The
// source data declares relationships explicitly (father/mother/spouse
// full-name columns), so building is reference resolution rather than
// guessing; the policy only decides surname inheritance.
type Policy struct {
	SurnameLine SurnameLine
}

// DefaultPolicy inherits surnames through the father's line, falling
// back to the mother's when no father is known.
func DefaultPolicy() Policy {
	return Policy{SurnameLine: SurnameFromFather}
}

// Build assembles a fully linked tree from raw records. It never fails:
// dangling references, conflicting links and unresolvable surnames are
// collected as problems (each wrapping the taxonomy sentinel that
// applies) while the rest of the tree is built. The caller decides
// whether problems are worth reporting.
func Build(records []loader.Record, policy Policy) (*Tree, []error) {
	if !policy.SurnameLine.Valid() {
		policy = DefaultPolicy()
	}

	b := &builder{
		tree:   New(),
		policy: policy,
	}

	b.createPeople(records)
	b.linkParentsAndSurnames(records)
	b.linkSpouses(records)

	logger.Debugw("tree built",
		"people", b.tree.Len(),
		"problems", len(b.problems))

	return b.tree, b.problems
}

type builder struct {
	tree     *Tree
	policy   Policy
	problems []error

	// ids maps record index -> assigned arena ID, so later passes can
	// revisit records without re-resolving names.
	ids []person.ID
}

func (b *builder) report(err error) {
	b.problems = append(b.problems, err)
}

// createPeople makes one Person per record. Gender comes from the
// declared column when present, else the name-cue lookup.
func (b *builder) createPeople(records []loader.Record) {
	b.ids = make([]person.ID, len(records))
	for i, rec := range records {
		gender := person.ParseGender(rec.Gender)
		if gender == person.GenderUnknown {
			gender = person.GenderOf(rec.First)
		}
		b.ids[i] = b.tree.Add(&person.Person{
			FirstName: rec.First,
			LastName:  rec.Last,
			Gender:    gender,
			YearBorn:  rec.Born,
			YearDied:  rec.Died,
		})
	}
}

// parentRef is a declared parent reference waiting to be resolved.
type parentRef struct {
	rec  loader.Record
	self person.ID
	name string
	link func(child, parent person.ID) error
}

// linkParentsAndSurnames resolves father/mother references and assigns
// inherited surnames. The two depend on each other: a child with an
// empty surname is only resolvable by name after inheriting it, and a
// reference may name such an inherited full name. So both run in one
// loop until neither makes progress; what is still unresolved then is
// genuinely dangling and gets reported.
func (b *builder) linkParentsAndSurnames(records []loader.Record) {
	var pending []parentRef
	for i, rec := range records {
		if rec.Father != "" {
			pending = append(pending, parentRef{rec: rec, self: b.ids[i], name: rec.Father, link: b.tree.LinkFather})
		}
		if rec.Mother != "" {
			pending = append(pending, parentRef{rec: rec, self: b.ids[i], name: rec.Mother, link: b.tree.LinkMother})
		}
	}

	for {
		progress := false

		remaining := pending[:0]
		for _, ref := range pending {
			parent, ok := b.tree.Resolve(ref.name)
			if !ok {
				remaining = append(remaining, ref)
				continue
			}
			progress = true
			if err := ref.link(ref.self, parent); err != nil {
				b.report(errors.Wrapf(err, "row %d", ref.rec.Row))
			}
		}
		pending = remaining

		if b.assignSurnames() {
			progress = true
		}
		if !progress {
			break
		}
	}

	for _, ref := range pending {
		b.report(errors.NewDanglingRefError("row %d: %s references unknown person %q",
			ref.rec.Row, ref.rec.First, ref.name))
	}
	for _, p := range b.tree.All() {
		if p.LastName == "" {
			b.report(errors.Newf("no surname for %s (born %d): no parent to inherit from",
				p.FirstName, p.YearBorn))
		}
	}
}

// assignSurnames fills empty surnames from linked parents and reports
// whether any assignment happened.
func (b *builder) assignSurnames() bool {
	changed := false
	for _, p := range b.tree.All() {
		if p.LastName != "" {
			continue
		}
		if name := b.surnameFor(p); name != "" {
			p.LastName = name
			b.tree.Reindex(p)
			changed = true
		}
	}
	return changed
}

// surnameFor picks the surname per policy: preferred line first, other
// parent as fallback.
func (b *builder) surnameFor(p *person.Person) string {
	first, second := p.FatherID, p.MotherID
	if b.policy.SurnameLine == SurnameFromMother {
		first, second = second, first
	}
	for _, id := range []person.ID{first, second} {
		if parent := b.tree.Get(id); parent != nil && parent.LastName != "" {
			return parent.LastName
		}
	}
	return ""
}

// linkSpouses resolves declared spouse references. Links are made only
// when the named person exists and both sides are unmarried; anything
// ambiguous is reported and left unlinked, never guessed.
func (b *builder) linkSpouses(records []loader.Record) {
	for i, rec := range records {
		if rec.Spouse == "" {
			continue
		}
		self := b.ids[i]
		spouse, ok := b.tree.Resolve(rec.Spouse)
		if !ok {
			b.report(errors.NewDanglingRefError("row %d: %s references unknown spouse %q",
				rec.Row, rec.First, rec.Spouse))
			continue
		}
		if err := b.tree.LinkSpouses(self, spouse); err != nil {
			b.report(errors.Wrapf(err, "row %d", rec.Row))
		}
	}
}
