package tree

import (
	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/person"
)

// Relationship links are established only through the methods below so
// the invariants hold everywhere: spouse symmetry, at most one spouse,
// no self-links, no ancestor cycles.

// LinkSpouses marries a and b, symmetrically. It fails when either side
// is already married to someone else; remarriage to the same person is a
// no-op.
func (t *Tree) LinkSpouses(a, b person.ID) error {
	pa, pb := t.Get(a), t.Get(b)
	if pa == nil || pb == nil {
		return errors.NewDanglingRefError("spouse link %d-%d: no such person", a, b)
	}
	if a == b {
		return errors.Newf("%s cannot be their own spouse", pa.FullName())
	}
	if pa.SpouseID == b && pb.SpouseID == a {
		return nil
	}
	if pa.SpouseID.Valid() {
		return errors.Newf("%s already has spouse %s", pa.FullName(), t.Get(pa.SpouseID).FullName())
	}
	if pb.SpouseID.Valid() {
		return errors.Newf("%s already has spouse %s", pb.FullName(), t.Get(pb.SpouseID).FullName())
	}
	pa.SpouseID = b
	pb.SpouseID = a
	return nil
}

// parentSlot names which parent link is being set.
type parentSlot int

const (
	slotFather parentSlot = iota
	slotMother
)

func (s parentSlot) String() string {
	if s == slotFather {
		return "father"
	}
	return "mother"
}

// LinkFather sets the child's father and records the child on the
// father's side.
func (t *Tree) LinkFather(child, parent person.ID) error {
	return t.linkParent(child, parent, slotFather)
}

// LinkMother sets the child's mother and records the child on the
// mother's side.
func (t *Tree) LinkMother(child, parent person.ID) error {
	return t.linkParent(child, parent, slotMother)
}

func (t *Tree) linkParent(child, parent person.ID, slot parentSlot) error {
	pc, pp := t.Get(child), t.Get(parent)
	if pc == nil || pp == nil {
		return errors.NewDanglingRefError("%s link %d->%d: no such person", slot, child, parent)
	}
	if child == parent {
		return errors.Newf("%s cannot be their own %s", pc.FullName(), slot)
	}
	// A parent link from child to one of child's own descendants would
	// close a cycle
	if t.IsAncestorOf(child, parent) {
		return errors.Newf("linking %s as %s of %s would create an ancestry cycle",
			pp.FullName(), slot, pc.FullName())
	}

	switch slot {
	case slotFather:
		if pc.FatherID.Valid() && pc.FatherID != parent {
			return errors.Newf("%s already has father %s", pc.FullName(), t.Get(pc.FatherID).FullName())
		}
		pc.FatherID = parent
	case slotMother:
		if pc.MotherID.Valid() && pc.MotherID != parent {
			return errors.Newf("%s already has mother %s", pc.FullName(), t.Get(pc.MotherID).FullName())
		}
		pc.MotherID = parent
	}
	pp.AddChild(child)
	return nil
}
