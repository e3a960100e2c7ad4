package gen

import (
	"math"

	"github.com/google/uuid"

	"github.com/arbores/kin/logger"
	"github.com/arbores/kin/person"
	"github.com/arbores/kin/tree"
)

// minSpouseYear floors sampled spouse birth years.
const minSpouseYear = 1900

// Parenting window relative to the elder partner's birth year.
const (
	firstChildOffset = 25
	lastChildOffset  = 45
)

// Options bound the simulation.
type Options struct {
	// FounderYear is the birth year of the two founders.
	FounderYear int
	// MaxYear stops expansion: nobody is born after it.
	MaxYear int
}

// Result is a grown tree plus its provenance: the seed that grew it and
// a run ID to tell exports apart.
type Result struct {
	RunID    string
	Seed     int64
	Tree     *tree.Tree
	Founders [2]person.ID
}

// Grow simulates a family tree: two founders, then breadth-first
// expansion generation by generation. Each person may marry (per the
// decade's marriage rate) and each couple has children (per the birth
// rate) born across the elder partner's parenting window, until the
// expansion passes opts.MaxYear.
func Grow(f *Factory, opts Options) *Result {
	g := &grower{
		f:           f,
		t:           tree.New(),
		opts:        opts,
		hadChildren: make(map[person.ID]bool),
	}

	f1 := g.t.Add(f.CreatePerson(opts.FounderYear, nil))
	f2 := g.t.Add(f.CreatePerson(opts.FounderYear, nil))
	// Founders are married by construction
	if err := g.t.LinkSpouses(f1, f2); err != nil {
		// both freshly created and unmarried; cannot happen
		logger.Errorw("founder marriage failed", "error", err)
	}
	g.founderNames = []string{g.t.Get(f1).LastName, g.t.Get(f2).LastName}

	queue := []person.ID{f1, f2}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		p := g.t.Get(id)
		if p.YearBorn > opts.MaxYear {
			continue
		}
		if !p.SpouseID.Valid() {
			g.maybeMarry(p)
		}
		queue = append(queue, g.haveChildren(p)...)
	}

	result := &Result{
		RunID:    uuid.NewString(),
		Seed:     f.Seed,
		Tree:     g.t,
		Founders: [2]person.ID{f1, f2},
	}
	logger.Infow("tree grown",
		"run_id", result.RunID,
		"seed", result.Seed,
		"people", g.t.Len())
	return result
}

type grower struct {
	f            *Factory
	t            *tree.Tree
	opts         Options
	founderNames []string

	// hadChildren guards against generating children twice for a couple
	// (each partner lands on the queue once).
	hadChildren map[person.ID]bool
}

// maybeMarry rolls the decade's marriage rate and, on success, creates a
// spouse born within ten years (never before minSpouseYear). Spouses
// marry into the tree, so their surname comes from the decade table, not
// the founder lineage.
func (g *grower) maybeMarry(p *person.Person) {
	rates, ok := g.f.stats.Rates[p.Decade()]
	if !ok {
		return
	}
	if g.f.rng.Float64() > rates.Marriage {
		return
	}

	spouseYear := p.YearBorn + g.f.rng.Intn(21) - 10
	if spouseYear < minSpouseYear {
		spouseYear = minSpouseYear
	}

	spouse := g.t.Add(g.f.CreatePerson(spouseYear, nil))
	if err := g.t.LinkSpouses(p.ID, spouse); err != nil {
		logger.Warnw("spouse link failed", "person", p.FullName(), "error", err)
	}
}

// haveChildren creates this person's children, if the couple has not
// had them already. The child count comes from the decade's birth rate
// (±1.5 rounded up), reduced by one for single parents; births spread
// evenly across the elder partner's parenting window.
func (g *grower) haveChildren(p *person.Person) []person.ID {
	rates, ok := g.f.stats.Rates[p.Decade()]
	if !ok {
		return nil
	}
	if g.hadChildren[p.ID] {
		return nil
	}

	minKids := int(math.Ceil(rates.Birth - 1.5))
	maxKids := int(math.Ceil(rates.Birth + 1.5))
	if minKids < 0 {
		minKids = 0
	}
	if maxKids < 0 {
		maxKids = 0
	}

	numChildren := 0
	if maxKids >= minKids {
		numChildren = minKids + g.f.rng.Intn(maxKids-minKids+1)
	}
	if !p.SpouseID.Valid() && numChildren > 0 {
		numChildren--
	}
	if numChildren <= 0 {
		g.hadChildren[p.ID] = true
		return nil
	}

	elderYear := p.YearBorn
	partner := g.t.Get(p.SpouseID)
	if partner != nil {
		if partner.YearBorn < elderYear {
			elderYear = partner.YearBorn
		}
		if g.hadChildren[partner.ID] {
			return nil
		}
	}

	startYear := elderYear + firstChildOffset
	span := lastChildOffset - firstChildOffset

	var children []person.ID
	for i := 0; i < numChildren; i++ {
		childYear := startYear
		if numChildren > 1 {
			childYear = startYear + int(math.Round(float64(span*i)/float64(numChildren-1)))
		}
		if childYear > g.opts.MaxYear {
			continue
		}

		// Direct descendants carry a founder surname
		child := g.t.Add(g.f.CreatePerson(childYear, g.founderNames))
		g.linkChild(child, p, partner)
		children = append(children, child)
	}

	g.hadChildren[p.ID] = true
	if partner != nil {
		g.hadChildren[partner.ID] = true
	}
	return children
}

// linkChild attaches the child to both parents, father/mother slots by
// gender where distinguishable, declaration order otherwise.
func (g *grower) linkChild(child person.ID, a, b *person.Person) {
	father, mother := a, b
	if a.Gender == person.GenderFemale || (b != nil && b.Gender == person.GenderMale) {
		father, mother = b, a
	}

	if father != nil {
		if err := g.t.LinkFather(child, father.ID); err != nil {
			logger.Warnw("father link failed", "child", g.t.Get(child).FullName(), "error", err)
		}
	}
	if mother != nil {
		if err := g.t.LinkMother(child, mother.ID); err != nil {
			logger.Warnw("mother link failed", "child", g.t.Get(child).FullName(), "error", err)
		}
	}
}
