package gen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbores/kin/loader"
	"github.com/arbores/kin/person"
)

// testStats builds demographic tables in memory: rich data for the
// founders' decade, nothing for later decades so growth terminates on
// its own.
func testStats() *loader.Stats {
	return &loader.Stats{
		Rates: map[string]loader.Rates{
			"1950s": {Birth: 2.5, Marriage: 1.0},
		},
		FirstNames: map[loader.NameKey][]loader.Weighted{
			{Decade: "1950s", Gender: person.GenderMale}:   {{Value: "James", Weight: 0.6}, {Value: "John", Weight: 0.4}},
			{Decade: "1950s", Gender: person.GenderFemale}: {{Value: "Mary", Weight: 1.0}},
		},
		GenderProbs: map[string]map[person.Gender]float64{
			"1950s": {person.GenderMale: 0.95, person.GenderFemale: 0.95},
		},
		LifeExpectancy: map[string]float64{"1950s": 70.0},
		LatestDecade:   "1950s",
		LastNames: map[string][]loader.Weighted{
			"1950s": {{Value: "Smith", Weight: 0.6}, {Value: "Jones", Weight: 0.4}},
		},
	}
}

func TestCreatePersonSamplesFromTables(t *testing.T) {
	f := NewFactory(testStats(), 42)

	p := f.CreatePerson(1950, nil)
	assert.Contains(t, []string{"James", "John", "Mary"}, p.FirstName)
	assert.Contains(t, []string{"Smith", "Jones"}, p.LastName)
	assert.Equal(t, 1950, p.YearBorn)
	assert.GreaterOrEqual(t, p.YearDied, p.YearBorn)
}

func TestCreatePersonFounderSurnames(t *testing.T) {
	f := NewFactory(testStats(), 42)
	for i := 0; i < 20; i++ {
		p := f.CreatePerson(1975, []string{"Adams", "Baker"})
		assert.Contains(t, []string{"Adams", "Baker"}, p.LastName)
	}
}

func TestCreatePersonDeathNeverBeforeBirth(t *testing.T) {
	stats := testStats()
	stats.LifeExpectancy["1950s"] = 1.0 // jitter can go 10 years negative
	f := NewFactory(stats, 7)

	for i := 0; i < 200; i++ {
		p := f.CreatePerson(1950, nil)
		assert.GreaterOrEqual(t, p.YearDied, p.YearBorn)
	}
}

func TestCreatePersonUnknownDecadeFallbacks(t *testing.T) {
	f := NewFactory(&loader.Stats{
		Rates:          map[string]loader.Rates{},
		FirstNames:     map[loader.NameKey][]loader.Weighted{},
		GenderProbs:    map[string]map[person.Gender]float64{},
		LifeExpectancy: map[string]float64{},
		LastNames:      map[string][]loader.Weighted{},
	}, 3)

	p := f.CreatePerson(1950, nil)
	assert.Equal(t, "Alex", p.FirstName)
	assert.Equal(t, "Smith", p.LastName)
	assert.GreaterOrEqual(t, p.YearDied, 1950)
}

func TestFactoryDeterministic(t *testing.T) {
	a := NewFactory(testStats(), 42)
	b := NewFactory(testStats(), 42)

	for i := 0; i < 50; i++ {
		pa := a.CreatePerson(1950, nil)
		pb := b.CreatePerson(1950, nil)
		assert.Equal(t, pa, pb)
	}
}

func TestNewFactoryZeroSeedResolved(t *testing.T) {
	f := NewFactory(testStats(), 0)
	assert.NotZero(t, f.Seed, "zero seed is replaced so the run is reproducible afterwards")
}

func growOpts() Options {
	return Options{FounderYear: 1950, MaxYear: 2120}
}

func TestGrowDeterministic(t *testing.T) {
	a := Grow(NewFactory(testStats(), 42), growOpts())
	b := Grow(NewFactory(testStats(), 42), growOpts())

	require.Equal(t, a.Tree.Len(), b.Tree.Len())
	for i, pa := range a.Tree.All() {
		pb := b.Tree.All()[i]
		assert.Equal(t, pa.FullName(), pb.FullName())
		assert.Equal(t, pa.YearBorn, pb.YearBorn)
		assert.Equal(t, pa.YearDied, pb.YearDied)
	}
	assert.NotEqual(t, a.RunID, b.RunID, "run IDs are unique per run")
	assert.Equal(t, int64(42), a.Seed)
}

func TestGrowFoundersMarriedWithChildren(t *testing.T) {
	r := Grow(NewFactory(testStats(), 42), growOpts())

	f1 := r.Tree.Get(r.Founders[0])
	f2 := r.Tree.Get(r.Founders[1])
	assert.Equal(t, f2.ID, f1.SpouseID)
	assert.Equal(t, f1.ID, f2.SpouseID)

	// marriage rate 1.0 and birth rate 2.5 guarantee offspring
	assert.NotEmpty(t, f1.ChildIDs)
	assert.Equal(t, f1.ChildIDs, f2.ChildIDs, "children attach to both partners")
}

func TestGrowSpouseSymmetry(t *testing.T) {
	r := Grow(NewFactory(testStats(), 11), growOpts())

	for _, p := range r.Tree.All() {
		if !p.SpouseID.Valid() {
			continue
		}
		spouse := r.Tree.Get(p.SpouseID)
		require.NotNil(t, spouse)
		assert.Equal(t, p.ID, spouse.SpouseID, "%s's spouse must point back", p.FullName())
	}
}

func TestGrowParentChildLinksAgree(t *testing.T) {
	r := Grow(NewFactory(testStats(), 11), growOpts())

	for _, p := range r.Tree.All() {
		for _, parentID := range p.ParentIDs() {
			parent := r.Tree.Get(parentID)
			require.NotNil(t, parent)
			assert.Contains(t, parent.ChildIDs, p.ID)
		}
		assert.False(t, r.Tree.IsAncestorOf(p.ID, p.ID), "%s cannot be its own ancestor", p.FullName())
	}
}

func TestGrowRespectsMaxYear(t *testing.T) {
	opts := Options{FounderYear: 1950, MaxYear: 1980}
	r := Grow(NewFactory(testStats(), 42), opts)

	for _, p := range r.Tree.All() {
		assert.LessOrEqual(t, p.YearBorn, 1980, "%s born past max year", p.FullName())
	}
}

func TestExportCSVReloadable(t *testing.T) {
	r := Grow(NewFactory(testStats(), 42), growOpts())
	path := filepath.Join(t.TempDir(), "people.csv")

	require.NoError(t, ExportCSV(r, path))

	records, rowErrs, err := loader.ReadPeople(path)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	assert.Len(t, records, r.Tree.Len())
}
