package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/loader"
	"github.com/arbores/kin/person"
)

// rec builds a loader.Record with the common fields. Row numbers just
// need to be distinct for error messages.
func rec(row int, first, last, gender string, born, died int, father, mother, spouse string) loader.Record {
	return loader.Record{
		Row: row, First: first, Last: last, Gender: gender,
		Born: born, Died: died, Father: father, Mother: mother, Spouse: spouse,
	}
}

// family is a married couple with two children, used by several tests.
func family() []loader.Record {
	return []loader.Record{
		rec(2, "John", "Smith", "m", 1950, 2030, "", "", "Mary Smith"),
		rec(3, "Mary", "Smith", "f", 1952, 0, "", "", "John Smith"),
		rec(4, "Alice", "", "f", 1980, 0, "John Smith", "Mary Smith", ""),
		rec(5, "Bob", "", "m", 1983, 0, "John Smith", "Mary Smith", ""),
	}
}

func TestBuildLinksFamily(t *testing.T) {
	tr, problems := Build(family(), DefaultPolicy())
	assert.Empty(t, problems)
	require.Equal(t, 4, tr.Len())

	john, ok := tr.Resolve("John Smith")
	require.True(t, ok)
	mary, ok := tr.Resolve("Mary Smith")
	require.True(t, ok)
	alice, ok := tr.Resolve("Alice Smith")
	require.True(t, ok, "Alice inherited the Smith surname and is resolvable by it")

	assert.Equal(t, mary, tr.Get(john).SpouseID)
	assert.Equal(t, john, tr.Get(mary).SpouseID)

	pAlice := tr.Get(alice)
	assert.Equal(t, john, pAlice.FatherID)
	assert.Equal(t, mary, pAlice.MotherID)
	assert.Equal(t, "Smith", pAlice.LastName)

	// children recorded on both parents, in encounter order
	bob, _ := tr.Resolve("Bob Smith")
	assert.Equal(t, []person.ID{alice, bob}, tr.Get(john).ChildIDs)
	assert.Equal(t, []person.ID{alice, bob}, tr.Get(mary).ChildIDs)
}

func TestBuildGenderFromColumnThenLookup(t *testing.T) {
	records := []loader.Record{
		rec(2, "Mary", "Smith", "m", 1950, 0, "", "", ""), // column wins over the name cue
		rec(3, "James", "Jones", "", 1950, 0, "", "", ""), // cue lookup
		rec(4, "Zephyr", "Gray", "", 1950, 0, "", "", ""), // unknown name
	}
	tr, problems := Build(records, DefaultPolicy())
	assert.Empty(t, problems)

	assert.Equal(t, person.GenderMale, tr.All()[0].Gender)
	assert.Equal(t, person.GenderMale, tr.All()[1].Gender)
	assert.Equal(t, person.GenderUnknown, tr.All()[2].Gender)
}

func TestBuildDanglingParentReported(t *testing.T) {
	records := []loader.Record{
		rec(2, "Mary", "Smith", "f", 1952, 0, "", "", ""),
		rec(3, "Alice", "Smith", "f", 1980, 0, "Nobody Known", "Mary Smith", ""),
	}
	tr, problems := Build(records, DefaultPolicy())

	require.Len(t, problems, 1)
	assert.True(t, errors.IsDanglingRefError(problems[0]))
	assert.Contains(t, problems[0].Error(), "Nobody Known")

	// the child still exists, with the resolvable parent linked
	alice, ok := tr.Resolve("Alice Smith")
	require.True(t, ok)
	assert.Equal(t, person.None, tr.Get(alice).FatherID)
	assert.True(t, tr.Get(alice).MotherID.Valid())
}

func TestBuildDanglingSpouseReported(t *testing.T) {
	records := []loader.Record{
		rec(2, "John", "Smith", "m", 1950, 0, "", "", "Nobody Known"),
	}
	tr, problems := Build(records, DefaultPolicy())

	require.Len(t, problems, 1)
	assert.True(t, errors.IsDanglingRefError(problems[0]))
	assert.Equal(t, person.None, tr.All()[0].SpouseID)
	assert.Equal(t, 1, tr.Len())
}

func TestBuildConflictingSpouseNotGuessed(t *testing.T) {
	records := []loader.Record{
		rec(2, "John", "Smith", "m", 1950, 0, "", "", "Mary Jones"),
		rec(3, "Mary", "Jones", "f", 1952, 0, "", "", "John Smith"),
		rec(4, "Alice", "Brown", "f", 1955, 0, "", "", "John Smith"),
	}
	tr, problems := Build(records, DefaultPolicy())

	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Error(), "already has spouse")

	john, _ := tr.Resolve("John Smith")
	mary, _ := tr.Resolve("Mary Jones")
	alice, _ := tr.Resolve("Alice Brown")
	assert.Equal(t, mary, tr.Get(john).SpouseID, "first declared pairing wins")
	assert.Equal(t, person.None, tr.Get(alice).SpouseID, "conflict left unlinked, not reassigned")
}

func TestBuildSurnameLineMother(t *testing.T) {
	records := []loader.Record{
		rec(2, "John", "Smith", "m", 1950, 0, "", "", ""),
		rec(3, "Mary", "Jones", "f", 1952, 0, "", "", ""),
		rec(4, "Alice", "", "f", 1980, 0, "John Smith", "Mary Jones", ""),
	}
	tr, problems := Build(records, Policy{SurnameLine: SurnameFromMother})
	assert.Empty(t, problems)

	alice, ok := tr.Resolve("Alice Jones")
	require.True(t, ok)
	assert.Equal(t, "Jones", tr.Get(alice).LastName)
}

func TestBuildSurnameFallsBackToOtherParent(t *testing.T) {
	records := []loader.Record{
		rec(2, "Mary", "Jones", "f", 1952, 0, "", "", ""),
		rec(3, "Alice", "", "f", 1980, 0, "", "Mary Jones", ""),
	}
	tr, problems := Build(records, DefaultPolicy())
	assert.Empty(t, problems)

	alice, ok := tr.Resolve("Alice Jones")
	require.True(t, ok)
	assert.Equal(t, "Jones", tr.Get(alice).LastName)
}

func TestBuildSurnameInheritsAcrossGenerations(t *testing.T) {
	// Grandchild's parent also has an empty surname; inheritance must
	// flow through the fixpoint passes.
	records := []loader.Record{
		rec(2, "John", "Smith", "m", 1920, 0, "", "", ""),
		rec(3, "Bob", "", "m", 1950, 0, "John Smith", "", ""),
		rec(4, "Carl", "", "m", 1980, 0, "Bob Smith", "", ""),
	}
	tr, problems := Build(records, DefaultPolicy())
	assert.Empty(t, problems)

	// Carl's father reference "Bob Smith" only resolves after Bob
	// inherited his surname; the fixpoint loop gets there.
	bob, ok := tr.Resolve("Bob Smith")
	require.True(t, ok)
	carl, ok := tr.Resolve("Carl Smith")
	require.True(t, ok)
	assert.Equal(t, bob, tr.Get(carl).FatherID)
}

func TestBuildUnresolvableSurnameReported(t *testing.T) {
	records := []loader.Record{
		rec(2, "Alice", "", "f", 1980, 0, "", "", ""),
	}
	tr, problems := Build(records, DefaultPolicy())

	require.Len(t, problems, 1)
	assert.Contains(t, problems[0].Error(), "no surname")
	assert.Equal(t, 1, tr.Len(), "person exists regardless")
}

func TestBuildInvalidPolicyFallsBackToDefault(t *testing.T) {
	records := []loader.Record{
		rec(2, "John", "Smith", "m", 1950, 0, "", "", ""),
		rec(3, "Mary", "Jones", "f", 1952, 0, "", "", ""),
		rec(4, "Alice", "", "f", 1980, 0, "John Smith", "Mary Jones", ""),
	}
	tr, _ := Build(records, Policy{SurnameLine: "uncle"})

	_, ok := tr.Resolve("Alice Smith")
	assert.True(t, ok, "invalid policy behaves like the father-line default")
}
