package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbores/kin/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadPeople(t *testing.T) {
	path := writeFile(t, "people.csv", `first,last,gender,born,died,father,mother,spouse
John,Smith,m,1950,2030,,,Mary Smith
Mary,Smith,f,1952,,,,John Smith
Alice,Smith,,1980,,John Smith,Mary Smith,
`)

	records, rowErrs, err := ReadPeople(path)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, records, 3)

	john := records[0]
	assert.Equal(t, "John", john.First)
	assert.Equal(t, "Smith", john.Last)
	assert.Equal(t, 1950, john.Born)
	assert.Equal(t, 2030, john.Died)
	assert.Equal(t, "Mary Smith", john.Spouse)

	mary := records[1]
	assert.Equal(t, 0, mary.Died, "empty died column means alive")

	alice := records[2]
	assert.Equal(t, "John Smith", alice.Father)
	assert.Equal(t, "Mary Smith", alice.Mother)
	assert.Equal(t, 3, alice.Row-1, "row numbers are 1-based CSV lines")
}

func TestReadPeopleColumnOrderIsFree(t *testing.T) {
	path := writeFile(t, "people.csv", `born,first,last,died,gender,spouse,father,mother
1950,John,Smith,,,,,
`)
	records, rowErrs, err := ReadPeople(path)
	require.NoError(t, err)
	assert.Empty(t, rowErrs)
	require.Len(t, records, 1)
	assert.Equal(t, "John", records[0].First)
	assert.Equal(t, 1950, records[0].Born)
}

func TestReadPeopleSkipsMalformedRows(t *testing.T) {
	path := writeFile(t, "people.csv", `first,last,gender,born,died,father,mother,spouse
John,Smith,m,1950,,,,
Broken,Row,m,notayear,,,,
Short,Row
Early,Death,f,1990,1985,,,
Jane,Doe,f,1960,,,,
`)

	records, rowErrs, err := ReadPeople(path)
	require.NoError(t, err)
	require.Len(t, records, 2, "good rows survive bad neighbors")
	assert.Equal(t, "John", records[0].First)
	assert.Equal(t, "Jane", records[1].First)

	require.Len(t, rowErrs, 3)
	for _, rowErr := range rowErrs {
		assert.True(t, errors.IsParseError(rowErr), "row errors carry the parse sentinel: %v", rowErr)
	}
	assert.Contains(t, rowErrs[0].Error(), "notayear")
	assert.Contains(t, rowErrs[2].Error(), "death year")
}

func TestReadPeopleMissingColumn(t *testing.T) {
	path := writeFile(t, "people.csv", `first,last,born
John,Smith,1950
`)
	_, _, err := ReadPeople(path)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
	assert.Contains(t, err.Error(), "missing column")
}

func TestReadPeopleMissingFile(t *testing.T) {
	_, _, err := ReadPeople(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestReadPeopleIsRestartable(t *testing.T) {
	path := writeFile(t, "people.csv", `first,last,gender,born,died,father,mother,spouse
John,Smith,m,1950,,,,
`)
	first, _, err := ReadPeople(path)
	require.NoError(t, err)
	second, _, err := ReadPeople(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
