// Package loader reads kin's CSV inputs: the person-record file that
// trees are built from, and the demographic statistics files that drive
// the simulator.
//
// Loading is restartable: every call re-opens and re-reads the file, and
// nothing is cached. Malformed rows produce per-row parse errors and are
// skipped; only an unreadable file is an error to the caller.
package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arbores/kin/errors"
)

// Record is one raw person row, before any relationship resolution.
// Father, Mother and Spouse are full-name references into the same file;
// empty means "not declared". Last may be empty for children, in which
// case the tree builder assigns it by the surname-line policy.
type Record struct {
	Row    int // 1-based CSV line, for error reporting
	First  string
	Last   string
	Gender string
	Born   int
	Died   int // 0 = alive
	Father string
	Mother string
	Spouse string
}

// peopleColumns is the fixed header contract of the person-record file.
// Column order is free; the header row names the columns.
var peopleColumns = []string{"first", "last", "gender", "born", "died", "father", "mother", "spouse"}

// ReadPeople parses a person-record CSV. It returns the well-formed
// records plus one error per skipped row; the error return is non-nil
// only when the file itself cannot be read.
func ReadPeople(path string) ([]Record, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot open people file %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column-count checks are ours, per row
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "cannot read header of %s", path)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, nil, err
	}

	var (
		records []Record
		rowErrs []error
		line    = 1 // header consumed
	)
	for {
		line++
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrs = append(rowErrs, errors.NewParseError("row %d: %v", line, err))
			continue
		}
		rec, err := parseRow(line, row, cols)
		if err != nil {
			rowErrs = append(rowErrs, err)
			continue
		}
		records = append(records, rec)
	}

	return records, rowErrs, nil
}

// indexColumns maps the header contract onto actual column positions.
func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range peopleColumns {
		if _, ok := cols[required]; !ok {
			return nil, errors.NewParseError("header is missing column %q (need %s)",
				required, strings.Join(peopleColumns, ","))
		}
	}
	return cols, nil
}

func parseRow(line int, row []string, cols map[string]int) (Record, error) {
	field := func(name string) (string, bool) {
		i := cols[name]
		if i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	// Wrong column count: every named column must be addressable
	for _, name := range peopleColumns {
		if _, ok := field(name); !ok {
			return Record{}, errors.NewParseError("row %d: expected %d columns, got %d",
				line, len(cols), len(row))
		}
	}

	first, _ := field("first")
	last, _ := field("last")
	if first == "" {
		return Record{}, errors.NewParseError("row %d: empty first name", line)
	}

	bornStr, _ := field("born")
	born, err := strconv.Atoi(bornStr)
	if err != nil {
		return Record{}, errors.NewParseError("row %d: unparseable birth year %q", line, bornStr)
	}

	died := 0
	if diedStr, _ := field("died"); diedStr != "" {
		died, err = strconv.Atoi(diedStr)
		if err != nil {
			return Record{}, errors.NewParseError("row %d: unparseable death year %q", line, diedStr)
		}
		if died < born {
			return Record{}, errors.NewParseError("row %d: death year %d before birth year %d", line, died, born)
		}
	}

	gender, _ := field("gender")
	father, _ := field("father")
	mother, _ := field("mother")
	spouse, _ := field("spouse")

	return Record{
		Row:    line,
		First:  first,
		Last:   last,
		Gender: gender,
		Born:   born,
		Died:   died,
		Father: father,
		Mother: mother,
		Spouse: spouse,
	}, nil
}
