package gen

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/person"
)

// ExportCSV writes the grown tree in the person-record schema the
// loader reads, so a generated tree can be saved and re-loaded like any
// hand-written one. Relationship columns carry full names, matching the
// loader's reference format.
func ExportCSV(r *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create export file %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"first", "last", "gender", "born", "died", "father", "mother", "spouse"}); err != nil {
		return errors.Wrap(err, "cannot write export header")
	}

	fullName := func(id person.ID) string {
		if p := r.Tree.Get(id); p != nil {
			return p.FullName()
		}
		return ""
	}

	for _, p := range r.Tree.All() {
		died := ""
		if p.Deceased() {
			died = strconv.Itoa(p.YearDied)
		}
		row := []string{
			p.FirstName,
			p.LastName,
			p.Gender.String(),
			strconv.Itoa(p.YearBorn),
			died,
			fullName(p.FatherID),
			fullName(p.MotherID),
			fullName(p.SpouseID),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "cannot write row for %s", p.FullName())
		}
	}

	w.Flush()
	return errors.Wrapf(w.Error(), "flushing export %s", path)
}
