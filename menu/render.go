package menu

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arbores/kin/person"
	"github.com/arbores/kin/query"
)

// RenderTrace prints a lineage one generation per block.
func RenderTrace(w io.Writer, anchor string, dir query.Direction, rows []query.GenerationRow) {
	if len(rows) == 0 {
		fmt.Fprintf(w, "%s has no known %s\n", anchor, dir)
		return
	}

	fmt.Fprintf(w, "%s of %s:\n", pterm.LightCyan(capitalize(dir.String())), anchor)
	for _, row := range rows {
		fmt.Fprintf(w, "  %s\n", pterm.Gray(fmt.Sprintf("generation %d", row.Depth)))
		for _, p := range row.People {
			fmt.Fprintf(w, "    %s %s\n", p.FullName(), pterm.Gray(p.Lifespan()))
		}
	}
}

// RenderDeceased prints the filtered people with a one-line summary.
func RenderDeceased(w io.Writer, f query.DeathFilter, people []*person.Person) {
	label := "deceased"
	switch {
	case f.Alive:
		label = "alive"
	case f.FromYear > 0 || f.ToYear > 0:
		label = fmt.Sprintf("died %s", rangeLabel(f.FromYear, f.ToYear))
	}

	if len(people) == 0 {
		fmt.Fprintf(w, "nobody %s\n", label)
		return
	}
	fmt.Fprintf(w, "%s %s:\n", pterm.LightCyan(fmt.Sprintf("%d", len(people))), label)
	for _, p := range people {
		fmt.Fprintf(w, "  %s %s\n", p.FullName(), pterm.Gray(p.Lifespan()))
	}
}

// RenderNames prints how many people carry the name, and who they are.
func RenderNames(w io.Writer, match query.NameMatch) {
	fmt.Fprintf(w, "%s named %s\n", pterm.LightCyan(countNoun(match.Count, "person", "people")), match.Name)
	for _, p := range match.People {
		fmt.Fprintf(w, "  %s %s\n", p.FullName(), pterm.Gray(p.Lifespan()))
	}
}

// RenderDuplicates prints the full names more than one person carries.
func RenderDuplicates(w io.Writer, dups []query.DuplicateName) {
	if len(dups) == 0 {
		fmt.Fprintln(w, "every full name is unique")
		return
	}
	fmt.Fprintf(w, "%s\n", pterm.LightCyan("Shared full names:"))
	for _, d := range dups {
		fmt.Fprintf(w, "  %s %s\n", d.Name, pterm.Gray(fmt.Sprintf("x%d", d.Count)))
	}
}

// RenderStats prints the census and any duplicated full names.
func RenderStats(w io.Writer, census query.Census, dups []query.DuplicateName) {
	fmt.Fprintf(w, "%s in the tree\n", pterm.LightCyan(countNoun(census.Total, "person", "people")))
	for _, dc := range census.ByDecade {
		fmt.Fprintf(w, "  %s %s\n", pterm.Gray(dc.Decade), countNoun(dc.Count, "birth", "births"))
	}
	if len(dups) > 0 {
		RenderDuplicates(w, dups)
	}
}

func rangeLabel(from, to int) string {
	switch {
	case from > 0 && to > 0:
		return fmt.Sprintf("%d-%d", from, to)
	case from > 0:
		return fmt.Sprintf("%d or later", from)
	default:
		return fmt.Sprintf("%d or earlier", to)
	}
}

func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
