package loader

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/arbores/kin/errors"
	"github.com/arbores/kin/logger"
	"github.com/arbores/kin/person"
)

// File names of the demographic statistics inputs, relative to the data
// directory. These are a fixed contract; there is no configuration for
// renaming individual files.
const (
	ratesFile       = "birth_and_marriage_rates.csv"
	firstNamesFile  = "first_names.csv"
	genderProbsFile = "gender_name_probability.csv"
	lifeExpFile     = "life_expectancy.csv"
	lastNamesFile   = "last_names.csv"
	rankProbsFile   = "rank_to_probability.csv"
)

// Weighted is a value with a sampling weight. Weights need not sum to 1.
type Weighted struct {
	Value  string
	Weight float64
}

// Rates holds per-decade demographic rates.
type Rates struct {
	Birth    float64
	Marriage float64
}

// NameKey buckets first names by decade and gender.
type NameKey struct {
	Decade string
	Gender person.Gender
}

// Stats bundles all demographic tables the simulator samples from.
type Stats struct {
	// Rates maps "1950s" -> birth/marriage rates.
	Rates map[string]Rates
	// FirstNames maps (decade, gender) -> weighted first names.
	FirstNames map[NameKey][]Weighted
	// GenderProbs maps decade -> gender -> probability that a sampled
	// first name matches the person's gender.
	GenderProbs map[string]map[person.Gender]float64
	// LifeExpectancy maps decade -> average life expectancy at birth.
	LifeExpectancy map[string]float64
	// LatestDecade is the most recent decade with life-expectancy data,
	// used as a fallback for decades past the table.
	LatestDecade string
	// LastNames maps decade -> rank-weighted surnames, normalized.
	LastNames map[string][]Weighted
}

// LoadStats reads all demographic tables from dir. Any unreadable file is
// an error; malformed rows are skipped with a debug log, matching the
// row-level recovery used everywhere else.
func LoadStats(dir string) (*Stats, error) {
	s := &Stats{
		Rates:          make(map[string]Rates),
		FirstNames:     make(map[NameKey][]Weighted),
		GenderProbs:    make(map[string]map[person.Gender]float64),
		LifeExpectancy: make(map[string]float64),
		LastNames:      make(map[string][]Weighted),
	}

	if err := s.loadRates(filepath.Join(dir, ratesFile)); err != nil {
		return nil, err
	}
	if err := s.loadFirstNames(filepath.Join(dir, firstNamesFile)); err != nil {
		return nil, err
	}
	if err := s.loadGenderProbs(filepath.Join(dir, genderProbsFile)); err != nil {
		return nil, err
	}
	if err := s.loadLifeExpectancy(filepath.Join(dir, lifeExpFile)); err != nil {
		return nil, err
	}
	if err := s.loadLastNames(filepath.Join(dir, lastNamesFile), filepath.Join(dir, rankProbsFile)); err != nil {
		return nil, err
	}

	return s, nil
}

// readTable opens a headered CSV and hands each row to fn as a
// column-name -> value map. Rows fn rejects are skipped.
func readTable(path string, fn func(row map[string]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "cannot open stats file %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return errors.Wrapf(err, "cannot read header of %s", path)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	line := 1
	for {
		line++
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			logger.Debugw("skipping unreadable stats row", "file", path, "row", line, "error", err)
			continue
		}
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				fields[name] = strings.TrimSpace(row[i])
			}
		}
		if err := fn(fields); err != nil {
			logger.Debugw("skipping malformed stats row", "file", path, "row", line, "error", err)
		}
	}
}

func (s *Stats) loadRates(path string) error {
	return readTable(path, func(row map[string]string) error {
		decade := row["decade"]
		birth, err := strconv.ParseFloat(row["birth_rate"], 64)
		if err != nil {
			return errors.NewParseError("bad birth_rate %q", row["birth_rate"])
		}
		marriage, err := strconv.ParseFloat(row["marriage_rate"], 64)
		if err != nil {
			return errors.NewParseError("bad marriage_rate %q", row["marriage_rate"])
		}
		s.Rates[decade] = Rates{Birth: birth, Marriage: marriage}
		return nil
	})
}

func (s *Stats) loadFirstNames(path string) error {
	return readTable(path, func(row map[string]string) error {
		freq, err := strconv.ParseFloat(row["frequency"], 64)
		if err != nil {
			return errors.NewParseError("bad frequency %q", row["frequency"])
		}
		gender := person.ParseGender(row["gender"])
		if gender == person.GenderUnknown {
			return errors.NewParseError("bad gender %q", row["gender"])
		}
		key := NameKey{Decade: row["decade"], Gender: gender}
		s.FirstNames[key] = append(s.FirstNames[key], Weighted{Value: row["name"], Weight: freq})
		return nil
	})
}

func (s *Stats) loadGenderProbs(path string) error {
	return readTable(path, func(row map[string]string) error {
		prob, err := strconv.ParseFloat(row["probability"], 64)
		if err != nil {
			return errors.NewParseError("bad probability %q", row["probability"])
		}
		gender := person.ParseGender(row["gender"])
		if gender == person.GenderUnknown {
			return errors.NewParseError("bad gender %q", row["gender"])
		}
		decade := row["decade"]
		if s.GenderProbs[decade] == nil {
			s.GenderProbs[decade] = make(map[person.Gender]float64)
		}
		s.GenderProbs[decade][gender] = prob
		return nil
	})
}

// loadLifeExpectancy averages yearly values into decade buckets.
func (s *Stats) loadLifeExpectancy(path string) error {
	buckets := make(map[string][]float64)
	err := readTable(path, func(row map[string]string) error {
		year, err := strconv.Atoi(row["Year"])
		if err != nil {
			return errors.NewParseError("bad Year %q", row["Year"])
		}
		val, err := strconv.ParseFloat(row["Period life expectancy at birth"], 64)
		if err != nil {
			return errors.NewParseError("bad life expectancy %q", row["Period life expectancy at birth"])
		}
		decade := person.DecadeOf(year)
		buckets[decade] = append(buckets[decade], val)
		return nil
	})
	if err != nil {
		return err
	}

	decades := make([]string, 0, len(buckets))
	for decade, vals := range buckets {
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		s.LifeExpectancy[decade] = sum / float64(len(vals))
		decades = append(decades, decade)
	}
	sort.Strings(decades)
	if len(decades) > 0 {
		s.LatestDecade = decades[len(decades)-1]
	}
	return nil
}

// loadLastNames joins the ranked surname table with the rank-probability
// row and normalizes weights per decade.
func (s *Stats) loadLastNames(lastPath, rankPath string) error {
	probs, err := readRankProbabilities(rankPath)
	if err != nil {
		return err
	}

	err = readTable(lastPath, func(row map[string]string) error {
		rank, err := strconv.Atoi(row["Rank"])
		if err != nil {
			return errors.NewParseError("bad Rank %q", row["Rank"])
		}
		if rank < 1 || rank > len(probs) {
			return errors.NewParseError("rank %d outside probability table (1..%d)", rank, len(probs))
		}
		decade := row["Decade"]
		s.LastNames[decade] = append(s.LastNames[decade], Weighted{
			Value:  row["LastName"],
			Weight: probs[rank-1],
		})
		return nil
	})
	if err != nil {
		return err
	}

	for decade, items := range s.LastNames {
		total := 0.0
		for _, it := range items {
			total += it.Weight
		}
		if total <= 0 {
			continue
		}
		normalized := make([]Weighted, len(items))
		for i, it := range items {
			normalized[i] = Weighted{Value: it.Value, Weight: it.Weight / total}
		}
		s.LastNames[decade] = normalized
	}
	return nil
}

// readRankProbabilities reads the single-line rank -> probability file.
func readRankProbabilities(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read rank probabilities %s", path)
	}
	line := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])

	var probs []float64
	for _, field := range strings.Split(line, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.NewParseError("bad rank probability %q in %s", field, path)
		}
		probs = append(probs, p)
	}
	if len(probs) == 0 {
		return nil, errors.NewParseError("no rank probabilities in %s", path)
	}
	return probs, nil
}
