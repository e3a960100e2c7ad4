package person

import "strings"

// Gender is a cue inferred from the first name (or declared in the source
// data). It only drives relationship-inference heuristics and surname
// policy; it is never validated against anything.
type Gender int

const (
	GenderUnknown Gender = iota
	GenderFemale
	GenderMale
)

func (g Gender) String() string {
	switch g {
	case GenderFemale:
		return "female"
	case GenderMale:
		return "male"
	default:
		return "unknown"
	}
}

// ParseGender interprets a declared gender column value. Empty or
// unrecognized values yield GenderUnknown.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "female", "w", "woman":
		return GenderFemale
	case "m", "male", "man":
		return GenderMale
	default:
		return GenderUnknown
	}
}

// genderByName is the built-in cue table. It covers the names common in
// the demographic data this tool ships with; anything else maps to
// GenderUnknown, which is always a safe answer.
var genderByName = map[string]Gender{
	"james":     GenderMale,
	"john":      GenderMale,
	"robert":    GenderMale,
	"michael":   GenderMale,
	"william":   GenderMale,
	"david":     GenderMale,
	"richard":   GenderMale,
	"thomas":    GenderMale,
	"charles":   GenderMale,
	"joseph":    GenderMale,
	"daniel":    GenderMale,
	"matthew":   GenderMale,
	"mark":      GenderMale,
	"steven":    GenderMale,
	"paul":      GenderMale,
	"kenneth":   GenderMale,
	"george":    GenderMale,
	"edward":    GenderMale,
	"brian":     GenderMale,
	"kevin":     GenderMale,
	"jason":     GenderMale,
	"ethan":     GenderMale,
	"liam":      GenderMale,
	"noah":      GenderMale,
	"oliver":    GenderMale,
	"henry":     GenderMale,
	"mary":      GenderFemale,
	"patricia":  GenderFemale,
	"linda":     GenderFemale,
	"barbara":   GenderFemale,
	"elizabeth": GenderFemale,
	"jennifer":  GenderFemale,
	"maria":     GenderFemale,
	"susan":     GenderFemale,
	"margaret":  GenderFemale,
	"dorothy":   GenderFemale,
	"lisa":      GenderFemale,
	"nancy":     GenderFemale,
	"karen":     GenderFemale,
	"betty":     GenderFemale,
	"helen":     GenderFemale,
	"sandra":    GenderFemale,
	"donna":     GenderFemale,
	"carol":     GenderFemale,
	"ruth":      GenderFemale,
	"sharon":    GenderFemale,
	"emma":      GenderFemale,
	"olivia":    GenderFemale,
	"ava":       GenderFemale,
	"sophia":    GenderFemale,
	"isabella":  GenderFemale,
	"mia":       GenderFemale,
	"charlotte": GenderFemale,
	"amelia":    GenderFemale,
}

// GenderOf maps a first name to a gender cue. Pure lookup; unknown names
// return GenderUnknown.
func GenderOf(firstName string) Gender {
	return genderByName[strings.ToLower(strings.TrimSpace(firstName))]
}
