package blastHits

import (
	"fmt"
	"strings"
)

const monthAbbreviation = 3

var MonthNames = []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

var monthToNumber = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

type Assay int

const (
	AssayA Assay = iota
	AssayF
	AssaySingleCopy
)

var Assays = []Assay{AssayA, AssayF, AssaySingleCopy}

func (a Assay) String() string {
	switch a {
	case AssayA:
		return "ChlA"
	case AssayF:
		return "ChlF"
	case AssaySingleCopy:
		return "singleCopy"
	}
	return fmt.Sprintf("Assay(%d)", int(a))
}

// ParseAssay accepts the assay names used in etc/assay.txt and on the command line
func ParseAssay(s string) (Assay, error) {
	switch strings.ToLower(s) {
	case "a", "chla":
		return AssayA, nil
	case "f", "chlf":
		return AssayF, nil
	case "s", "singlecopy":
		return AssaySingleCopy, nil
	}
	return 0, fmt.Errorf("unknown assay %q", s)
}

// DefaultAssayDirs are the sub directory names of the input root
var DefaultAssayDirs = map[Assay]string{
	AssayA:          "ChlA",
	AssayF:          "ChlF",
	AssaySingleCopy: "singleCopy",
}

type Sample struct {
	Assay Assay
	Month int
	Year  int
	Path  string
}

// ParseSampleName reads month and year marker from a name like "dec3_chlf.txt"
func ParseSampleName(name string) (month, year int, err error) {
	if len(name) <= monthAbbreviation {
		return 0, 0, &SampleNameError{Name: name, Err: fmt.Errorf("shorter than %d characters", monthAbbreviation+1)}
	}
	var abbrev = strings.ToLower(name[:monthAbbreviation])
	month, ok := monthToNumber[abbrev]
	if !ok {
		return 0, 0, &UnknownMonthError{Name: name, Abbrev: abbrev}
	}
	var c = name[monthAbbreviation]
	if c < '0' || c > '9' {
		return 0, 0, &SampleNameError{Name: name, Err: fmt.Errorf("year marker %q is not a digit", c)}
	}
	return month, int(c - '0'), nil
}
