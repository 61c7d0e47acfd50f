package blastHits

import (
	"strconv"
	"strings"
)

// Field is a named column of a hit line
type Field struct {
	Name  string
	Index int
}

// Layout describes the text layout of one BLAST description line.
//
// Hit lines look like
//
//	  NB501373:80:HXXXXXX:1:11101:10000:1000 1:N:0:ATCACG  50.1    4e-06
//
// and are split on an exact double space, so runs of spaces produce empty fields.
type Layout struct {
	Delimiter   string
	Marker      string // instrument run token carried by every read name
	TitleMarker string // alignment title lines start with '>' and are not hits
	QueryPrefix string
	HeaderLines int
	// PairPrefix is the length of the read name shared by both mates of a fragment
	PairPrefix int

	SeqName Field
	Score   Field
	EValue  Field
}

var DefaultLayout = Layout{
	Delimiter:   "  ",
	Marker:      "NB501373",
	TitleMarker: ">",
	QueryPrefix: "Query= ",
	HeaderLines: 15,
	PairPrefix:  43,

	SeqName: Field{Name: "SeqName", Index: 1},
	Score:   Field{Name: "Score", Index: 2},
	EValue:  Field{Name: "EValue", Index: 4},
}

type Hit struct {
	SeqName string
	Score   float64
	EValue  float64
}

// IsHit reports whether line is a hit line: it carries the marker and is not a title line.
func (layout Layout) IsHit(line string) bool {
	return strings.Contains(line, layout.Marker) && !strings.Contains(line, layout.TitleMarker)
}

// Query returns the query name if line opens a query block.
func (layout Layout) Query(line string) (string, bool) {
	if !strings.HasPrefix(line, layout.QueryPrefix) {
		return "", false
	}
	return strings.TrimRight(line[len(layout.QueryPrefix):], " \t\r\n"), true
}

// Prefix returns the pair prefix of a read name
func (layout Layout) Prefix(seqName string) string {
	if len(seqName) <= layout.PairPrefix {
		return seqName
	}
	return seqName[:layout.PairPrefix]
}

// Fields splits line with Delimiter
func (layout Layout) Fields(line string) []string {
	return strings.Split(line, layout.Delimiter)
}

// ParseHit parses a hit line. The score column is only parsed when withScore is set.
// The e-value is the last column, its line terminator is trimmed.
func (layout Layout) ParseHit(line string, withScore bool) (hit Hit, err error) {
	var fields = layout.Fields(line)

	seqName, err := layout.field(fields, layout.SeqName)
	if err != nil {
		return
	}
	hit.SeqName = seqName

	if withScore {
		hit.Score, err = layout.float(fields, layout.Score)
		if err != nil {
			return
		}
	}
	hit.EValue, err = layout.float(fields, layout.EValue)
	return
}

func (layout Layout) field(fields []string, f Field) (string, error) {
	if f.Index >= len(fields) {
		return "", &FieldError{Field: f.Name, Index: f.Index, Count: len(fields)}
	}
	return fields[f.Index], nil
}

func (layout Layout) float(fields []string, f Field) (float64, error) {
	s, err := layout.field(fields, f)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &FieldError{Field: f.Name, Index: f.Index, Count: len(fields), Err: err}
	}
	return v, nil
}
