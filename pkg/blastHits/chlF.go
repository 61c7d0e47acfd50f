package blastHits

import (
	"io"
	"log/slog"

	"github.com/cloudflare/ahocorasick"
	"gonum.org/v1/gonum/stat"
)

// FEValueCutoff is the fixed mean e-value cutoff for ChlF reads
const FEValueCutoff = 1e-10

// query name patterns, first match wins
var (
	ChlFPattern = "chlorophyll f"
	PSIIPattern = "Photosystem II"
)

type queryClass int

const (
	classOther queryClass = iota
	classChlF
	classPSII
)

type Verdict int

const (
	Rejected Verdict = iota
	Accepted
	InsufficientData
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case InsufficientData:
		return "insufficient"
	default:
		return "rejected"
	}
}

// QueryHit is one hit of a read against a named query
type QueryHit struct {
	Query  string
	Score  float64
	EValue float64
}

type FReport struct {
	// Count is the number of accepted fragments
	Count        int
	Accepted     int
	Rejected     int
	Insufficient int
}

type classifier struct {
	matcher *ahocorasick.Matcher
	cache   map[string]queryClass
}

func newClassifier() *classifier {
	return &classifier{
		matcher: ahocorasick.NewStringMatcher([]string{ChlFPattern, PSIIPattern}),
		cache:   make(map[string]queryClass),
	}
}

func (c *classifier) class(query string) queryClass {
	if qc, ok := c.cache[query]; ok {
		return qc
	}
	var qc = classOther
	var chlF, psII bool
	for _, i := range c.matcher.Match([]byte(query)) {
		switch i {
		case 0:
			chlF = true
		case 1:
			psII = true
		}
	}
	if chlF {
		qc = classChlF
	} else if psII {
		qc = classPSII
	}
	c.cache[query] = qc
	return qc
}

// Classify decides whether a read is ChlF rather than a Photosystem II homolog.
// Reads missing either class are InsufficientData and are never accepted.
func Classify(hits []QueryHit) (Verdict, error) {
	return newClassifier().classify(hits)
}

func (c *classifier) classify(hits []QueryHit) (Verdict, error) {
	var fScores, fEValues, psIIScores []float64
	for _, hit := range hits {
		switch c.class(hit.Query) {
		case classChlF:
			fScores = append(fScores, hit.Score)
			fEValues = append(fEValues, hit.EValue)
		case classPSII:
			psIIScores = append(psIIScores, hit.Score)
		}
	}
	if len(fScores) == 0 || len(psIIScores) == 0 {
		return InsufficientData, ErrInsufficientData
	}
	if stat.Mean(fScores, nil) > stat.Mean(psIIScores, nil) && stat.Mean(fEValues, nil) <= FEValueCutoff {
		return Accepted, nil
	}
	return Rejected, nil
}

// CountFHits counts ChlF fragments of a report
func CountFHits(r io.Reader, layout Layout) (report FReport, err error) {
	var (
		query   string
		order   []string
		results = make(map[string][]QueryHit)
	)
	err = eachLine(r, layout, func(_ int, line string) error {
		if name, ok := layout.Query(line); ok {
			query = name
		}
		if !layout.IsHit(line) {
			return nil
		}
		hit, err := layout.ParseHit(line, true)
		if err != nil {
			return err
		}
		if query == "" {
			return nil
		}
		if _, ok := results[hit.SeqName]; !ok {
			order = append(order, hit.SeqName)
		}
		results[hit.SeqName] = append(results[hit.SeqName], QueryHit{Query: query, Score: hit.Score, EValue: hit.EValue})
		return nil
	})
	if err != nil {
		return
	}

	var (
		c     = newClassifier()
		final []string
	)
	for _, name := range order {
		verdict, _ := c.classify(results[name])
		switch verdict {
		case Accepted:
			report.Accepted++
			final = append(final, name)
		case InsufficientData:
			report.Insufficient++
		default:
			report.Rejected++
		}
	}
	if report.Insufficient > 0 {
		slog.Warn("ChlF reads without both hit classes", "insufficient", report.Insufficient, "reads", len(order))
	}
	report.Count = CountFragments(layout, final)
	return
}
