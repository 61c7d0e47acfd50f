package blastHits

import "io"

// Reference is a single copy marker gene used as query
type Reference int

const (
	RefRPS2 Reference = iota
	RefRPL1
	RefIF2
	// RefRPL22 hits are never counted
	RefRPL22
)

// CountedReferences are the references reported by CountSingleCopyHits
var CountedReferences = []Reference{RefRPS2, RefRPL1, RefIF2}

var referenceNames = map[Reference]string{
	RefRPS2:  "small subunit ribosomal protein S2 RPS2 consensus",
	RefRPL1:  "large subunit ribosomal protein L1 consensus",
	RefIF2:   "translation initiation factor IF-2 consensus",
	RefRPL22: "large subunit ribosomal protein L22",
}

var referenceShort = map[Reference]string{
	RefRPS2:  "RPS2",
	RefRPL1:  "RPL1",
	RefIF2:   "IF-2",
	RefRPL22: "RPL22",
}

// Name returns the query name of the reference as written in reports
func (ref Reference) Name() string { return referenceNames[ref] }

func (ref Reference) String() string { return referenceShort[ref] }

// LookupReference maps a query name to its Reference
func LookupReference(query string) (Reference, bool) {
	for ref, name := range referenceNames {
		if name == query {
			return ref, true
		}
	}
	return 0, false
}

// SingleCopyCounts holds fragment counts of the counted references
type SingleCopyCounts map[Reference]int

// Values returns the counts in CountedReferences order
func (counts SingleCopyCounts) Values() []float64 {
	var values = make([]float64, len(CountedReferences))
	for i, ref := range CountedReferences {
		values[i] = float64(counts[ref])
	}
	return values
}

// CountSingleCopyHits counts fragments per single copy reference with e-value <= threshold
func CountSingleCopyHits(r io.Reader, layout Layout, threshold float64) (SingleCopyCounts, error) {
	var (
		query  string
		unique = make(map[Reference]*uniqueIDs)
	)
	for _, ref := range CountedReferences {
		unique[ref] = newUniqueIDs()
	}

	err := eachLine(r, layout, func(_ int, line string) error {
		if name, ok := layout.Query(line); ok {
			query = name
		}
		if !layout.IsHit(line) || query == RefRPL22.Name() {
			return nil
		}
		hit, err := layout.ParseHit(line, false)
		if err != nil {
			return err
		}
		ref, ok := LookupReference(query)
		if !ok {
			return &UnknownReferenceError{Query: query}
		}
		unique[ref].Add(hit.SeqName, hit.EValue, threshold)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var counts = make(SingleCopyCounts)
	for _, ref := range CountedReferences {
		counts[ref] = CountFragments(layout, unique[ref].names)
	}
	return counts, nil
}
