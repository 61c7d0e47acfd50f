package blastHits

import "io"

// CountAHits counts ChlA fragments with e-value <= threshold
func CountAHits(r io.Reader, layout Layout, threshold float64) (int, error) {
	var unique = newUniqueIDs()
	err := eachLine(r, layout, func(_ int, line string) error {
		if !layout.IsHit(line) {
			return nil
		}
		hit, err := layout.ParseHit(line, false)
		if err != nil {
			return err
		}
		unique.Add(hit.SeqName, hit.EValue, threshold)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return CountFragments(layout, unique.names), nil
}
