package blastHits

import (
	"errors"
	"strings"
	"testing"
)

func countA(t *testing.T, content string, threshold float64) int {
	t.Helper()
	count, err := CountAHits(strings.NewReader(content), DefaultLayout, threshold)
	if err != nil {
		t.Fatalf("CountAHits: %v", err)
	}
	return count
}

func TestCountAHits(t *testing.T) {
	t.Run("mates with one passing e-value", func(t *testing.T) {
		var content = report(
			hitLine(readName(1, 1), 40, "1e-5"),
			hitLine(readName(1, 2), 42, "1e-8"),
		)
		if got := countA(t, content, 1e-6); got != 1 {
			t.Errorf("count = %d; want 1", got)
		}
	})

	t.Run("e-value equal to threshold", func(t *testing.T) {
		var content = report(hitLine(readName(1, 1), 40, "1e-06"))
		if got := countA(t, content, 1e-6); got != 1 {
			t.Errorf("count = %d; want 1", got)
		}
	})

	t.Run("e-value above threshold", func(t *testing.T) {
		var content = report(hitLine(readName(1, 1), 40, "2e-06"))
		if got := countA(t, content, 1e-6); got != 0 {
			t.Errorf("count = %d; want 0", got)
		}
	})

	t.Run("mates collapse in any order", func(t *testing.T) {
		var content = report(
			hitLine(readName(2, 2), 40, "1e-9"),
			hitLine(readName(1, 1), 40, "1e-9"),
			hitLine(readName(2, 1), 40, "1e-9"),
			hitLine(readName(1, 2), 40, "1e-9"),
			hitLine(readName(1, 2), 38, "1e-9"),
		)
		if got := countA(t, content, 1e-6); got != 2 {
			t.Errorf("count = %d; want 2", got)
		}
	})

	t.Run("header and title lines", func(t *testing.T) {
		var content = report(
			"Sequences producing significant alignments:  Score(Bits)  E Value",
			"> "+readName(5, 1),
			"Length=150",
		)
		if got := countA(t, content, 1); got != 0 {
			t.Errorf("count = %d; want 0", got)
		}
	})

	t.Run("rejected then accepted", func(t *testing.T) {
		var content = report(
			hitLine(readName(1, 1), 30, "1e-2"),
			hitLine(readName(1, 1), 40, "1e-9"),
		)
		if got := countA(t, content, 1e-6); got != 1 {
			t.Errorf("count = %d; want 1", got)
		}
	})

	t.Run("count never exceeds accepted lines", func(t *testing.T) {
		var lines []string
		var accepted = 0
		for i := 0; i < 20; i++ {
			var e = "1e-9"
			if i%3 == 0 {
				e = "1e-3"
			} else {
				accepted++
			}
			lines = append(lines, hitLine(readName(i/2, i%2+1), 40, e))
		}
		if got := countA(t, report(lines...), 1e-6); got > accepted {
			t.Errorf("count = %d > %d accepted lines", got, accepted)
		}
	})

	t.Run("malformed line", func(t *testing.T) {
		var content = report(
			hitLine(readName(1, 1), 40, "1e-9"),
			"  "+readName(2, 1)+"  40",
		)
		_, err := CountAHits(strings.NewReader(content), DefaultLayout, 1e-6)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("err = %v; want *ParseError", err)
		}
		if parseErr.Line != 17 {
			t.Errorf("Line = %d; want 17", parseErr.Line)
		}
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) {
			t.Errorf("err = %v; want wrapped *FieldError", err)
		}
	})
}
