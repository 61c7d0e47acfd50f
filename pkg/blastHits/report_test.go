package blastHits

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gzip "github.com/klauspost/pgzip"
)

// readName builds a read name whose first 43 characters identify the fragment
func readName(fragment, mate int) string {
	return fmt.Sprintf("NB501373:80:HGKJLBGX5:1:11101:%07d:100000 %d:N:0:ATCACG", fragment, mate)
}

func hitLine(name string, score float64, eValue string) string {
	return fmt.Sprintf("  %s  %g    %s", name, score, eValue)
}

// header holds 15 lines, one of them looks like a hit and must never be counted
var header = []string{
	"BLASTN 2.9.0+",
	"",
	"",
	"Reference: Zheng Zhang, Scott Schwartz, Lukas Wagner, and Webb",
	"Miller (2000), \"A greedy algorithm for aligning DNA sequences\", J",
	"Comput Biol 2000; 7(1-2):203-14.",
	"",
	"",
	"",
	"Database: dor_reservoir_reads.fasta",
	"           1,234,567 sequences; 185,432,100 total letters",
	"",
	"",
	"  NB501373:80:HGKJLBGX5:1:11101:9999999:100000 1:N:0:ATCACG  99.0    1e-50",
	"",
}

func report(lines ...string) string {
	return strings.Join(append(append([]string{}, header...), lines...), "\n") + "\n"
}

func TestHeaderLength(t *testing.T) {
	if len(header) != DefaultLayout.HeaderLines {
		t.Fatalf("header has %d lines; want %d", len(header), DefaultLayout.HeaderLines)
	}
	if DefaultLayout.Prefix(readName(1, 1)) != DefaultLayout.Prefix(readName(1, 2)) {
		t.Errorf("mates of one fragment should share the pair prefix")
	}
	if DefaultLayout.Prefix(readName(1, 1)) == DefaultLayout.Prefix(readName(2, 1)) {
		t.Errorf("different fragments should not share the pair prefix")
	}
}

func TestLayout_ParseHit(t *testing.T) {
	t.Run("hit line", func(t *testing.T) {
		var line = hitLine(readName(1, 1), 50.1, "4e-06")
		if !DefaultLayout.IsHit(line) {
			t.Fatalf("IsHit(%q) = false", line)
		}
		hit, err := DefaultLayout.ParseHit(line, true)
		if err != nil {
			t.Fatalf("ParseHit: %v", err)
		}
		if hit.SeqName != readName(1, 1) || hit.Score != 50.1 || hit.EValue != 4e-06 {
			t.Errorf("ParseHit = %+v", hit)
		}
	})

	t.Run("trailing line terminator", func(t *testing.T) {
		hit, err := DefaultLayout.ParseHit(hitLine(readName(1, 1), 50, "4e-06\r"), false)
		if err != nil {
			t.Fatalf("ParseHit: %v", err)
		}
		if hit.EValue != 4e-06 {
			t.Errorf("EValue = %g; want 4e-06", hit.EValue)
		}
	})

	t.Run("title line", func(t *testing.T) {
		if DefaultLayout.IsHit("> " + readName(1, 1)) {
			t.Errorf("alignment title lines are not hits")
		}
	})

	t.Run("short line", func(t *testing.T) {
		_, err := DefaultLayout.ParseHit("  "+readName(1, 1)+"  50.1", false)
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("err = %v; want *FieldError", err)
		}
		if fieldErr.Field != "EValue" {
			t.Errorf("Field = %s; want EValue", fieldErr.Field)
		}
	})

	t.Run("bad score", func(t *testing.T) {
		_, err := DefaultLayout.ParseHit("  "+readName(1, 1)+"  abc    1e-5", true)
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) || fieldErr.Field != "Score" {
			t.Fatalf("err = %v; want Score *FieldError", err)
		}
	})

	t.Run("custom layout", func(t *testing.T) {
		var layout = DefaultLayout
		layout.Delimiter = "\t"
		layout.SeqName = Field{Name: "SeqName", Index: 0}
		layout.EValue = Field{Name: "EValue", Index: 2}
		hit, err := layout.ParseHit(readName(3, 1)+"\t12\t1e-9", false)
		if err != nil {
			t.Fatalf("ParseHit: %v", err)
		}
		if hit.SeqName != readName(3, 1) || hit.EValue != 1e-9 {
			t.Errorf("ParseHit = %+v", hit)
		}
	})
}

func TestLayout_Query(t *testing.T) {
	name, ok := DefaultLayout.Query("Query= chlorophyll f synthase ChlF\r")
	if !ok || name != "chlorophyll f synthase ChlF" {
		t.Errorf("Query = %q, %v", name, ok)
	}
	if _, ok := DefaultLayout.Query("Length=340"); ok {
		t.Errorf("Length line is not a query")
	}
}

func TestCountFragments(t *testing.T) {
	var names = []string{readName(2, 2), readName(1, 1), readName(2, 1), "short"}
	if got := CountFragments(DefaultLayout, names); got != 3 {
		t.Errorf("CountFragments = %d; want 3", got)
	}
	if got := CountFragments(DefaultLayout, nil); got != 0 {
		t.Errorf("CountFragments(nil) = %d; want 0", got)
	}
}

func TestOpenReport(t *testing.T) {
	var (
		dir     = t.TempDir()
		content = report(hitLine(readName(1, 1), 40, "1e-8"))
		plain   = filepath.Join(dir, "jan1.txt")
		zipped  = filepath.Join(dir, "jan1.txt.gz")
	)
	if err := os.WriteFile(plain, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	gw.Write([]byte(content))
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(zipped, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{plain, zipped} {
		file, err := OpenReport(path)
		if err != nil {
			t.Fatalf("OpenReport(%s): %v", path, err)
		}
		count, err := CountAHits(file, DefaultLayout, 1e-6)
		if err != nil {
			t.Errorf("CountAHits(%s): %v", path, err)
		}
		if count != 1 {
			t.Errorf("CountAHits(%s) = %d; want 1", path, count)
		}
		if err := file.Close(); err != nil {
			t.Errorf("Close(%s): %v", path, err)
		}
	}

	if _, err := OpenReport(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v; want os.ErrNotExist", err)
	}
}
