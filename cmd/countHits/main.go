package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"ChlBlast/pkg/blastHits"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input BLAST report, .gz supported",
	)
	assay = flag.String(
		"a",
		"A",
		"assay type: A, F or singleCopy",
	)
	eValue = flag.Float64(
		"e",
		1e-5,
		"maximal e-value of ChlA and single copy hits",
	)
)

func main() {
	flag.Parse()
	if *input == "" {
		flag.PrintDefaults()
		log.Fatal("-i required!")
	}

	var sample = blastHits.Sample{
		Assay: simpleUtil.HandleError(blastHits.ParseAssay(*assay)),
		Path:  *input,
	}
	if month, year, err := blastHits.ParseSampleName(filepath.Base(*input)); err == nil {
		sample.Month, sample.Year = month, year
	} else {
		slog.Warn("no month/year in file name", "err", err)
	}

	var parser = blastHits.NewParser(filepath.Dir(*input), *eValue)
	var result = simpleUtil.HandleError(parser.CountSample(sample))

	if sample.Assay == blastHits.AssaySingleCopy {
		for _, ref := range blastHits.CountedReferences {
			fmtUtil.Fprintf(os.Stdout, "%s\t%d\n", ref.Name(), result.SingleCopy[ref])
		}
		return
	}
	fmtUtil.Fprintf(os.Stdout, "%s\t%d\n", sample.Assay, result.Count)
}
