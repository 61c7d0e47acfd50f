package main

import (
	"context"
	"embed"
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"ChlBlast/pkg/blastHits"
	"ChlBlast/pkg/visual"
	"ChlBlast/pkg/wechatwork"
)

// os
var (
	ex, _  = os.Executable()
	exPath = filepath.Dir(ex)
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"input directory with ChlA, ChlF and singleCopy sub directories",
	)
	outputDir = flag.String(
		"o",
		"",
		"output directory, default is [BaseName of -i]+.result",
	)
	eValue = flag.Float64(
		"e",
		1e-5,
		"maximal e-value of ChlA and single copy hits",
	)
	thread = flag.Int(
		"t",
		0,
		"files counted in parallel, default min(files, GOMAXPROCS)",
	)
	year1 = flag.Int(
		"year1",
		1,
		"year marker of the first sampling year",
	)
	year2 = flag.Int(
		"year2",
		2,
		"year marker of the second sampling year, gets the september correction",
	)
	plot = flag.Bool(
		"plot",
		false,
		"render html and png charts",
	)
	webhook = flag.String(
		"webhook",
		"",
		"WeChat Work robot key, post a run report when set",
	)
	debug = flag.Bool(
		"debug",
		false,
		"debug log",
	)
)

// embed etc
//
//go:embed etc/*.txt
var etcEMFS embed.FS

func main() {
	flag.Parse()
	if *input == "" {
		flag.PrintDefaults()
		log.Fatal("-i required!")
	}
	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	now := time.Now()

	simpleUtil.CheckErr(LoadConfig(exPath, etcEMFS))

	if *outputDir == "" {
		*outputDir = filepath.Base(filepath.Clean(*input)) + ".result"
	}
	simpleUtil.CheckErr(os.MkdirAll(*outputDir, 0755))

	var parser = blastHits.NewParser(*input, *eValue)
	parser.Thread = *thread
	parser.AssayDirs = AssayDirs
	slog.Info("Parse", "input", *input, "eValue", *eValue, "dirs", AssayDirs)

	var results = simpleUtil.HandleError(parser.Parse(context.Background()))

	// caller side normalization against single copy genes
	var (
		first  = blastHits.Normalize(results, *year1)
		second = blastHits.Normalize(results, *year2)
	)

	blastHits.WriteSummaryTxt(filepath.Join(*outputDir, "summary.txt"), TitleSummary, results)
	blastHits.WriteNormalizedTxt(filepath.Join(*outputDir, "normalized.txt"), first, second)
	blastHits.SummaryXlsx(filepath.Join(*outputDir, "summary.xlsx"), TitleSummary, results, first, second)

	if *plot {
		visual.MustRender(filepath.Join(*outputDir, "chl"), first, second)
	} else {
		slog.Info("Run Plot use plotMonth", "cmd", "plotMonth -i "+filepath.Join(*outputDir, "normalized.txt"))
	}

	var notifier = wechatwork.NewNotifier(*webhook)
	if err := notifier.SendMarkdown(wechatwork.RunReport(*input, *outputDir, results, first, second)); err != nil {
		slog.Warn("notify", "err", err)
	}

	slog.Info("Done", "time", time.Since(now))
}
