package main

import (
	"flag"
	"log"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"

	"ChlBlast/pkg/blastHits"
	"ChlBlast/pkg/visual"
)

// flag
var (
	input = flag.String(
		"i",
		"",
		"normalized.txt written by ChlBlast",
	)
	prefix = flag.String(
		"p",
		"",
		"output prefix, default is -i without .txt",
	)
)

func main() {
	flag.Parse()
	if *input == "" {
		flag.PrintDefaults()
		log.Fatal("-i required!")
	}
	if *prefix == "" {
		*prefix = strings.TrimSuffix(*input, ".txt")
	}

	var series = simpleUtil.HandleError(blastHits.ReadNormalizedTxt(*input))
	if len(series) != 2 {
		log.Fatalf("want 2 sampling years in %s, got %d", *input, len(series))
	}
	visual.MustRender(*prefix, series[0], series[1])
}
