package main

import "ChlBlast/pkg/blastHits"

var (
	AssayDirs    = make(map[blastHits.Assay]string)
	TitleSummary []string
)
