package main

import (
	"embed"
	"fmt"

	"github.com/liserjrqlxue/goUtil/osUtil"

	"ChlBlast/pkg/blastHits"
)

// LoadConfig fills AssayDirs and TitleSummary from etc/assay.txt and etc/title.Summary.txt.
// Files next to the executable take the place of the embedded ones.
func LoadConfig(cfgPath string, cfgFS embed.FS) error {
	var assayMap, _ = osUtil.FS2MapArray(osUtil.OpenFS("etc/assay.txt", cfgPath, cfgFS), "\t", nil)
	for _, m := range assayMap {
		assay, err := blastHits.ParseAssay(m["Assay"])
		if err != nil {
			return fmt.Errorf("etc/assay.txt: %w", err)
		}
		AssayDirs[assay] = m["Dir"]
	}
	for _, assay := range blastHits.Assays {
		if AssayDirs[assay] == "" {
			AssayDirs[assay] = blastHits.DefaultAssayDirs[assay]
		}
	}

	TitleSummary = osUtil.FS2Array(osUtil.OpenFS("etc/title.Summary.txt", cfgPath, cfgFS))
	if len(TitleSummary) == 0 {
		TitleSummary = blastHits.DefaultTitleSummary
	}
	return nil
}
