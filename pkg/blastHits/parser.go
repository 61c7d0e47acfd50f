package blastHits

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

type YearCount struct {
	Year  int
	Count int
	File  string
}

type YearSingleCopy struct {
	Year   int
	Counts SingleCopyCounts
	File   string
}

// MonthCounts maps month number to the samples of that month
type MonthCounts map[int][]YearCount

type MonthSingleCopy map[int][]YearSingleCopy

// Get returns the count of month/year
func (m MonthCounts) Get(month, year int) (int, bool) {
	for _, yc := range m[month] {
		if yc.Year == year {
			return yc.Count, true
		}
	}
	return 0, false
}

func (m MonthSingleCopy) Get(month, year int) (SingleCopyCounts, bool) {
	for _, yc := range m[month] {
		if yc.Year == year {
			return yc.Counts, true
		}
	}
	return nil, false
}

type Results struct {
	ChlF       MonthCounts
	ChlA       MonthCounts
	SingleCopy MonthSingleCopy
}

func NewResults() *Results {
	return &Results{
		ChlF:       make(MonthCounts),
		ChlA:       make(MonthCounts),
		SingleCopy: make(MonthSingleCopy),
	}
}

type SampleResult struct {
	Count      int
	SingleCopy SingleCopyCounts
}

// Parser reads the report tree: <Directory>/<assay dir>/<sample file>
type Parser struct {
	Directory       string
	EValueThreshold float64
	Layout          Layout
	AssayDirs       map[Assay]string
	// Thread limits concurrent files, 0 means min(len(Samples), GOMAXPROCS)
	Thread int

	Samples []Sample
}

func NewParser(directory string, eValueThreshold float64) *Parser {
	var dirs = make(map[Assay]string)
	for k, v := range DefaultAssayDirs {
		dirs[k] = v
	}
	return &Parser{
		Directory:       directory,
		EValueThreshold: eValueThreshold,
		Layout:          DefaultLayout,
		AssayDirs:       dirs,
	}
}

// LoadSamples lists the sample files of every assay directory
func (p *Parser) LoadSamples() error {
	p.Samples = p.Samples[:0]
	for _, assay := range Assays {
		var dir = filepath.Join(p.Directory, p.AssayDirs[assay])
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read %s directory: %w", assay, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				slog.Debug("skip sub directory", "assay", assay, "dir", entry.Name())
				continue
			}
			month, year, err := ParseSampleName(entry.Name())
			if err != nil {
				return err
			}
			p.Samples = append(p.Samples, Sample{
				Assay: assay,
				Month: month,
				Year:  year,
				Path:  filepath.Join(dir, entry.Name()),
			})
		}
	}
	return nil
}

// CountSample counts one sample file. The file is closed on every path.
func (p *Parser) CountSample(sample Sample) (result SampleResult, err error) {
	file, err := OpenReport(sample.Path)
	if err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	switch sample.Assay {
	case AssayA:
		result.Count, err = CountAHits(file, p.Layout, p.EValueThreshold)
	case AssayF:
		var report FReport
		report, err = CountFHits(file, p.Layout)
		result.Count = report.Count
	case AssaySingleCopy:
		result.SingleCopy, err = CountSingleCopyHits(file, p.Layout, p.EValueThreshold)
	default:
		err = fmt.Errorf("unknown assay %v", sample.Assay)
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.File == "" {
		parseErr.File = sample.Path
	}
	return
}

// ConcurrencyRun counts every sample, the first error stops the batch
func (p *Parser) ConcurrencyRun(ctx context.Context) ([]SampleResult, error) {
	var thread = p.Thread
	if thread <= 0 {
		thread = max(1, min(len(p.Samples), runtime.GOMAXPROCS(0)))
	}

	var (
		results = make([]SampleResult, len(p.Samples))
		g, gctx = errgroup.WithContext(ctx)
	)
	g.SetLimit(thread)
	for i, sample := range p.Samples {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result, err := p.CountSample(sample)
			if err != nil {
				return err
			}
			slog.Info("count", "assay", sample.Assay, "month", sample.Month, "year", sample.Year, "file", filepath.Base(sample.Path), "count", result.Count)
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Parse reads all samples and aggregates them by month
func (p *Parser) Parse(ctx context.Context) (*Results, error) {
	now := time.Now()
	if err := p.LoadSamples(); err != nil {
		return nil, err
	}
	counts, err := p.ConcurrencyRun(ctx)
	if err != nil {
		return nil, err
	}

	var results = NewResults()
	for i, sample := range p.Samples {
		var file = filepath.Base(sample.Path)
		switch sample.Assay {
		case AssayA:
			results.ChlA[sample.Month] = append(results.ChlA[sample.Month], YearCount{Year: sample.Year, Count: counts[i].Count, File: file})
		case AssayF:
			results.ChlF[sample.Month] = append(results.ChlF[sample.Month], YearCount{Year: sample.Year, Count: counts[i].Count, File: file})
		case AssaySingleCopy:
			results.SingleCopy[sample.Month] = append(results.SingleCopy[sample.Month], YearSingleCopy{Year: sample.Year, Counts: counts[i].SingleCopy, File: file})
		}
	}
	slog.Info("Parse Done", "samples", len(p.Samples), "time", time.Since(now))
	return results, nil
}
