package blastHits

import (
	"bufio"
	"io"
	"os"
	"regexp"

	// "compress/gzip"
	gzip "github.com/klauspost/pgzip"
)

const maxLineCapacity = 4 * 1024 * 1024

var gz = regexp.MustCompile(`\.gz$`)

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	var err = g.Reader.Close()
	if err2 := g.file.Close(); err == nil {
		err = err2
	}
	return err
}

// OpenReport opens a plain or gzipped report. The caller closes it.
func OpenReport(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !gz.MatchString(path) {
		return file, nil
	}
	gr, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &gzipFile{Reader: gr, file: file}, nil
}

// eachLine calls fn for every line after the header, lineNo is 1-based
func eachLine(r io.Reader, layout Layout, fn func(lineNo int, line string) error) error {
	var (
		scanner = bufio.NewScanner(r)
		lineNo  = 0
	)
	scanner.Buffer(make([]byte, 64*1024), maxLineCapacity)
	for scanner.Scan() {
		lineNo++
		if lineNo <= layout.HeaderLines {
			continue
		}
		if err := fn(lineNo, scanner.Text()); err != nil {
			return &ParseError{Line: lineNo, Err: err}
		}
	}
	return scanner.Err()
}

// uniqueIDs keeps distinct read names in first-seen order
type uniqueIDs struct {
	seen  map[string]bool
	names []string
}

func newUniqueIDs() *uniqueIDs {
	return &uniqueIDs{seen: make(map[string]bool)}
}

// Add records name once when eValue passes the threshold
func (u *uniqueIDs) Add(name string, eValue, threshold float64) {
	if u.seen[name] || eValue > threshold {
		return
	}
	u.seen[name] = true
	u.names = append(u.names, name)
}

// CountFragments collapses mates sharing the pair prefix and returns the fragment count
func CountFragments(layout Layout, names []string) int {
	var fragments = make(map[string]bool)
	for _, name := range names {
		fragments[layout.Prefix(name)] = true
	}
	return len(fragments)
}
