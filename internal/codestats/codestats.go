// Package codestats collects code statistics (lines, comments, blanks,
// cyclomatic complexity estimate) for scanned files using boyter/scc. The
// stats ride along in the CLI output envelope; they are not part of the
// deterministic scoring record.
package codestats

import (
	"sort"
	"sync"

	"github.com/boyter/scc/v3/processor"
)

var initOnce sync.Once

// FileStats holds the statistics of one analyzed file.
type FileStats struct {
	Filename   string `json:"filename"`
	Language   string `json:"language,omitempty"`
	Lines      int64  `json:"lines"`
	Code       int64  `json:"code"`
	Comments   int64  `json:"comments"`
	Blanks     int64  `json:"blanks"`
	Complexity int64  `json:"complexity"`
}

// Totals aggregates statistics across all analyzed files.
type Totals struct {
	Files      int   `json:"files"`
	Lines      int64 `json:"lines"`
	Code       int64 `json:"code"`
	Comments   int64 `json:"comments"`
	Blanks     int64 `json:"blanks"`
	Complexity int64 `json:"complexity"`
}

// Stats is the aggregated output attached to a scan envelope.
type Stats struct {
	Total  Totals      `json:"total"`
	ByFile []FileStats `json:"by_file"`
}

// Collector accumulates per-file statistics. Safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	files []FileStats
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// ProcessFile analyzes one file's content with scc and records its stats.
// Files scc cannot recognize still get a raw line count.
func (c *Collector) ProcessFile(filename string, content []byte) {
	if len(content) == 0 {
		return
	}

	initOnce.Do(processor.ProcessConstants)

	sccLangs, _ := processor.DetectLanguage(filename)
	sccLang := ""
	if len(sccLangs) > 0 {
		sccLang = sccLangs[0]
	}

	job := &processor.FileJob{
		Filename: filename,
		Language: sccLang,
		Content:  content,
		Bytes:    int64(len(content)),
	}
	processor.CountStats(job)

	stats := FileStats{
		Filename:   filename,
		Language:   sccLang,
		Lines:      job.Lines,
		Code:       job.Code,
		Comments:   job.Comment,
		Blanks:     job.Blank,
		Complexity: job.Complexity,
	}
	if sccLang == "" {
		stats.Lines = countLines(content)
	}

	c.mu.Lock()
	c.files = append(c.files, stats)
	c.mu.Unlock()
}

// Stats returns the aggregated statistics, files sorted by name.
func (c *Collector) Stats() *Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	files := make([]FileStats, len(c.files))
	copy(files, c.files)
	sort.Slice(files, func(i, j int) bool { return files[i].Filename < files[j].Filename })

	out := &Stats{ByFile: files}
	for _, f := range files {
		out.Total.Files++
		out.Total.Lines += f.Lines
		out.Total.Code += f.Code
		out.Total.Comments += f.Comments
		out.Total.Blanks += f.Blanks
		out.Total.Complexity += f.Complexity
	}
	return out
}

func countLines(content []byte) int64 {
	var lines int64
	for _, b := range content {
		if b == '\n' {
			lines++
		}
	}
	if len(content) > 0 && content[len(content)-1] != '\n' {
		lines++
	}
	return lines
}
