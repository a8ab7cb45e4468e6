package codestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goSample = `package main

// main is the entry point.
func main() {
	if true {
		println("hi")
	}
}
`

func TestCollectorProcessFile(t *testing.T) {
	c := NewCollector()
	c.ProcessFile("main.go", []byte(goSample))

	stats := c.Stats()
	require.Len(t, stats.ByFile, 1)

	f := stats.ByFile[0]
	assert.Equal(t, "main.go", f.Filename)
	assert.Equal(t, "Go", f.Language)
	assert.Equal(t, int64(8), f.Lines)
	assert.Greater(t, f.Code, int64(0))
	assert.Greater(t, f.Comments, int64(0))
	assert.Equal(t, int64(1), f.Blanks)
}

func TestCollectorSkipsEmptyContent(t *testing.T) {
	c := NewCollector()
	c.ProcessFile("empty.go", nil)

	assert.Empty(t, c.Stats().ByFile)
}

func TestCollectorTotalsAndOrdering(t *testing.T) {
	c := NewCollector()
	c.ProcessFile("b.go", []byte(goSample))
	c.ProcessFile("a.go", []byte(goSample))

	stats := c.Stats()
	require.Len(t, stats.ByFile, 2)
	assert.Equal(t, "a.go", stats.ByFile[0].Filename)
	assert.Equal(t, "b.go", stats.ByFile[1].Filename)

	assert.Equal(t, 2, stats.Total.Files)
	assert.Equal(t, stats.ByFile[0].Lines+stats.ByFile[1].Lines, stats.Total.Lines)
}

func TestCollectorUnknownFileFallsBackToLineCount(t *testing.T) {
	c := NewCollector()
	c.ProcessFile("data.qqq", []byte("one\ntwo\nthree"))

	stats := c.Stats()
	require.Len(t, stats.ByFile, 1)
	assert.Equal(t, int64(3), stats.ByFile[0].Lines)
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, int64(0), countLines(nil))
	assert.Equal(t, int64(1), countLines([]byte("x")))
	assert.Equal(t, int64(1), countLines([]byte("x\n")))
	assert.Equal(t, int64(2), countLines([]byte("x\ny")))
}
