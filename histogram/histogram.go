// Package histogram counts how often each contextualized character occurs
// in a body of text, keyed by a typeface (or training-set) label. The counts
// feed OCR training pipelines, which need to know which glyph shapes a
// typeface sample actually contains. Rows are exchanged as CSV of the form
//
//	typeface,character,count
//
// with one row per (typeface, character) pair.
package histogram

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/npillmayer/arabicforms"
)

// Histogram accumulates per-typeface character counts. The zero value is not
// usable; create instances with New. A Histogram is not safe for concurrent
// mutation.
type Histogram struct {
	counts map[string]map[rune]int
}

// New creates an empty histogram.
func New() *Histogram {
	return &Histogram{counts: make(map[string]map[rune]int)}
}

// Add contextualizes text and counts every rune of the result under the
// given typeface label.
func (h *Histogram) Add(typeface, text string) {
	h.AddShaped(typeface, arabicforms.Contextualize(text))
}

// AddShaped counts every rune of already-contextualized text under the given
// typeface label.
func (h *Histogram) AddShaped(typeface, text string) {
	row := h.counts[typeface]
	if row == nil {
		row = make(map[rune]int)
		h.counts[typeface] = row
	}
	for _, r := range text {
		row[r]++
	}
}

// AddReader contextualizes the text from r line by line and counts it under
// the given typeface label.
func (h *Histogram) AddReader(typeface string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		h.Add(typeface, scanner.Text()+"\n")
	}
	return scanner.Err()
}

// AddFile contextualizes the contents of a text file and counts it under the
// given typeface label.
func (h *Histogram) AddFile(typeface, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return h.AddReader(typeface, f)
}

// Count returns the occurrence count recorded for one character under one
// typeface label.
func (h *Histogram) Count(typeface string, char rune) int {
	return h.counts[typeface][char]
}

// Typefaces returns the recorded typeface labels in sorted order.
func (h *Histogram) Typefaces() []string {
	faces := make([]string, 0, len(h.counts))
	for face := range h.counts {
		faces = append(faces, face)
	}
	sort.Strings(faces)
	return faces
}

// WriteCSV emits all (typeface, character, count) rows, sorted by typeface
// label and character code point.
func (h *Histogram) WriteCSV(w io.Writer) error {
	out := csv.NewWriter(w)
	for _, face := range h.Typefaces() {
		row := h.counts[face]
		chars := make([]rune, 0, len(row))
		for r := range row {
			chars = append(chars, r)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
		for _, r := range chars {
			record := []string{face, string(r), strconv.Itoa(row[r])}
			if err := out.Write(record); err != nil {
				return err
			}
		}
	}
	out.Flush()
	return out.Error()
}

// ReadCSV parses rows previously written by WriteCSV. Reading merges into a
// fresh histogram; use Merge to combine several.
func ReadCSV(r io.Reader) (*Histogram, error) {
	h := New()
	in := csv.NewReader(r)
	in.FieldsPerRecord = 3
	for {
		record, err := in.Read()
		if err == io.EOF {
			return h, nil
		}
		if err != nil {
			return nil, err
		}
		chars := []rune(record[1])
		if len(chars) != 1 {
			return nil, fmt.Errorf("histogram row holds %d characters, want 1: %q", len(chars), record[1])
		}
		count, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("histogram row has malformed count: %q", record[2])
		}
		row := h.counts[record[0]]
		if row == nil {
			row = make(map[rune]int)
			h.counts[record[0]] = row
		}
		row[chars[0]] += count
	}
}

// Merge adds all counts of other into h.
func (h *Histogram) Merge(other *Histogram) {
	for face, row := range other.counts {
		dst := h.counts[face]
		if dst == nil {
			dst = make(map[rune]int, len(row))
			h.counts[face] = dst
		}
		for r, n := range row {
			dst[r] += n
		}
	}
}
