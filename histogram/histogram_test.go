package histogram

import (
	"bytes"
	"strings"
	"testing"
)

func TestAddCountsShapedForms(t *testing.T) {
	h := New()
	h.Add("naskh", "بب") // beh-beh shapes to initial+final
	if got := h.Count("naskh", 'ﺑ'); got != 1 {
		t.Fatalf("initial beh counted %d times, want 1", got)
	}
	if got := h.Count("naskh", 'ﺐ'); got != 1 {
		t.Fatalf("final beh counted %d times, want 1", got)
	}
	if got := h.Count("naskh", 'ب'); got != 0 {
		t.Fatalf("general beh should not be counted, got %d", got)
	}
	if got := h.Count("ruqah", 'ﺑ'); got != 0 {
		t.Fatalf("unknown typeface should count 0, got %d", got)
	}
}

func TestAddAccumulates(t *testing.T) {
	h := New()
	h.Add("naskh", "ب")
	h.Add("naskh", "ب ب")
	if got := h.Count("naskh", 'ﺏ'); got != 3 {
		t.Fatalf("isolated beh counted %d times, want 3", got)
	}
	if got := h.Count("naskh", ' '); got != 1 {
		t.Fatalf("space counted %d times, want 1", got)
	}
}

func TestAddReader(t *testing.T) {
	h := New()
	if err := h.AddReader("naskh", strings.NewReader("ب\nب\n")); err != nil {
		t.Fatal(err)
	}
	if got := h.Count("naskh", 'ﺏ'); got != 2 {
		t.Fatalf("isolated beh counted %d times, want 2", got)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	h := New()
	h.Add("naskh", "ببب")
	h.Add("ruqah", "س")
	var buf bytes.Buffer
	if err := h.WriteCSV(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 CSV rows, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "naskh,ﺐ,1" {
		t.Fatalf("first row = %q", lines[0])
	}
	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for _, face := range h.Typefaces() {
		for r, n := range h.counts[face] {
			if got := back.Count(face, r); got != n {
				t.Errorf("ReadCSV lost count for %s/%U: got %d, want %d", face, r, got, n)
			}
		}
	}
}

func TestReadCSVRejectsMalformedRows(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("naskh,ab,1\n")); err == nil {
		t.Fatal("multi-rune character column should be rejected")
	}
	if _, err := ReadCSV(strings.NewReader("naskh,ﺑ,many\n")); err == nil {
		t.Fatal("non-numeric count should be rejected")
	}
}

func TestMerge(t *testing.T) {
	a := New()
	a.Add("naskh", "ب")
	b := New()
	b.Add("naskh", "ب")
	b.Add("ruqah", "س")
	a.Merge(b)
	if got := a.Count("naskh", 'ﺏ'); got != 2 {
		t.Fatalf("merged count = %d, want 2", got)
	}
	if got := a.Count("ruqah", 'ﺱ'); got != 1 {
		t.Fatalf("merged new typeface count = %d, want 1", got)
	}
}
