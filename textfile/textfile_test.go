package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/arabicforms"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestContextualizeFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabicforms")
	defer teardown()
	content := "ولا تردد به\n"
	src := writeTemp(t, "in.txt", []byte(content))
	dst := filepath.Join(t.TempDir(), "out.txt")
	if err := ContextualizeFile(src, dst); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if want := arabicforms.Contextualize(content); string(got) != want {
		t.Fatalf("file output %q differs from string-level conversion %q", got, want)
	}
}

func TestFileRoundTrip(t *testing.T) {
	content := "شيء كفء abc 123\n"
	src := writeTemp(t, "in.txt", []byte(content))
	dir := t.TempDir()
	shaped := filepath.Join(dir, "shaped.txt")
	back := filepath.Join(dir, "back.txt")
	if err := ContextualizeFile(src, shaped); err != nil {
		t.Fatal(err)
	}
	if err := DecontextualizeFile(shaped, back); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(back)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Fatalf("round trip through files yields %q, want %q", got, content)
	}
}

func TestDecontextualizeFileWithSpaceRepair(t *testing.T) {
	shaped := arabicforms.Contextualize("ولا تردي") +
		arabicforms.Contextualize("به")
	src := writeTemp(t, "in.txt", []byte(shaped))
	dst := filepath.Join(t.TempDir(), "out.txt")
	if err := DecontextualizeFile(src, dst, WithSpaceRepair()); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	want := "ولا تردي به"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestContextualizeFileWithNormalization(t *testing.T) {
	src := writeTemp(t, "in.txt", []byte("سأل"))
	dst := filepath.Join(t.TempDir(), "out.txt")
	if err := ContextualizeFile(src, dst, WithNormalization()); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if want := "ﺳﺎٔﻝ"; string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMissingSourceIsIOError(t *testing.T) {
	err := ContextualizeFile(filepath.Join(t.TempDir(), "no-such-file"), "out.txt")
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if errors.Is(err, ErrEncoding) {
		t.Fatalf("missing file must not report an encoding error")
	}
}

func TestInvalidUTF8IsEncodingError(t *testing.T) {
	src := writeTemp(t, "bad.txt", []byte{0xFF, 0xFE, 0x00, 0x41})
	err := ContextualizeFile(src, filepath.Join(t.TempDir(), "out.txt"))
	if !errors.Is(err, ErrEncoding) {
		t.Fatalf("expected ErrEncoding, got %v", err)
	}
	if errors.Is(err, ErrIO) {
		t.Fatalf("an encoding failure must not report an I/O error")
	}
}
