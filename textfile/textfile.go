// Package textfile adapts the in-memory transformations of package
// arabicforms to whole text files. The adapters read a UTF-8 source file,
// transform it, and write the result to a destination file; every failure is
// classified as either an I/O error or an encoding error, so callers can
// report the two distinctly.
package textfile

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/npillmayer/arabicforms"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabicforms'
func tracer() tracing.Trace {
	return tracing.Select("arabicforms")
}

// ErrIO marks failures to read or write a file. Match with errors.Is.
var ErrIO = errors.New("file I/O failure")

// ErrEncoding marks source files that are not valid UTF-8.
var ErrEncoding = errors.New("not valid UTF-8")

type options struct {
	normalize     bool
	restoreSpaces bool
}

// Option configures the file adapters.
type Option func(*options)

// WithNormalization enables the composite-normalization pre-step for
// ContextualizeFile, and NFC recomposition as a post-step for
// DecontextualizeFile.
func WithNormalization() Option {
	return func(o *options) { o.normalize = true }
}

// WithSpaceRepair makes DecontextualizeFile re-insert spaces after
// word-final letter shapes before decoding (see arabicforms.RestoreSpaces).
// It has no effect on ContextualizeFile.
func WithSpaceRepair() Option {
	return func(o *options) { o.restoreSpaces = true }
}

// ContextualizeFile reads the text file src, turns its general Arabic
// letters into shaped presentation forms, and writes the result to dst.
func ContextualizeFile(src, dst string, opts ...Option) error {
	o := gatherOptions(opts)
	return transformFile(src, dst, func(text string) string {
		if o.normalize {
			text = arabicforms.NormalizeComposites(text)
		}
		return arabicforms.Contextualize(text)
	})
}

// DecontextualizeFile reads the text file src, turns its shaped Arabic
// presentation forms back into general letters, and writes the result to
// dst.
func DecontextualizeFile(src, dst string, opts ...Option) error {
	o := gatherOptions(opts)
	return transformFile(src, dst, func(text string) string {
		if o.restoreSpaces {
			text = arabicforms.RestoreSpaces(text)
		}
		text = arabicforms.Decontextualize(text)
		if o.normalize {
			text = arabicforms.RecomposeNFC(text)
		}
		return text
	})
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func transformFile(src, dst string, transform func(string) string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %q: %w: %v", src, ErrIO, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("reading %q: %w", src, ErrEncoding)
	}
	tracer().Infof("transforming %q (%d bytes) into %q", src, len(data), dst)
	out := transform(string(data))
	if err := os.WriteFile(dst, []byte(out), 0644); err != nil {
		return fmt.Errorf("writing %q: %w: %v", dst, ErrIO, err)
	}
	return nil
}
