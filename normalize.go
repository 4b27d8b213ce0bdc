package arabicforms

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// compositeReplacements maps code points that OCR engines and legacy
// encodings emit for characters the glyph table spells differently.
var compositeReplacements = strings.NewReplacer(
	"ہ", "ه", // HEH GOAL > HEH
	"ە", "ه", // AE > HEH
	"ھ", "ه", // HEH DOACHASHMEE > HEH
	"ٴ", "ٔ", // HIGH HAMZA > HAMZA ABOVE
	"۔", ".", // ARABIC FULL STOP > FULL STOP
	"∗", "*", // ASTERISK OPERATOR > ASTERISK
	"ݣ", "ڭ", // KEHEH WITH THREE DOTS ABOVE > NG
)

// NormalizeComposites prepares text for Contextualize: letter variants
// outside the glyph table are replaced by their tabled equivalents, and
// Unicode NFKD decomposes pre-composed characters and ligatures (alef with
// hamza above becomes alef + combining hamza, a lam-alef ligature becomes
// lam + alef, and any presentation forms already present revert to general
// letters).
//
// Contextualize never normalizes implicitly, since NFKD changes the rune
// count, which the core transformations must preserve. Callers opt in.
func NormalizeComposites(text string) string {
	return norm.NFKD.String(compositeReplacements.Replace(text))
}

// RecomposeNFC is the counterpart of NormalizeComposites for the
// decontextualize direction: it re-composes sequences the NFKD pre-step had
// decomposed (alef + combining hamza back to alef with hamza above).
func RecomposeNFC(text string) string {
	return norm.NFC.String(text)
}
