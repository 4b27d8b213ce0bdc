package arabicforms

// RestoreSpaces re-inserts spaces that shaped OCR output dropped between two
// words. Whenever a "tail", i.e. a letter shape that can only occur at the
// end of a word, is directly followed by another shaped Arabic letter
// (harakat and tatweel may sit in between), a space is placed between them.
//
// Two groups of letters produce tails. For connecting letters the final and
// isolated forms are tails by construction: a connecting letter followed by
// another letter would have been shaped initial or medial, so final/isolated
// followed by a letter implies a lost boundary. Non-connecting letters can
// appear mid-word in any shape and are excluded, except for those that Arabic
// and Urdu orthography restricts to word-final position (teh marbuta, alef
// maksura, yeh barree, noon ghunna). Hamza is excluded on both sides of the
// rule, since it legitimately follows a tail inside words like شيء.
//
// RestoreSpaces operates on contextualized text, before Decontextualize, and
// grows the rune count by one per inserted space.
func RestoreSpaces(text string) string {
	runes := []rune(text)
	out := make([]rune, 0, len(runes)+len(runes)/8)
	for i := 0; i < len(runes); i++ {
		out = append(out, runes[i])
		if !tailForm(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && transparentMark(runes[j]) {
			out = append(out, runes[j])
			j++
		}
		if j < len(runes) && followerForm(runes[j]) {
			tracer().Debugf("restoring space before %U", runes[j])
			out = append(out, ' ')
		}
		i = j - 1
	}
	return string(out)
}

// wordFinalOnly lists non-connecting letters that orthography restricts to
// the end of a word.
var wordFinalOnly = map[rune]bool{
	0x0629: true, // TEH MARBUTA
	0x0649: true, // ALEF MAKSURA
	0x06BA: true, // NOON GHUNNA
	0x06D2: true, // YEH BARREE
}

const tatweel = 0x0640
const hamza = 0x0621

func tailForm(r rune) bool {
	general, shape, ok := LookupShaped(r)
	if !ok || (shape != Final && shape != Isolated) {
		return false
	}
	if general == tatweel || general == hamza {
		return false
	}
	return generalIndex[general].Joins || wordFinalOnly[general]
}

func followerForm(r rune) bool {
	general, _, ok := LookupShaped(r)
	return ok && general != hamza && general != tatweel
}

// transparentMark reports characters that may sit between a tail and the
// following word without interrupting the pattern: harakat and tatweel.
func transparentMark(r rune) bool {
	switch r {
	case tatweel,
		0x0670: // SUPERSCRIPT ALEF
		return true
	}
	return r >= 0x064B && r <= 0x0655 // FATHATAN .. HAMZA BELOW
}
