package arabicforms

// Contextualize turns the general Arabic letters of text into their shaped
// presentation forms. Characters outside the Arabic letter repertoire,
// including harakat, digits, punctuation and already-shaped presentation
// forms, are copied unchanged. The result has exactly one rune per input
// rune.
func Contextualize(text string) string {
	return string(ContextualizeRunes([]rune(text)))
}

// ContextualizeRunes is Contextualize for a rune slice. The input slice is
// not modified.
func ContextualizeRunes(text []rune) []rune {
	out := make([]rune, len(text))
	ss := shapes(text)
	for i, r := range text {
		if ss[i] == None {
			out[i] = r
			continue
		}
		out[i] = generalIndex[r].shaped(ss[i])
	}
	return out
}

// Decontextualize turns shaped Arabic presentation forms in text back into
// their general forms. This is a pure per-rune table lookup: a shaped form is
// decoded regardless of whether its position matches its shape, and runes
// that are not shaped forms, general letters included, pass through
// unchanged. Decontextualize is therefore idempotent, and it preserves the
// rune count.
func Decontextualize(text string) string {
	return string(DecontextualizeRunes([]rune(text)))
}

// DecontextualizeRunes is Decontextualize for a rune slice. The input slice
// is not modified.
func DecontextualizeRunes(text []rune) []rune {
	out := make([]rune, len(text))
	for i, r := range text {
		if general, _, ok := LookupShaped(r); ok {
			out[i] = general
		} else {
			out[i] = r
		}
	}
	return out
}
