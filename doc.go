/*
Package arabicforms converts Arabic text between its general (context-free)
Unicode representation and its contextual glyph representation, and back.

Arabic letters have four different shapes, depending on their position in the
letter block: initial, medial, final, isolated. (Letter blocks are groups of
one or more connected letters. Some words consist of one letter block, others
of more than one.) Unicode contains up to five different code points for each
letter: the general form used in ordinary text, plus presentation forms for
the isolated, initial, medial and final shape. For example, the letter ba':

	general:	0628	ب
	isolated:	FE8F	ﺏ
	final:  	FE90	ﺐ
	medial: 	FE92	ﺒ
	initial: 	FE91	ﺑ

Normally, only the general form is stored in a text, and font shaping selects
the glyph from context. OCR training data and legacy documents instead carry
the presentation forms explicitly, which is where the two directions of this
package come in:

  - Contextualize turns general letters of a string into their shaped
    presentation forms, deciding each letter's shape from its joining
    behavior and its immediate neighbors.
  - Decontextualize maps shaped presentation forms back to their general
    forms by plain table lookup.

Both transformations map characters one-to-one: characters outside the Arabic
letter repertoire (digits, punctuation, harakat, foreign scripts) pass through
unchanged, and the rune count of the output always equals that of the input.

Subpackage textfile wraps the transformations in file-to-file adapters,
subpackage histogram builds per-typeface character count tables on top of
Contextualize.

Further Reading

	https://en.wikipedia.org/wiki/Arabic_script_in_Unicode#Contextual_forms
	https://www.unicode.org/charts/PDF/UFB50.pdf
	https://www.unicode.org/charts/PDF/UFE70.pdf

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package arabicforms

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arabicforms'
func tracer() tracing.Trace {
	return tracing.Select("arabicforms")
}
