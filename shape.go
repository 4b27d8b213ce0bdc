package arabicforms

// Shapes computes for every rune of text the positional shape it must take.
// Runes outside the Arabic letter repertoire get shape None; they also break
// the joining link between their neighbors.
//
// The decision for one position depends only on the rune itself and its
// immediate neighbors:
//
//	prev link | next link | shape
//	----------+-----------+----------------------------------------
//	no        | no        | Isolated
//	no        | yes       | Initial  (Isolated if no initial form)
//	yes       | no        | Final
//	yes       | yes       | Medial   (Final if no medial form)
//
// A prev link exists when the preceding rune is a letter that connects to a
// following letter; a next link exists when the following rune is a letter
// and the current letter itself connects onward. Non-connecting letters thus
// always resolve to Isolated or Final.
func Shapes(text string) []Shape {
	return shapes([]rune(text))
}

func shapes(text []rune) []Shape {
	result := make([]Shape, len(text))
	for i, r := range text {
		letter, ok := generalIndex[r]
		if !ok {
			result[i] = None
			continue
		}
		hasPrevLink := false
		if i > 0 {
			if prev, isLetter := generalIndex[text[i-1]]; isLetter {
				hasPrevLink = prev.Joins
			}
		}
		hasNextLink := false
		if letter.Joins && i+1 < len(text) {
			_, hasNextLink = generalIndex[text[i+1]]
		}
		switch {
		case !hasPrevLink && !hasNextLink:
			result[i] = Isolated
		case !hasPrevLink && hasNextLink:
			if letter.Initial != 0 {
				result[i] = Initial
			} else {
				result[i] = Isolated
			}
		case hasPrevLink && !hasNextLink:
			result[i] = Final
		default:
			if letter.Medial != 0 {
				result[i] = Medial
			} else {
				result[i] = Final
			}
		}
	}
	return result
}
