package arabicforms

// Shape classifies the positional glyph variant of an Arabic letter within
// a letter block. The zero value None marks characters that are not Arabic
// letters and pass through transformations unchanged.
type Shape int8

const (
	None Shape = iota
	Isolated
	Initial
	Medial
	Final
)

func (s Shape) String() string {
	switch s {
	case Isolated:
		return "isolated"
	case Initial:
		return "initial"
	case Medial:
		return "medial"
	case Final:
		return "final"
	}
	return "none"
}

// Letter describes one letter of the Arabic repertoire: its general code
// point, the presentation-form code points of its positional shapes, and its
// joining behavior.
//
// Non-connecting letters never join to a following letter and therefore have
// no initial or medial presentation form; those fields are 0. Letters whose
// final shape coincides with the isolated one (hamza) carry that code point
// in both fields.
type Letter struct {
	General  rune
	Isolated rune
	Initial  rune // 0 for non-connecting letters
	Medial   rune // 0 for non-connecting letters
	Final    rune
	Joins    bool // letter connects to a following letter
}

// shaped returns the presentation form of l for shape s. Initial and medial
// requests fall back to the isolated and final form for letters that lack
// them, so the result is never 0.
func (l Letter) shaped(s Shape) rune {
	switch s {
	case Initial:
		if l.Initial != 0 {
			return l.Initial
		}
		return l.Isolated
	case Medial:
		if l.Medial != 0 {
			return l.Medial
		}
		return l.Final
	case Final:
		return l.Final
	}
	return l.Isolated
}

// letters enumerates the supported Arabic letter repertoire: the standard
// Arabic block, tatweel, and the Persian/Urdu extensions that have
// presentation forms in the Arabic Presentation Forms-A and -B blocks.
//
// Tatweel is listed as a dual-joining letter whose four shapes are all the
// tatweel code point itself, so that stretched words (e.g. "ســـأل") keep
// their letters connected across the elongation.
var letters = []Letter{
	{General: 0x0621, Isolated: 0xFE80, Final: 0xFE80},                                               // HAMZA (isolated form only)
	{General: 0x0622, Isolated: 0xFE81, Final: 0xFE82},                                               // ALEF WITH MADDA ABOVE
	{General: 0x0623, Isolated: 0xFE83, Final: 0xFE84},                                               // ALEF WITH HAMZA ABOVE
	{General: 0x0624, Isolated: 0xFE85, Final: 0xFE86},                                               // WAW WITH HAMZA ABOVE
	{General: 0x0625, Isolated: 0xFE87, Final: 0xFE88},                                               // ALEF WITH HAMZA BELOW
	{General: 0x0626, Isolated: 0xFE89, Initial: 0xFE8B, Medial: 0xFE8C, Final: 0xFE8A, Joins: true}, // YEH WITH HAMZA ABOVE
	{General: 0x0627, Isolated: 0xFE8D, Final: 0xFE8E},                                               // ALEF
	{General: 0x0628, Isolated: 0xFE8F, Initial: 0xFE91, Medial: 0xFE92, Final: 0xFE90, Joins: true}, // BEH
	{General: 0x0629, Isolated: 0xFE93, Final: 0xFE94},                                               // TEH MARBUTA
	{General: 0x062A, Isolated: 0xFE95, Initial: 0xFE97, Medial: 0xFE98, Final: 0xFE96, Joins: true}, // TEH
	{General: 0x062B, Isolated: 0xFE99, Initial: 0xFE9B, Medial: 0xFE9C, Final: 0xFE9A, Joins: true}, // THEH
	{General: 0x062C, Isolated: 0xFE9D, Initial: 0xFE9F, Medial: 0xFEA0, Final: 0xFE9E, Joins: true}, // JEEM
	{General: 0x062D, Isolated: 0xFEA1, Initial: 0xFEA3, Medial: 0xFEA4, Final: 0xFEA2, Joins: true}, // HAH
	{General: 0x062E, Isolated: 0xFEA5, Initial: 0xFEA7, Medial: 0xFEA8, Final: 0xFEA6, Joins: true}, // KHAH
	{General: 0x062F, Isolated: 0xFEA9, Final: 0xFEAA},                                               // DAL
	{General: 0x0630, Isolated: 0xFEAB, Final: 0xFEAC},                                               // THAL
	{General: 0x0631, Isolated: 0xFEAD, Final: 0xFEAE},                                               // REH
	{General: 0x0632, Isolated: 0xFEAF, Final: 0xFEB0},                                               // ZAIN
	{General: 0x0633, Isolated: 0xFEB1, Initial: 0xFEB3, Medial: 0xFEB4, Final: 0xFEB2, Joins: true}, // SEEN
	{General: 0x0634, Isolated: 0xFEB5, Initial: 0xFEB7, Medial: 0xFEB8, Final: 0xFEB6, Joins: true}, // SHEEN
	{General: 0x0635, Isolated: 0xFEB9, Initial: 0xFEBB, Medial: 0xFEBC, Final: 0xFEBA, Joins: true}, // SAD
	{General: 0x0636, Isolated: 0xFEBD, Initial: 0xFEBF, Medial: 0xFEC0, Final: 0xFEBE, Joins: true}, // DAD
	{General: 0x0637, Isolated: 0xFEC1, Initial: 0xFEC3, Medial: 0xFEC4, Final: 0xFEC2, Joins: true}, // TAH
	{General: 0x0638, Isolated: 0xFEC5, Initial: 0xFEC7, Medial: 0xFEC8, Final: 0xFEC6, Joins: true}, // ZAH
	{General: 0x0639, Isolated: 0xFEC9, Initial: 0xFECB, Medial: 0xFECC, Final: 0xFECA, Joins: true}, // AIN
	{General: 0x063A, Isolated: 0xFECD, Initial: 0xFECF, Medial: 0xFED0, Final: 0xFECE, Joins: true}, // GHAIN
	{General: 0x0640, Isolated: 0x0640, Initial: 0x0640, Medial: 0x0640, Final: 0x0640, Joins: true}, // TATWEEL
	{General: 0x0641, Isolated: 0xFED1, Initial: 0xFED3, Medial: 0xFED4, Final: 0xFED2, Joins: true}, // FEH
	{General: 0x0642, Isolated: 0xFED5, Initial: 0xFED7, Medial: 0xFED8, Final: 0xFED6, Joins: true}, // QAF
	{General: 0x0643, Isolated: 0xFED9, Initial: 0xFEDB, Medial: 0xFEDC, Final: 0xFEDA, Joins: true}, // KAF
	{General: 0x0644, Isolated: 0xFEDD, Initial: 0xFEDF, Medial: 0xFEE0, Final: 0xFEDE, Joins: true}, // LAM
	{General: 0x0645, Isolated: 0xFEE1, Initial: 0xFEE3, Medial: 0xFEE4, Final: 0xFEE2, Joins: true}, // MEEM
	{General: 0x0646, Isolated: 0xFEE5, Initial: 0xFEE7, Medial: 0xFEE8, Final: 0xFEE6, Joins: true}, // NOON
	{General: 0x0647, Isolated: 0xFEE9, Initial: 0xFEEB, Medial: 0xFEEC, Final: 0xFEEA, Joins: true}, // HEH
	{General: 0x0648, Isolated: 0xFEED, Final: 0xFEEE},                                               // WAW
	{General: 0x0649, Isolated: 0xFEEF, Final: 0xFEF0},                                               // ALEF MAKSURA
	{General: 0x064A, Isolated: 0xFEF1, Initial: 0xFEF3, Medial: 0xFEF4, Final: 0xFEF2, Joins: true}, // YEH
	{General: 0x0671, Isolated: 0xFB50, Final: 0xFB51},                                               // ALEF WASLA
	{General: 0x0679, Isolated: 0xFB66, Initial: 0xFB68, Medial: 0xFB69, Final: 0xFB67, Joins: true}, // TTEH
	{General: 0x067E, Isolated: 0xFB56, Initial: 0xFB58, Medial: 0xFB59, Final: 0xFB57, Joins: true}, // PEH
	{General: 0x0686, Isolated: 0xFB7A, Initial: 0xFB7C, Medial: 0xFB7D, Final: 0xFB7B, Joins: true}, // TCHEH
	{General: 0x0688, Isolated: 0xFB88, Final: 0xFB89},                                               // DDAL
	{General: 0x0691, Isolated: 0xFB8C, Final: 0xFB8D},                                               // RREH
	{General: 0x0698, Isolated: 0xFB8A, Final: 0xFB8B},                                               // JEH
	{General: 0x06A9, Isolated: 0xFB8E, Initial: 0xFB90, Medial: 0xFB91, Final: 0xFB8F, Joins: true}, // KEHEH
	{General: 0x06AD, Isolated: 0xFBD3, Initial: 0xFBD5, Medial: 0xFBD6, Final: 0xFBD4, Joins: true}, // NG
	{General: 0x06AF, Isolated: 0xFB92, Initial: 0xFB94, Medial: 0xFB95, Final: 0xFB93, Joins: true}, // GAF
	{General: 0x06BA, Isolated: 0xFB9E, Final: 0xFB9F},                                               // NOON GHUNNA
	{General: 0x06CC, Isolated: 0xFBFC, Initial: 0xFBFE, Medial: 0xFBFF, Final: 0xFBFD, Joins: true}, // FARSI YEH
	{General: 0x06D2, Isolated: 0xFBAE, Final: 0xFBAF},                                               // YEH BARREE
}

type shapedEntry struct {
	general rune
	shape   Shape
}

var generalIndex map[rune]Letter
var shapedIndex map[rune]shapedEntry

func init() {
	generalIndex = make(map[rune]Letter, len(letters))
	shapedIndex = make(map[rune]shapedEntry, 4*len(letters))
	for _, l := range letters {
		generalIndex[l.General] = l
		// Register the isolated form first: letters whose final form
		// coincides with it (hamza) then report shape Isolated.
		registerShaped(l.Isolated, l.General, Isolated)
		registerShaped(l.Final, l.General, Final)
		registerShaped(l.Initial, l.General, Initial)
		registerShaped(l.Medial, l.General, Medial)
	}
	tracer().Debugf("glyph table holds %d letters, %d shaped forms",
		len(generalIndex), len(shapedIndex))
}

func registerShaped(form rune, general rune, shape Shape) {
	if form == 0 {
		return
	}
	if _, exists := shapedIndex[form]; exists {
		return
	}
	shapedIndex[form] = shapedEntry{general: general, shape: shape}
}

// LookupGeneral finds the letter entry for a general-form code point.
// ok is false for any rune outside the supported repertoire; callers treat
// such runes as pass-through characters, not as errors.
func LookupGeneral(r rune) (Letter, bool) {
	l, ok := generalIndex[r]
	return l, ok
}

// LookupShaped finds the general-form code point and the shape encoded by a
// presentation-form code point. ok is false for runes that are not shaped
// Arabic letter forms.
func LookupShaped(r rune) (general rune, shape Shape, ok bool) {
	e, ok := shapedIndex[r]
	if !ok {
		return 0, None, false
	}
	return e.general, e.shape, true
}
