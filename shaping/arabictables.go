package shaping

// joiningType is the Joining_Type property of ArabicShaping.txt.
type joiningType int8

const (
	nonJoining  joiningType = iota // U
	rightJoin                      // R: joins to the preceding letter only
	dualJoin                       // D: joins on both sides
	joinCausing                    // C: tatweel
	transparent                    // T: marks, skipped for joining
)

// forms holds the presentation forms of a letter, in order isolated, final,
// initial, medial. Right-joining letters have zero initial and medial forms.
type forms [4]rune

const (
	isolated = iota
	final
	initial
	medial
)

type letter struct {
	jt    joiningType
	forms forms
}

// arabicLetters maps base letters to their joining type and presentation
// forms. Letters missing in the table are treated as non-joining.
var arabicLetters = map[rune]letter{
	0x0621: {nonJoining, forms{0xFE80, 0, 0, 0}},                // HAMZA
	0x0622: {rightJoin, forms{0xFE81, 0xFE82, 0, 0}},            // ALEF WITH MADDA ABOVE
	0x0623: {rightJoin, forms{0xFE83, 0xFE84, 0, 0}},            // ALEF WITH HAMZA ABOVE
	0x0624: {rightJoin, forms{0xFE85, 0xFE86, 0, 0}},            // WAW WITH HAMZA ABOVE
	0x0625: {rightJoin, forms{0xFE87, 0xFE88, 0, 0}},            // ALEF WITH HAMZA BELOW
	0x0626: {dualJoin, forms{0xFE89, 0xFE8A, 0xFE8B, 0xFE8C}},   // YEH WITH HAMZA ABOVE
	0x0627: {rightJoin, forms{0xFE8D, 0xFE8E, 0, 0}},            // ALEF
	0x0628: {dualJoin, forms{0xFE8F, 0xFE90, 0xFE91, 0xFE92}},   // BEH
	0x0629: {rightJoin, forms{0xFE93, 0xFE94, 0, 0}},            // TEH MARBUTA
	0x062A: {dualJoin, forms{0xFE95, 0xFE96, 0xFE97, 0xFE98}},   // TEH
	0x062B: {dualJoin, forms{0xFE99, 0xFE9A, 0xFE9B, 0xFE9C}},   // THEH
	0x062C: {dualJoin, forms{0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0}},   // JEEM
	0x062D: {dualJoin, forms{0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4}},   // HAH
	0x062E: {dualJoin, forms{0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8}},   // KHAH
	0x062F: {rightJoin, forms{0xFEA9, 0xFEAA, 0, 0}},            // DAL
	0x0630: {rightJoin, forms{0xFEAB, 0xFEAC, 0, 0}},            // THAL
	0x0631: {rightJoin, forms{0xFEAD, 0xFEAE, 0, 0}},            // REH
	0x0632: {rightJoin, forms{0xFEAF, 0xFEB0, 0, 0}},            // ZAIN
	0x0633: {dualJoin, forms{0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4}},   // SEEN
	0x0634: {dualJoin, forms{0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8}},   // SHEEN
	0x0635: {dualJoin, forms{0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC}},   // SAD
	0x0636: {dualJoin, forms{0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0}},   // DAD
	0x0637: {dualJoin, forms{0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4}},   // TAH
	0x0638: {dualJoin, forms{0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8}},   // ZAH
	0x0639: {dualJoin, forms{0xFEC9, 0xFECA, 0xFECB, 0xFECC}},   // AIN
	0x063A: {dualJoin, forms{0xFECD, 0xFECE, 0xFECF, 0xFED0}},   // GHAIN
	0x0640: {joinCausing, forms{0x0640, 0x0640, 0x0640, 0x0640}}, // TATWEEL
	0x0641: {dualJoin, forms{0xFED1, 0xFED2, 0xFED3, 0xFED4}},   // FEH
	0x0642: {dualJoin, forms{0xFED5, 0xFED6, 0xFED7, 0xFED8}},   // QAF
	0x0643: {dualJoin, forms{0xFED9, 0xFEDA, 0xFEDB, 0xFEDC}},   // KAF
	0x0644: {dualJoin, forms{0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0}},   // LAM
	0x0645: {dualJoin, forms{0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4}},   // MEEM
	0x0646: {dualJoin, forms{0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8}},   // NOON
	0x0647: {dualJoin, forms{0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC}},   // HEH
	0x0648: {rightJoin, forms{0xFEED, 0xFEEE, 0, 0}},            // WAW
	0x0649: {dualJoin, forms{0xFEEF, 0xFEF0, 0xFBE8, 0xFBE9}},   // ALEF MAKSURA
	0x064A: {dualJoin, forms{0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4}},   // YEH
	0x0671: {rightJoin, forms{0xFB50, 0xFB51, 0, 0}},            // ALEF WASLA
	0x067E: {dualJoin, forms{0xFB56, 0xFB57, 0xFB58, 0xFB59}},   // PEH
	0x0686: {dualJoin, forms{0xFB7A, 0xFB7B, 0xFB7C, 0xFB7D}},   // TCHEH
	0x0698: {rightJoin, forms{0xFB8A, 0xFB8B, 0, 0}},            // JEH
	0x06A9: {dualJoin, forms{0xFB8E, 0xFB8F, 0xFB90, 0xFB91}},   // KEHEH
	0x06AF: {dualJoin, forms{0xFB92, 0xFB93, 0xFB94, 0xFB95}},   // GAF
	0x06CC: {dualJoin, forms{0xFBFC, 0xFBFD, 0xFBFE, 0xFBFF}},   // FARSI YEH
}

const lam = 0x0644

// lamAlef maps an alef variant following lam to the isolated and final
// forms of the ligature.
var lamAlef = map[rune][2]rune{
	0x0622: {0xFEF5, 0xFEF6},
	0x0623: {0xFEF7, 0xFEF8},
	0x0625: {0xFEF9, 0xFEFA},
	0x0627: {0xFEFB, 0xFEFC},
}

// joiningTypeOf returns the joining type of r. Combining marks of the
// Arabic block (harakat, superscript alef) are transparent.
func joiningTypeOf(r rune) joiningType {
	if l, ok := arabicLetters[r]; ok {
		return l.jt
	}
	if (r >= 0x064B && r <= 0x065F) || r == 0x0670 || (r >= 0x06D6 && r <= 0x06DC) ||
		(r >= 0x06DF && r <= 0x06E4) || r == 0x06E7 || r == 0x06E8 || (r >= 0x06EA && r <= 0x06ED) {
		return transparent
	}
	return nonJoining
}

// isArabic is true for runes of the Arabic block and the presentation forms.
func isArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) || (r >= 0xFB50 && r <= 0xFDFF) || (r >= 0xFE70 && r <= 0xFEFF)
}
