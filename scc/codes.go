package scc

// parityMask strips the odd parity bit CEA-608 sets on every
// transmitted byte, grounded on word.py's SccWord._decipher_parity_bit.
// This implementation deliberately does not validate the parity bit
// (word.py's own reader does not either — it silently discards it,
// treating malformed parity as acceptable noise rather than a fatal
// decode error).
const parityMask = 0x7F

func stripParity(b byte) byte { return b & parityMask }

// Word is a parity-stripped CEA-608 byte pair, grounded on word.py's
// SccWord.
type Word struct {
	Byte1, Byte2 byte
}

// NewWord strips the parity bit from each byte and returns the
// resulting Word (word.py's SccWord.from_bytes).
func NewWord(b1, b2 byte) Word {
	return Word{Byte1: stripParity(b1), Byte2: stripParity(b2)}
}

// Value packs w's two bytes into a single 16-bit value, the form every
// code table below is keyed by.
func (w Word) Value() int { return int(w.Byte1)<<8 | int(w.Byte2) }

// IsCode reports whether w encodes a control/PAC/mid-row/attribute/
// special/extended code rather than two standard characters, grounded
// on line.py's `scc_word.byte_1 < 0x20` test.
func (w Word) IsCode() bool { return w.Byte1 < 0x20 }

// IsNull reports whether w is CEA-608 padding (word.py's 0x0000 check in
// line.py's process loop).
func (w Word) IsNull() bool { return w.Byte1 == 0 && w.Byte2 == 0 }

// Channel is the CEA-608 caption channel a code word addresses.
type Channel int

const (
	Channel1 Channel = iota
	Channel2
)

func (c Channel) String() string {
	if c == Channel2 {
		return "CC2"
	}
	return "CC1"
}

// Channel reports which channel a code word addresses: bit 0x08 of the
// first byte toggles channel 2 across every code family below (PAC,
// mid-row, control, attribute), grounded on the channel-pair values in
// codes/control_codes.py and friends, e.g. RCL = (0x1420, 0x1C20).
func (w Word) Channel() Channel {
	if w.Byte1&0x08 != 0 {
		return Channel2
	}
	return Channel1
}

// maskChannel clears the channel-2 bit from a code word's packed value
// so both channels' encodings resolve to the same table entry.
func maskChannel(v int) int { return v &^ 0x0800 }

// ToText decodes w as two standard characters, grounded on word.py's
// SccWord.to_text. Used when w is not a code word.
func (w Word) ToText() string {
	var out []byte
	for _, b := range [2]byte{w.Byte1, w.Byte2} {
		if b == 0 {
			continue
		}
		if ch, ok := standardCharacters[b]; ok {
			out = append(out, []byte(ch)...)
		}
	}
	return string(out)
}

// standardCharacters maps a parity-stripped byte to the character it
// represents, grounded on codes/standard_characters.py's
// SCC_STANDARD_CHARACTERS_MAPPING — the CEA-608 character set is mostly
// ASCII with a handful of Latin-1 accented letters swapped in for bytes
// that ASCII does not need in the caption character set.
var standardCharacters = map[byte]string{
	0x20: " ", 0x21: "!", 0x22: "\"", 0x23: "#", 0x24: "$", 0x25: "%",
	0x26: "&", 0x27: "'", 0x28: "(", 0x29: ")", 0x2A: "á", 0x2B: "+",
	0x2C: ",", 0x2D: "-", 0x2E: ".", 0x2F: "/",
	0x30: "0", 0x31: "1", 0x32: "2", 0x33: "3", 0x34: "4", 0x35: "5",
	0x36: "6", 0x37: "7", 0x38: "8", 0x39: "9", 0x3A: ":", 0x3B: ";",
	0x3C: "<", 0x3D: "=", 0x3E: ">", 0x3F: "?", 0x40: "@",
	0x41: "A", 0x42: "B", 0x43: "C", 0x44: "D", 0x45: "E", 0x46: "F",
	0x47: "G", 0x48: "H", 0x49: "I", 0x4A: "J", 0x4B: "K", 0x4C: "L",
	0x4D: "M", 0x4E: "N", 0x4F: "O", 0x50: "P", 0x51: "Q", 0x52: "R",
	0x53: "S", 0x54: "T", 0x55: "U", 0x56: "V", 0x57: "W", 0x58: "X",
	0x59: "Y", 0x5A: "Z", 0x5B: "[", 0x5C: "é", 0x5D: "]",
	0x5E: "í", 0x5F: "ó", 0x60: "ú",
	0x61: "a", 0x62: "b", 0x63: "c", 0x64: "d", 0x65: "e", 0x66: "f",
	0x67: "g", 0x68: "h", 0x69: "i", 0x6A: "j", 0x6B: "k", 0x6C: "l",
	0x6D: "m", 0x6E: "n", 0x6F: "o", 0x70: "p", 0x71: "q", 0x72: "r",
	0x73: "s", 0x74: "t", 0x75: "u", 0x76: "v", 0x77: "w", 0x78: "x",
	0x79: "y", 0x7A: "z", 0x7B: "ç", 0x7C: "÷", 0x7D: "Ñ",
	0x7E: "ñ", 0x7F: "█",
}

// specialCharacters maps a masked 16-bit code value (channel-1 form) to
// the character it represents, grounded on
// codes/special_characters.py's SccSpecialCharacter.
var specialCharacters = map[int]string{
	0x1130: "®", 0x1131: "°", 0x1132: "½", 0x1133: "¿",
	0x1134: "™", 0x1135: "¢", 0x1136: "£", 0x1137: "♪",
	0x1138: "à", 0x1139: " ", 0x113A: "è", 0x113B: "â",
	0x113C: "ê", 0x113D: "î", 0x113E: "ô", 0x113F: "û",
}

// FindSpecialCharacter looks up w as a special character.
func FindSpecialCharacter(w Word) (string, bool) {
	ch, ok := specialCharacters[maskChannel(w.Value())]
	return ch, ok
}

// extendedCharacters maps a masked 16-bit code value (channel-1 form) to
// the character it represents, grounded on
// codes/special_characters.py's extended-character-set entries (the
// Spanish/French/miscellaneous accented-letter row, 0x1220-0x123F
// range). Per the CEA-608 convention that an extended character replaces
// a standard-character fallback already written to the same cell, the
// reader backspaces before writing one — see (*Context).processCode.
var extendedCharacters = map[int]string{
	0x1220: "Á", 0x1221: "É", 0x1222: "Ó", 0x1223: "Ú",
	0x1224: "Ü", 0x1225: "ü", 0x1226: "´", 0x1227: "¡",
	0x1228: "*", 0x1229: "’", 0x122A: "—", 0x122B: "©",
	0x122C: "℠", 0x122D: "•", 0x122E: "“", 0x122F: "”",
	0x1230: "À", 0x1231: "Â", 0x1232: "Ç", 0x1233: "È",
	0x1234: "Ê", 0x1235: "Ë", 0x1236: "ë", 0x1237: "Î",
	0x1238: "Ï", 0x1239: "ï", 0x123A: "Ô", 0x123B: "Ù",
	0x123C: "ù", 0x123D: "Û", 0x123E: "«", 0x123F: "»",
}

// FindExtendedCharacter looks up w as an extended character.
func FindExtendedCharacter(w Word) (string, bool) {
	ch, ok := extendedCharacters[maskChannel(w.Value())]
	return ch, ok
}

// ControlCode enumerates the CEA-608 control codes, grounded on
// codes/control_codes.py's SccControlCode.
type ControlCode int

const (
	_ ControlCode = iota
	RCL
	BS
	AOF
	AON
	DER
	RU2
	RU3
	RU4
	FON
	RDC
	TR
	RTD
	EDM
	CR
	ENM
	EOC
	TO1
	TO2
	TO3
)

var controlCodeNames = map[ControlCode]string{
	RCL: "RCL", BS: "BS", AOF: "AOF", AON: "AON", DER: "DER",
	RU2: "RU2", RU3: "RU3", RU4: "RU4", FON: "FON", RDC: "RDC",
	TR: "TR", RTD: "RTD", EDM: "EDM", CR: "CR", ENM: "ENM", EOC: "EOC",
	TO1: "TO1", TO2: "TO2", TO3: "TO3",
}

func (c ControlCode) String() string { return controlCodeNames[c] }

var controlCodeTable = map[int]ControlCode{
	0x1420: RCL, 0x1421: BS, 0x1422: AOF, 0x1423: AON, 0x1424: DER,
	0x1425: RU2, 0x1426: RU3, 0x1427: RU4, 0x1428: FON, 0x1429: RDC,
	0x142A: TR, 0x142B: RTD, 0x142C: EDM, 0x142D: CR, 0x142E: ENM,
	0x142F: EOC, 0x1721: TO1, 0x1722: TO2, 0x1723: TO3,
}

// FindControlCode looks up w as a control code.
func FindControlCode(w Word) (ControlCode, bool) {
	cc, ok := controlCodeTable[maskChannel(w.Value())]
	return cc, ok
}

// MidRowCode is the pen style a CEA-608 mid-row code selects, grounded
// on codes/mid_row_codes.py's SccMidRowCode.
type MidRowCode struct {
	Color     string
	Italic    bool
	Underline bool
}

var midRowCodeTable = map[int]MidRowCode{
	0x1120: {Color: "white"}, 0x1121: {Color: "white", Underline: true},
	0x1122: {Color: "green"}, 0x1123: {Color: "green", Underline: true},
	0x1124: {Color: "blue"}, 0x1125: {Color: "blue", Underline: true},
	0x1126: {Color: "cyan"}, 0x1127: {Color: "cyan", Underline: true},
	0x1128: {Color: "red"}, 0x1129: {Color: "red", Underline: true},
	0x112A: {Color: "yellow"}, 0x112B: {Color: "yellow", Underline: true},
	0x112C: {Color: "magenta"}, 0x112D: {Color: "magenta", Underline: true},
	0x112E: {Color: "white", Italic: true},
	0x112F: {Color: "white", Italic: true, Underline: true},
}

// FindMidRowCode looks up w as a mid-row code.
func FindMidRowCode(w Word) (MidRowCode, bool) {
	mr, ok := midRowCodeTable[maskChannel(w.Value())]
	return mr, ok
}

// PAC is a decoded Preamble Address Code, grounded on
// codes/preambles_address_codes.py's SccPreambleAddressCode.
type PAC struct {
	Row       int
	Indent    int // -1 if this PAC sets color/style rather than indent
	Color     string
	Italic    bool
	Underline bool
}

var pacRowMapping = map[[2]int]int{
	{0x01, 0x40}: 1, {0x01, 0x60}: 2, {0x02, 0x40}: 3, {0x02, 0x60}: 4,
	{0x05, 0x40}: 5, {0x05, 0x60}: 6, {0x06, 0x40}: 7, {0x06, 0x60}: 8,
	{0x07, 0x40}: 9, {0x07, 0x60}: 10, {0x00, 0x40}: 11, {0x03, 0x40}: 12,
	{0x03, 0x60}: 13, {0x04, 0x40}: 14, {0x04, 0x60}: 15,
}

var pacColorBits = map[int]string{
	0x02: "green", 0x03: "green", 0x04: "blue", 0x05: "blue",
	0x06: "cyan", 0x07: "cyan", 0x08: "red", 0x09: "red",
	0x0A: "yellow", 0x0B: "yellow", 0x0C: "magenta", 0x0D: "magenta",
}

// FindPAC looks up w as a preamble address code.
func FindPAC(w Word) (PAC, bool) {
	if w.Byte1 < 0x10 || w.Byte1 > 0x1F {
		return PAC{}, false
	}
	if w.Byte2 < 0x40 || w.Byte2 > 0x7F {
		return PAC{}, false
	}
	key := [2]int{int(w.Byte1&0x0F) % 8, int(w.Byte2 & 0x60)}
	row, ok := pacRowMapping[key]
	if !ok {
		return PAC{}, false
	}
	bits := int(w.Byte2 & 0x1F)
	pac := PAC{Row: row, Indent: -1, Underline: bits%2 == 1}
	if bits <= 0x0F {
		switch bits {
		case 0x00, 0x01, 0x0E, 0x0F:
			pac.Color = "white"
		default:
			pac.Color = pacColorBits[bits]
		}
		pac.Italic = bits == 0x0E || bits == 0x0F
	} else {
		pac.Indent = ((bits - 0x10) - (bits % 2)) * 2
	}
	return pac, true
}

// AttributeCode is a decoded background/foreground attribute code,
// grounded on codes/attribute_codes.py's SccAttributeCode.
type AttributeCode struct {
	Color      string
	Alpha      uint8
	Background bool
	Underline  bool
}

var attributeCodeTable = map[int]AttributeCode{
	0x1020: {Color: "white", Alpha: 0xFF, Background: true},
	0x1021: {Color: "white", Alpha: 0x88, Background: true},
	0x1022: {Color: "green", Alpha: 0xFF, Background: true},
	0x1023: {Color: "green", Alpha: 0x88, Background: true},
	0x1024: {Color: "blue", Alpha: 0xFF, Background: true},
	0x1025: {Color: "blue", Alpha: 0x88, Background: true},
	0x1026: {Color: "cyan", Alpha: 0xFF, Background: true},
	0x1027: {Color: "cyan", Alpha: 0x88, Background: true},
	0x1028: {Color: "red", Alpha: 0xFF, Background: true},
	0x1029: {Color: "red", Alpha: 0x88, Background: true},
	0x102A: {Color: "yellow", Alpha: 0xFF, Background: true},
	0x102B: {Color: "yellow", Alpha: 0x88, Background: true},
	0x102C: {Color: "magenta", Alpha: 0xFF, Background: true},
	0x102D: {Color: "magenta", Alpha: 0x88, Background: true},
	0x102E: {Color: "black", Alpha: 0xFF, Background: true},
	0x102F: {Color: "black", Alpha: 0x88, Background: true},
	0x172D: {Color: "transparent", Alpha: 0x00, Background: true},
	0x172E: {Color: "black", Alpha: 0xFF, Background: false},
	0x172F: {Color: "black", Alpha: 0xFF, Background: false, Underline: true},
}

// FindAttributeCode looks up w as an attribute code.
func FindAttributeCode(w Word) (AttributeCode, bool) {
	ac, ok := attributeCodeTable[maskChannel(w.Value())]
	return ac, ok
}
