package lexicon

import "strings"

// arpabetMap maps ARPAbet phonemes (without stress markers) to IPA symbols.
var arpabetMap = map[string]string{
	"AA": "ɑ",
	"AE": "æ",
	"AH": "ʌ",
	"AO": "ɔ",
	"AW": "aʊ",
	"AY": "aɪ",
	"B":  "b",
	"CH": "tʃ",
	"D":  "d",
	"DH": "ð",
	"EH": "ɛ",
	"ER": "ɝ",
	"EY": "eɪ",
	"F":  "f",
	"G":  "ɡ",
	"HH": "h",
	"IH": "ɪ",
	"IY": "i",
	"JH": "dʒ",
	"K":  "k",
	"L":  "l",
	"M":  "m",
	"N":  "n",
	"NG": "ŋ",
	"OW": "oʊ",
	"OY": "ɔɪ",
	"P":  "p",
	"R":  "ɹ",
	"S":  "s",
	"SH": "ʃ",
	"T":  "t",
	"TH": "θ",
	"UH": "ʊ",
	"UW": "u",
	"V":  "v",
	"W":  "w",
	"Y":  "j",
	"Z":  "z",
	"ZH": "ʒ",
}

// ToIPA renders a space-separated ARPAbet phoneme string as an IPA
// transcription wrapped in slashes. Stress digits are stripped and symbols
// without an IPA equivalent are dropped.
func ToIPA(phonemes string) string {
	var b strings.Builder
	b.WriteByte('/')
	for _, p := range strings.Fields(phonemes) {
		if ipa, ok := arpabetMap[stripStress(strings.ToUpper(p))]; ok {
			b.WriteString(ipa)
		}
	}
	b.WriteByte('/')
	return b.String()
}

// stripStress removes the trailing stress marker (0, 1, 2) from an ARPAbet phoneme.
func stripStress(phoneme string) string {
	if phoneme == "" {
		return phoneme
	}
	last := phoneme[len(phoneme)-1]
	if last == '0' || last == '1' || last == '2' {
		return phoneme[:len(phoneme)-1]
	}
	return phoneme
}
