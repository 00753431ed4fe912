package galaxy

import (
	"strconv"
	"strings"
)

// nameParts are the syllables used for synthesized names.
var nameParts = []string{
	"ha", "he", "hi", "ho", "hu", "ca", "ce", "ci", "co", "cu",
	"sa", "se", "si", "so", "su", "ja", "ji", "je", "jo", "ju", "an",
	"pa", "pe", "pi", "po", "pu", "ta", "te", "ti", "to", "tu",
	"kle", "ke", "ki", "ko", "ku", "sha", "she", "shi", "sho", "shu",
	"hor", "cer", "cur", "her", "hur", "sar", "arn", "irn", "kler",
	"ka", "la", "nar", "kar", "bar", "dar", "blar", "ger", "yur",
	"zor", "for", "wor", "gor", "noth", "roth", "moth", "zoth",
	"loth", "nith", "lith", "sith", "dith", "ith", "oth", "orb", "urb",
	"er", "zer", "ze", "zera", "ter", "nor", "za", "zi", "di", "mi",
	"per", "pir", "pera", "par", "sta", "mor", "kur", "ker", "ni",
	"ler", "der", "ber", "shar", "sher", "mer", "wer", "fer", "fra",
	"gra", "bra", "zir", "dir", "tir", "sir", "mir", "nir", "por",
	"lir", "bir", "dra", "tha", "the", "tho",
	"ba", "be", "bi", "bo", "tis", "ris",
	"beur", "bu", "lur", "mur", "da", "de", "do",
	"le", "li", "lo", "lu", "loo", "koo",
	"lee", "kee", "du", "lor", "ser", "fu",
	"wi", "na", "ne", "no", "noo", "ra", "ri", "ro", "roo", "va",
	"ve", "vi", "vo", "vu", "bre", "dre", "pre", "tre", "gre",
}

// GenerateName synthesizes a capitalized name from partsNum syllables.
func (c *Context) GenerateName(partsNum int) string {
	var b strings.Builder
	for i := 0; i < partsNum; i++ {
		b.WriteString(nameParts[c.rng.IntN(len(nameParts))])
	}
	s := b.String()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// LetterDesignation returns the sequential planet suffix: A, B, ... Z,
// then AA, AB and so on.
func LetterDesignation(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return LetterDesignation(i/26-1) + string(rune('A'+i%26))
}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"}

// RomanNumeral returns the moon suffix for ordinal n (1-based), falling
// back to plain integers past VIII.
func RomanNumeral(n int) string {
	if n >= 1 && n <= len(romanNumerals) {
		return romanNumerals[n-1]
	}
	return strconv.Itoa(n)
}

// DefaultNamePool returns the stock star names assigned to systems before
// synthesized overflow names kick in.
func DefaultNamePool() []string {
	return []string{
		"Acamar", "Achernar", "Achird", "Acrux", "Acubens", "Adhara",
		"Albali", "Albireo", "Alcor", "Alcyone", "Aldebaran", "Alderamin",
		"Algenib", "Algieba", "Algol", "Alhena", "Alioth", "Alkaid",
		"Almach", "Alnair", "Alnilam", "Alnitak", "Alphard", "Alphecca",
		"Alpheratz", "Altair", "Aludra", "Ancha", "Ankaa", "Antares",
		"Arcturus", "Arneb", "Ascella", "Asellus", "Aspidiske", "Atik",
		"Atlas", "Atria", "Avior", "Azha", "Baten", "Beid",
		"Bellatrix", "Betelgeuse", "Biham", "Canopus", "Capella", "Caph",
		"Castor", "Celaeno", "Chara", "Chertan", "Cursa", "Dabih",
		"Deneb", "Denebola", "Diphda", "Dubhe", "Electra", "Elnath",
		"Eltanin", "Enif", "Errai", "Fomalhaut", "Furud", "Gacrux",
		"Gienah", "Gomeisa", "Graffias", "Grumium", "Hadar", "Hamal",
		"Homam", "Izar", "Jabbah", "Kaus", "Keid", "Kitalpha",
		"Kochab", "Kornephoros", "Kraz", "Kurhah", "Lesath", "Maia",
		"Marfik", "Markab", "Matar", "Mebsuta", "Megrez", "Meissa",
		"Mekbuda", "Menkalinan", "Menkar", "Menkent", "Merak", "Merope",
		"Mesarthim", "Miaplacidus", "Mimosa", "Minkar", "Mintaka", "Mira",
		"Mirach", "Mirfak", "Mizar", "Muphrid", "Muscida", "Naos",
		"Nashira", "Nekkar", "Nihal", "Nunki", "Nusakan", "Peacock",
		"Phact", "Phecda", "Pherkad", "Polaris", "Pollux", "Porrima",
		"Procyon", "Propus", "Rasalgethi", "Rasalhague", "Rastaban", "Regulus",
		"Rigel", "Rukbat", "Sabik", "Sadachbia", "Sadalbari", "Sadalmelik",
		"Sadr", "Saiph", "Sargas", "Scheat", "Schedar", "Segin",
		"Seginus", "Sheliak", "Sheratan", "Sirius", "Skat", "Spica",
		"Suhail", "Sulafat", "Syrma", "Tarazed", "Thuban", "Unukalhai",
		"Vega", "Vindemiatrix", "Wasat", "Wazn", "Yildun", "Zaniah",
		"Zaurak", "Zavijava", "Zosma", "Zubenelgenubi",
	}
}
