package util

import "strings"

var (
	cellReplacer = strings.NewReplacer("\n", " ", "\r", " ", "\u00a0", " ")

	// Headers are spelled with and without spacing, middle dots and brackets
	// across pages of the same document; all of these are dropped.
	headerReplacer = strings.NewReplacer(
		" ", "", "\u00b7", "", ".", "", "\u318d", "",
		"(", "", ")", "", "[", "", "]", "", "{", "", "}", "",
		":", "", ";", "", ",", "", "-", "", "_", "", "/", "", "\\", "",
	)
)

// NormalizeCell turns a possibly missing cell into single-line trimmed text.
func NormalizeCell(value *string) string {
	if value == nil {
		return ""
	}
	return NormalizeCellString(*value)
}

func NormalizeCellString(value string) string {
	return strings.TrimSpace(cellReplacer.Replace(value))
}

// NormalizeHeader is the key used to match header text against column aliases.
func NormalizeHeader(value string) string {
	return strings.TrimSpace(headerReplacer.Replace(NormalizeCellString(value)))
}

func StringPtr(v string) *string {
	return &v
}
