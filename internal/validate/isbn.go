// Package validate содержит форматные проверки вариантных полей закладок.
package validate

import "strings"

// canonicalISBN убирает дефисы и пробелы, как принято записывать ISBN.
func canonicalISBN(s string) string {
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// IsISBN10 проверяет контрольную сумму ISBN-10.
// Последний символ может быть 'X' (значение 10); реестры не опрашиваются.
func IsISBN10(s string) bool {
	s = canonicalISBN(s)
	if len(s) != 10 {
		return false
	}
	sum := 0
	for i, c := range s {
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case (c == 'X' || c == 'x') && i == 9:
			v = 10
		default:
			return false
		}
		sum += (10 - i) * v
	}
	return sum%11 == 0
}

// IsISBN13 проверяет контрольную сумму ISBN-13 (префиксы 978/979).
func IsISBN13(s string) bool {
	s = canonicalISBN(s)
	if len(s) != 13 {
		return false
	}
	if !strings.HasPrefix(s, "978") && !strings.HasPrefix(s, "979") {
		return false
	}
	sum := 0
	for i, c := range s {
		if c < '0' || c > '9' {
			return false
		}
		v := int(c - '0')
		if i%2 == 1 {
			v *= 3
		}
		sum += v
	}
	return sum%10 == 0
}

// IsISBN принимает строку, проходящую проверку ISBN-10 или ISBN-13.
func IsISBN(s string) bool {
	return IsISBN10(s) || IsISBN13(s)
}
