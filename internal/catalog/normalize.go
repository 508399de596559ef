package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonDigitRe    = regexp.MustCompile(`[^0-9]`)
	placeholderRe = regexp.MustCompile(`^0+$`)
)

// NormalizeBarcode canonicalizes a scanned barcode for use as a catalog
// key. It strips non-digits, rejects placeholder codes, widens UPC-A to
// EAN-13 and validates the check digit. Returns empty string for codes
// that should not be used as keys; shorter retailer-internal codes are
// passed through unchanged.
func NormalizeBarcode(barcode string) string {
	bc := nonDigitRe.ReplaceAllString(barcode, "")
	if bc == "" {
		return ""
	}

	if placeholderRe.MatchString(bc) {
		return ""
	}

	// UPC-A (12 digits) is EAN-13 with a leading zero
	if len(bc) == 12 {
		bc = "0" + bc
	}

	if len(bc) != 13 {
		// Retailer-internal code, usable as-is
		return bc
	}

	if !validEAN13CheckDigit(bc) {
		return ""
	}

	return bc
}

func validEAN13CheckDigit(bc string) bool {
	if len(bc) != 13 {
		return false
	}
	sum := 0
	for i := 0; i < 12; i++ {
		d := int(bc[i] - '0')
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	return int(bc[12]-'0') == (10-(sum%10))%10
}

var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldForSearch lowercases a product name and strips diacritics so that
// autocomplete matching is accent-insensitive.
func FoldForSearch(s string) string {
	folded, _, err := transform.String(foldTransform, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
