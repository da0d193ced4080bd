// Package numwords renders rupee amounts as words using the Indian grouping
// convention: after the first three digits, digits group in pairs (thousand,
// lakh, crore), so 100000 reads "One Lakh", never "One Hundred Thousand".
//
// The returned phrases are a display contract consumed verbatim by the
// printed invoice:
//
//	"<words> Rupees Only"                 when there are no paise
//	"<words> Rupees and <words> Paise"    otherwise
//	"Zero Rupees Only"                    for zero
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

var hundred = decimal.NewFromInt(100)

// Format converts a non-negative decimal rupee amount (up to 2 fractional
// digits; extra digits are rounded half away from zero) into the invoice
// phrase.
func Format(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", domain.NewValidationError("amount", "amount in words requires a non-negative value")
	}
	amount = amount.Round(2)

	rupees := amount.Truncate(0)
	paise := amount.Sub(rupees).Mul(hundred).IntPart()

	phrase := inWords(rupees.IntPart()) + " Rupees"
	if paise == 0 {
		return phrase + " Only", nil
	}
	return phrase + " and " + inWords(paise) + " Paise", nil
}

// inWords renders n in Indian grouping. Zero renders "Zero"; amounts of a
// hundred crore and above recurse on the crore count.
func inWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var parts []string
	if n >= 1e7 {
		parts = append(parts, inWords(n/1e7)+" Crore")
		n %= 1e7
	}
	if n >= 1e5 {
		parts = append(parts, underHundred(n/1e5)+" Lakh")
		n %= 1e5
	}
	if n >= 1000 {
		parts = append(parts, underHundred(n/1000)+" Thousand")
		n %= 1000
	}
	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, underHundred(n))
	}
	return strings.Join(parts, " ")
}

func underHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	s := tens[n/10]
	if n%10 != 0 {
		s += " " + ones[n%10]
	}
	return s
}
