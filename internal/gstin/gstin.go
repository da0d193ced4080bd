// Package gstin validates the structure of 15-character GST identification
// numbers. A failed validation is a normal outcome returned as data, never an
// error; callers surface the message as a form error.
//
// Input is expected to be uppercase already. Lowercase input fails the
// structural check; normalization is the caller's job.
package gstin

import (
	"regexp"
	"strings"

	"github.com/sivanandz/luminila-ERP-sub002/internal/states"
)

// pattern: 2-digit state code, 5-letter PAN prefix, 4-digit PAN number,
// 1-letter PAN suffix, entity code, literal Z, checksum character.
var pattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

const checksumAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Result is the outcome of a validation. Message is empty when Valid.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}

// Validate runs the structural stages: exact length, format pattern, and
// state-code membership. The checksum digit is not recomputed; use
// ValidateStrict for that.
func Validate(s string) Result {
	if len(s) != 15 {
		return invalid("GSTIN must be exactly 15 characters")
	}
	if !pattern.MatchString(s) {
		return invalid("GSTIN does not match the required format")
	}
	if !states.IsValidCode(s[:2]) {
		return invalid("GSTIN state code " + s[:2] + " is not a valid state code")
	}
	return Result{Valid: true}
}

// ValidateStrict runs Validate and then recomputes the mod-36 checksum over
// the first 14 characters. A checksum mismatch produces a message distinct
// from a structural failure, since it usually means a typo rather than a
// malformed entry.
func ValidateStrict(s string) Result {
	if r := Validate(s); !r.Valid {
		return r
	}
	if checksumChar(s[:14]) != s[14] {
		return invalid("GSTIN checksum digit does not match; check for a typo")
	}
	return Result{Valid: true}
}

// checksumChar computes the GSTIN check character for the 14-character body.
// Characters are valued 0-35 (0-9 then A-Z); positions alternate weights 1
// and 2 from the left; each weighted product contributes its base-36 digit
// sum; the check value is the complement of the total mod 36.
func checksumChar(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		v := strings.IndexByte(checksumAlphabet, body[i])
		factor := 1
		if i%2 == 1 {
			factor = 2
		}
		p := v * factor
		sum += p/36 + p%36
	}
	return checksumAlphabet[(36-sum%36)%36]
}
