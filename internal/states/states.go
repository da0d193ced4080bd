// Package states holds the GST state/UT jurisdiction registry: a static
// bidirectional mapping between jurisdiction names and their 2-character
// codes as printed on invoices and embedded in GSTINs.
package states

import "sort"

// codeToName is the master list. Codes are the 2-digit GST state codes;
// 28 is absent (retired with the Andhra Pradesh split, replaced by 37).
var codeToName = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"25": "Daman and Diu",
	"26": "Dadra and Nagar Haveli",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
}

var nameToCode = func() map[string]string {
	m := make(map[string]string, len(codeToName))
	for code, name := range codeToName {
		m[name] = code
	}
	return m
}()

// NameForCode returns the jurisdiction name for a 2-character code.
func NameForCode(code string) (string, bool) {
	name, ok := codeToName[code]
	return name, ok
}

// CodeForName returns the 2-character code for a jurisdiction name.
func CodeForName(name string) (string, bool) {
	code, ok := nameToCode[name]
	return code, ok
}

// IsValidCode reports whether code is a known jurisdiction code.
func IsValidCode(code string) bool {
	_, ok := codeToName[code]
	return ok
}

// Entry pairs a jurisdiction code with its name.
type Entry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// All returns every registered jurisdiction sorted by code.
func All() []Entry {
	out := make([]Entry, 0, len(codeToName))
	for code, name := range codeToName {
		out = append(out, Entry{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
