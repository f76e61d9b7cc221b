// Package models maps nucleotide substitution model names between the
// tools in the pipeline: IQ-TREE's ModelFinder output on one side and
// MrBayes lset/prset settings on the other.
package models

import (
	"regexp"
	"strings"
)

var gammaCats = regexp.MustCompile(`\+G\d+`)

// Clean normalizes an IQ-TREE model token: the empirical base frequency
// marker '+F' is dropped and '+G<k>' (k discrete gamma categories) is
// collapsed to '+G', since MrBayes fixes its own category count.
func Clean(model string) string {
	m := strings.ReplaceAll(model, "+F", "")
	return gammaCats.ReplaceAllString(m, "+G")
}

// A Setting holds the MrBayes commands equivalent to a substitution model.
// Prset is empty unless the model constrains state frequencies.
type Setting struct {
	Lset  string
	Prset string
}

// MrBayes-expressible models. SYM, K2P and JC are their GTR, HKY and F81
// counterparts with equal state frequencies, hence the extra prset.
var mrbayes = map[string]Setting{
	"GTR":     {Lset: "nst=6"},
	"GTR+I":   {Lset: "nst=6 rates=propinv"},
	"GTR+G":   {Lset: "nst=6 rates=gamma"},
	"GTR+I+G": {Lset: "nst=6 rates=invgamma"},

	"SYM":     {Lset: "nst=6", Prset: "statefreqpr=fixed(equal)"},
	"SYM+I":   {Lset: "nst=6 rates=propinv", Prset: "statefreqpr=fixed(equal)"},
	"SYM+G":   {Lset: "nst=6 rates=gamma", Prset: "statefreqpr=fixed(equal)"},
	"SYM+I+G": {Lset: "nst=6 rates=invgamma", Prset: "statefreqpr=fixed(equal)"},

	"HKY":     {Lset: "nst=2"},
	"HKY+I":   {Lset: "nst=2 rates=propinv"},
	"HKY+G":   {Lset: "nst=2 rates=gamma"},
	"HKY+I+G": {Lset: "nst=2 rates=invgamma"},

	"K2P":     {Lset: "nst=2", Prset: "statefreqpr=fixed(equal)"},
	"K2P+I":   {Lset: "nst=2 rates=propinv", Prset: "statefreqpr=fixed(equal)"},
	"K2P+G":   {Lset: "nst=2 rates=gamma", Prset: "statefreqpr=fixed(equal)"},
	"K2P+I+G": {Lset: "nst=2 rates=invgamma", Prset: "statefreqpr=fixed(equal)"},

	"F81":     {Lset: "nst=1"},
	"F81+I":   {Lset: "nst=1 rates=propinv"},
	"F81+G":   {Lset: "nst=1 rates=gamma"},
	"F81+I+G": {Lset: "nst=1 rates=invgamma"},

	"JC":     {Lset: "nst=1", Prset: "statefreqpr=fixed(equal)"},
	"JC+I":   {Lset: "nst=1 rates=propinv", Prset: "statefreqpr=fixed(equal)"},
	"JC+G":   {Lset: "nst=1 rates=gamma", Prset: "statefreqpr=fixed(equal)"},
	"JC+I+G": {Lset: "nst=1 rates=invgamma", Prset: "statefreqpr=fixed(equal)"},
}

// MrBayes returns the MrBayes settings for a cleaned model name. ok is
// false for models MrBayes cannot express.
func MrBayes(model string) (setting Setting, ok bool) {
	setting, ok = mrbayes[model]
	return setting, ok
}
