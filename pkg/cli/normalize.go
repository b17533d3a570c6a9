package cli

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalizer brings sequences read from input and given on the command line
// to the same unicode form, so equal looking strings share trie paths.
type Normalizer struct {
	form *norm.Form
	fold bool
}

func NewNormalizer(cfg NormalizeConfig) (*Normalizer, error) {
	n := &Normalizer{fold: cfg.Fold}

	var form norm.Form
	switch strings.ToLower(cfg.Form) {
	case "", "none":
		return n, nil
	case "nfc":
		form = norm.NFC
	case "nfd":
		form = norm.NFD
	case "nfkc":
		form = norm.NFKC
	case "nfkd":
		form = norm.NFKD
	default:
		return nil, fmt.Errorf("unknown normalization form %q", cfg.Form)
	}
	n.form = &form
	return n, nil
}

func (n *Normalizer) Normalize(s string) string {
	if n.fold {
		// a Caser keeps state, so it can not be shared between calls
		s = cases.Fold().String(s)
	}
	if n.form != nil {
		s = n.form.String(s)
	}
	return s
}

func (n *Normalizer) NormalizeAll(ss []string) []string {
	result := make([]string, 0, len(ss))
	for _, s := range ss {
		result = append(result, n.Normalize(s))
	}
	return result
}
