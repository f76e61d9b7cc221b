package iqtree

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/BurntSushi/cmd"
)

// Model restriction sets accepted by ModelFinderConfig.
const (
	RestrictMrBayes = "mrbayes"
	RestrictIQTree  = "iqtree"
)

type ModelFinderConfig struct {
	Exec    string
	Threads int

	// Restriction limits the candidate model set. RestrictMrBayes keeps
	// the search inside what MrBayes can express; RestrictIQTree searches
	// IQ-TREE's full nuclear set.
	Restriction string

	// When true, existing checkpoint files under the prefix are ignored.
	Redo bool

	// When true, the 'iqtree' stdout and stderr will be mapped to the
	// current processes' stdout and stderr.
	Verbose bool
}

var ModelFinderMrBayes = ModelFinderConfig{
	Exec:        "iqtree2",
	Threads:     4,
	Restriction: RestrictMrBayes,
	Redo:        true,
}

// Run executes ModelFinder on one alignment, writing IQ-TREE's outputs
// under the given file prefix, and returns the raw best-fit model chosen
// by BIC.
func (conf ModelFinderConfig) Run(msa, prefix string) (string, error) {
	args := []string{
		"-s", msa,
		"-T", strconv.Itoa(conf.Threads),
		"--prefix", prefix,
		"-m", "TESTONLY",
		"--msub", "nuclear",
	}
	if conf.Restriction == RestrictMrBayes {
		args = append(args, "--mset", "mrbayes")
	}
	if conf.Redo {
		args = append(args, "--redo")
	}

	c := cmd.New(conf.Exec, args...)
	if conf.Verbose {
		fmt.Fprintf(os.Stderr, "\n%s\n", c)
		c.Cmd.Stdout = os.Stdout
		c.Cmd.Stderr = os.Stderr
	}
	if err := c.Run(); err != nil {
		return "", err
	}

	for _, path := range []string{prefix + ".log", prefix + ".iqtree"} {
		text, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if model := BestModel(string(text)); len(model) > 0 {
			return model, nil
		}
	}
	return "", fmt.Errorf(
		"iqtree: no best-fit model in '%s.log' or '%s.iqtree'", prefix, prefix)
}

var (
	bicLine   = regexp.MustCompile(`Bayesian Information Criterion:\s*([A-Za-z0-9+\-]+)`)
	bicLegacy = regexp.MustCompile(`(?i)\bBIC(?:\s+best)?\s+model:\s*([A-Za-z0-9+\-]+)`)
)

// BestModel extracts the best-fit model (by BIC) from IQ-TREE report text.
// It returns the empty string if no model line is present. Both the current
// report wording and the older "BIC model:" wording are recognized.
func BestModel(text string) string {
	if m := bicLine.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := bicLegacy.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
