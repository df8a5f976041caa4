package categorize

import (
	_ "embed"
	"os"
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

//go:embed rules.yaml
var defaultRules []byte

type ruleFile struct {
	Categories []struct {
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
		Patterns []string `yaml:"patterns"`
	} `yaml:"categories"`
}

type CategoryRule struct {
	Name     string
	Keywords []string
	Patterns []*regexp.Regexp
}

// RuleSet is the immutable category table shared by the local classifier
// and the inference prompt. Order is declaration order.
type RuleSet struct {
	rules []CategoryRule
	names []string
}

// DefaultRules returns the embedded rule table.
func DefaultRules() (*RuleSet, error) {
	return ParseRules(defaultRules)
}

// LoadRules reads a rule table from path, or the embedded one when path is empty.
func LoadRules(path string) (*RuleSet, error) {
	if path == "" {
		return DefaultRules()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read rules")
	}
	return ParseRules(data)
}

func ParseRules(data []byte) (*RuleSet, error) {
	var file ruleFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, errors.Wrap(err, "parse rules")
	}
	if len(file.Categories) == 0 {
		return nil, errors.New("rules: no categories")
	}

	set := &RuleSet{}
	seen := make(map[string]bool, len(file.Categories))
	for _, c := range file.Categories {
		if c.Name == "" {
			return nil, errors.New("rules: category without name")
		}
		if c.Name == Other || seen[c.Name] {
			return nil, errors.Errorf("rules: duplicate or reserved category %q", c.Name)
		}
		seen[c.Name] = true

		// keywords and patterns are matched against Normalize output
		rule := CategoryRule{Name: c.Name}
		for _, k := range c.Keywords {
			if k = Normalize(k); k != "" {
				rule.Keywords = append(rule.Keywords, k)
			}
		}
		for _, p := range c.Patterns {
			re, err := regexp.Compile("(?i)" + p)
			if err != nil {
				return nil, errors.Wrapf(err, "rules: category %q", c.Name)
			}
			rule.Patterns = append(rule.Patterns, re)
		}
		set.rules = append(set.rules, rule)
		set.names = append(set.names, c.Name)
	}
	set.names = append(set.names, Other)

	return set, nil
}

func (s *RuleSet) Rules() []CategoryRule {
	return s.rules
}

// Categories lists every legal category, the catch-all last.
func (s *RuleSet) Categories() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}
