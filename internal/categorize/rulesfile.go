package categorize

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bankcat-dev/bankcat/internal/model"
)

// rulesFile is the on-disk shape of a rules.yaml overlay.
type rulesFile struct {
	Rules []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
	Sign     string   `yaml:"sign,omitempty"` // "", "any", "incoming", "outgoing"
}

// LoadRules reads user rules from a YAML file. The returned rules keep
// file order and are meant to be evaluated before the built-in table.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for i, spec := range file.Rules {
		rule, err := spec.toRule()
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i+1, spec.Name, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (s ruleSpec) toRule() (Rule, error) {
	category := model.Category(s.Category)
	if !category.Valid() {
		return Rule{}, fmt.Errorf("unknown category %q", s.Category)
	}
	if len(s.Keywords) == 0 {
		return Rule{}, fmt.Errorf("no keywords")
	}

	var sign Sign
	switch s.Sign {
	case "", "any":
		sign = SignAny
	case "incoming":
		sign = SignIncoming
	case "outgoing":
		sign = SignOutgoing
	default:
		return Rule{}, fmt.Errorf("unknown sign %q", s.Sign)
	}

	keywords := make([]string, len(s.Keywords))
	for i, kw := range s.Keywords {
		keywords[i] = Normalize(kw)
	}

	return Rule{
		Name:     s.Name,
		Category: category,
		Keywords: keywords,
		Sign:     sign,
	}, nil
}

// SeedRulesFile is the content init writes so users have a template to
// extend. An empty list leaves the built-in table in charge.
const SeedRulesFile = `# User categorization rules, evaluated before the built-in table.
# Each rule: name, category, keywords (any-of substrings), optional
# sign (any|incoming|outgoing).
rules: []
`
