package policy

import (
	"github.com/viant/tasksetgen/model"
	"gopkg.in/yaml.v3"
	"sort"
	"strings"
)

// Labels recognised in configuration files.
const (
	LabelRM           = "RM"
	LabelRateMonotone = "Rate Monotonic"
)

var registry = map[string]func() model.Policy{}

var options []string

func init() {
	Register(func() model.Policy { return &RateMonotonic{} }, LabelRM, LabelRateMonotone, "rate-monotonic", "ratemonotonic")
	model.PolicyOptions = Options()
}

// Register makes a policy available under the given labels.  The first label
// is listed in Options.  Labels are matched case-insensitively.
func Register(newPolicy func() model.Policy, labels ...string) {
	if len(labels) == 0 {
		return
	}
	for _, label := range labels {
		registry[normalize(label)] = newPolicy
	}
	options = append(options, labels[0]+": "+newPolicy().Name())
	sort.Strings(options)
}

// Lookup resolves a policy label.
func Lookup(label string) (model.Policy, bool) {
	newPolicy, ok := registry[normalize(label)]
	if !ok {
		return nil, false
	}
	return newPolicy(), true
}

// Options returns a human-readable list of supported labels.
func Options() string {
	var b strings.Builder
	b.WriteString("\n\tOptions:")
	for _, option := range options {
		b.WriteString("\n\t\t- ")
		b.WriteString(option)
	}
	return b.String()
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Config is the serialisable form of a policy selection.  In YAML it may be
// written as a bare label ("policy: RM") or as a mapping ("policy: {name: RM}").
type Config struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// UnmarshalYAML accepts a scalar label or a mapping.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Name = strings.TrimSpace(node.Value)
		return nil
	}
	type config Config
	aux := (*config)(c)
	if err := node.Decode(aux); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// Label returns the configured label, empty for a nil config.
func (c *Config) Label() string {
	if c == nil {
		return ""
	}
	return c.Name
}

// FromConfig resolves a Config to a policy.  It returns nil when the config
// is nil or names an unknown policy.
func FromConfig(c *Config) model.Policy {
	if c == nil {
		return nil
	}
	p, _ := Lookup(c.Name)
	return p
}
