package requirement

import (
	"github.com/viant/tasksetgen/model"
	"github.com/viant/tasksetgen/policy"
	"gopkg.in/yaml.v3"
)

// Document is the YAML requirements layout.
//
//	requirements:
//	  - name: Low
//	    size: 3
//	    utilization: 0.3
//	    uniquePeriods: true
//	    policy: RM
type Document struct {
	Requirements []*Row `yaml:"requirements"`
}

// Row is one requirement entry.
type Row struct {
	Name          string         `yaml:"name"`
	Size          int            `yaml:"size"`
	Utilization   float64        `yaml:"utilization"`
	UniquePeriods bool           `yaml:"uniquePeriods"`
	Policy        *policy.Config `yaml:"policy"`
}

// Requirement converts the row, resolving its policy through
// policy.FromConfig.  An unknown label leaves Policy nil and keeps the label
// for validation messages.
func (r *Row) Requirement() *model.Requirement {
	return &model.Requirement{
		Name:          r.Name,
		Size:          r.Size,
		Utilization:   r.Utilization,
		UniquePeriods: r.UniquePeriods,
		PolicyName:    r.Policy.Label(),
		Policy:        policy.FromConfig(r.Policy),
	}
}

// DecodeYAML parses a requirements document.
func DecodeYAML(data []byte) ([]*model.Requirement, error) {
	document := &Document{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, model.InvalidInputf("invalid requirements document: %v", err)
	}
	ret := make([]*model.Requirement, 0, len(document.Requirements))
	for _, row := range document.Requirements {
		if row == nil {
			continue
		}
		ret = append(ret, row.Requirement())
	}
	return ret, nil
}
