package criteria

import (
	"github.com/viant/tasksetgen/service/dao"
)

// Match reports whether value satisfies every parameter called name.  Other
// parameters are ignored.  A parameter holding []string matches any of its
// values.
func Match(name, value string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || parameter.Name != name {
			continue
		}
		switch actual := parameter.Value.(type) {
		case string:
			if value != actual {
				return false
			}
		case []string:
			matched := false
			for _, candidate := range actual {
				if value == candidate {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		}
	}
	return true
}
