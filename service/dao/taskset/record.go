// Package taskset persists generated tasksets in tabular form.
//
// A stored taskset is addressed by a relative key of the form
// "<utilization>_utilization/<name>_taskset.csv", grouping outputs by the
// utilisation that was requested.
package taskset

import (
	"fmt"
	"github.com/viant/tasksetgen/model"
	"github.com/viant/tasksetgen/service/dao"
	"path"
	"strconv"
	"strings"
)

const (
	// UtilizationParameter filters List results by utilisation folder.
	UtilizationParameter = "Utilization"

	folderSuffix = "_utilization"
	fileSuffix   = "_taskset.csv"
)

// Record is a generated taskset together with the request it answers.
type Record struct {
	Name        string
	Utilization float64
	Taskset     *model.Taskset
}

// Key returns the record's relative storage location.
func (r *Record) Key() string {
	return Key(r.Name, r.Utilization)
}

// Key builds the relative storage location for a requirement.
func Key(name string, utilization float64) string {
	return path.Join(FormatUtilization(utilization)+folderSuffix, name+fileSuffix)
}

// ParseKey extracts the name and utilisation from a storage key.
func ParseKey(key string) (string, float64, error) {
	folder, file := path.Split(strings.Trim(key, "/"))
	folder = path.Base(folder)
	if !strings.HasSuffix(folder, folderSuffix) || !strings.HasSuffix(file, fileSuffix) {
		return "", 0, fmt.Errorf("%w: %q", dao.ErrInvalidID, key)
	}
	utilization, err := strconv.ParseFloat(strings.TrimSuffix(folder, folderSuffix), 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q: %v", dao.ErrInvalidID, key, err)
	}
	name := strings.TrimSuffix(file, fileSuffix)
	if name == "" {
		return "", 0, fmt.Errorf("%w: %q", dao.ErrInvalidID, key)
	}
	return name, utilization, nil
}

// FormatUtilization renders utilisation the way folder names use it: the
// shortest decimal form, always with a fractional part ("0.3", "1.0").
func FormatUtilization(utilization float64) string {
	ret := strconv.FormatFloat(utilization, 'f', -1, 64)
	if !strings.Contains(ret, ".") {
		ret += ".0"
	}
	return ret
}

// Validate checks that record can be stored.
func Validate(record *Record) error {
	if record == nil || record.Taskset == nil {
		return dao.ErrNilEntity
	}
	if strings.TrimSpace(record.Name) == "" || strings.ContainsAny(record.Name, "/\\") {
		return fmt.Errorf("%w: taskset name %q", dao.ErrInvalidID, record.Name)
	}
	return nil
}
