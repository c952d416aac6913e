package requirement

import (
	"encoding/csv"
	"github.com/viant/tasksetgen/model"
	"github.com/viant/tasksetgen/policy"
	"io"
	"strconv"
	"strings"
)

// Columns lists the CSV requirement header.
var Columns = []string{"Name", "Size", "Utilization", "UniquePeriods", "PriorityAssignment"}

// DecodeCSV reads one requirement per row.  An unrecognised
// PriorityAssignment leaves Policy nil; Requirement.Validate reports it
// together with the label.
func DecodeCSV(r io.Reader) ([]*model.Requirement, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, model.InvalidInputf("failed to read requirements header: %v", err)
	}
	index := make(map[string]int, len(header))
	for i, column := range header {
		index[strings.TrimSpace(column)] = i
	}
	for _, column := range Columns {
		if _, ok := index[column]; !ok {
			return nil, model.InvalidInputf("requirements header is missing column %q", column)
		}
	}
	var ret []*model.Requirement
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, model.InvalidInputf("line %d: %v", line, err)
		}
		value := func(column string) string {
			return strings.TrimSpace(row[index[column]])
		}
		size, err := strconv.Atoi(value("Size"))
		if err != nil {
			return nil, model.InvalidInputf("line %d: invalid Size %q", line, value("Size"))
		}
		utilization, err := strconv.ParseFloat(value("Utilization"), 64)
		if err != nil {
			return nil, model.InvalidInputf("line %d: invalid Utilization %q", line, value("Utilization"))
		}
		entry := &Row{
			Name:          row[index["Name"]],
			Size:          size,
			Utilization:   utilization,
			UniquePeriods: strings.ToLower(value("UniquePeriods")) == "true",
			Policy:        &policy.Config{Name: value("PriorityAssignment")},
		}
		ret = append(ret, entry.Requirement())
	}
	return ret, nil
}
