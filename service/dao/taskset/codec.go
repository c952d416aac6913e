package taskset

import (
	"encoding/csv"
	"fmt"
	"github.com/viant/tasksetgen/model"
	"io"
	"strconv"
)

// Header lists the tabular columns in order.
var Header = []string{"Task", "BCET", "WCET", "Period", "Deadline", "Priority"}

// Encode writes taskset as CSV, one row per task in insertion order.
func Encode(w io.Writer, taskset *model.Taskset) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, task := range taskset.Tasks() {
		row := []string{
			task.Name,
			strconv.Itoa(task.BCET),
			strconv.Itoa(task.WCET),
			strconv.Itoa(task.Period),
			strconv.Itoa(task.Deadline),
			strconv.Itoa(task.Priority),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write task %s: %w", task.Name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Decode reads a taskset written by Encode.  Columns are located by header
// name so their order is not significant.
func Decode(r io.Reader) (*model.Taskset, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, column := range header {
		index[column] = i
	}
	for _, column := range Header {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("missing column %q", column)
		}
	}
	ret := model.NewTaskset()
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		values := make([]int, len(Header)-1)
		for i, column := range Header[1:] {
			if values[i], err = strconv.Atoi(row[index[column]]); err != nil {
				return nil, fmt.Errorf("line %d: column %s: %w", line, column, err)
			}
		}
		task, err := model.NewTask(row[index["Task"]], values[0], values[1], values[2], values[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		task.Priority = values[4]
		ret.Add(task)
	}
	return ret, nil
}
