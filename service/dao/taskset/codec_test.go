package taskset

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/viant/tasksetgen/model"
	"github.com/viant/tasksetgen/service/dao"
	"strings"
	"testing"
)

func sample() *model.Taskset {
	return model.NewTaskset(
		&model.Task{Name: "Task_0", BCET: 1, WCET: 3, Period: 10, Deadline: 10, Priority: 1},
		&model.Task{Name: "Task_1", BCET: 0, WCET: 1, Period: 4, Deadline: 4, Priority: 0},
		&model.Task{Name: "Task_2", BCET: 7, WCET: 20, Period: 100, Deadline: 100, Priority: 2},
	)
}

func TestEncode(t *testing.T) {
	buffer := &bytes.Buffer{}
	assert.NoError(t, Encode(buffer, sample()))
	expected := "Task,BCET,WCET,Period,Deadline,Priority\n" +
		"Task_0,1,3,10,10,1\n" +
		"Task_1,0,1,4,4,0\n" +
		"Task_2,7,20,100,100,2\n"
	assert.Equal(t, expected, buffer.String())
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := sample()
	buffer := &bytes.Buffer{}
	assert.NoError(t, Encode(buffer, original))
	decoded, err := Decode(buffer)
	assert.NoError(t, err)
	assert.Equal(t, original.Tasks(), decoded.Tasks())
	assert.Equal(t, original.Hyperperiod(), decoded.Hyperperiod())
	assert.Equal(t, original.WorstCaseUtilization(), decoded.WorstCaseUtilization())
}

func TestDecode_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		err   string
	}{
		{name: "empty", input: "", err: "header"},
		{name: "missing column", input: "Task,BCET,WCET,Period,Deadline\n", err: "Priority"},
		{name: "not an integer", input: "Task,BCET,WCET,Period,Deadline,Priority\nA,1,x,10,10,0\n", err: "WCET"},
		{name: "bcet above wcet", input: "Task,BCET,WCET,Period,Deadline,Priority\nA,5,1,10,10,0\n", err: "BCET"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.input))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestDecode_ColumnOrder(t *testing.T) {
	decoded, err := Decode(strings.NewReader("Priority,Task,Period,Deadline,WCET,BCET\n3,A,10,10,2,1\n"))
	assert.NoError(t, err)
	task, ok := decoded.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, model.Task{Name: "A", BCET: 1, WCET: 2, Period: 10, Deadline: 10, Priority: 3}, task)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "0.3_utilization/Low_taskset.csv", Key("Low", 0.3))
	assert.Equal(t, "1.0_utilization/Full_taskset.csv", Key("Full", 1))
	assert.Equal(t, "0.255_utilization/Odd_taskset.csv", (&Record{Name: "Odd", Utilization: 0.255}).Key())

	name, utilization, err := ParseKey("0.3_utilization/Low_taskset.csv")
	assert.NoError(t, err)
	assert.Equal(t, "Low", name)
	assert.Equal(t, 0.3, utilization)

	for _, key := range []string{"", "Low_taskset.csv", "x_utilization/Low.csv", "abc_utilization/Low_taskset.csv", "0.3_utilization/_taskset.csv"} {
		_, _, err = ParseKey(key)
		assert.ErrorIs(t, err, dao.ErrInvalidID, key)
	}
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(nil), dao.ErrNilEntity)
	assert.ErrorIs(t, Validate(&Record{Name: "x"}), dao.ErrNilEntity)
	assert.ErrorIs(t, Validate(&Record{Name: "a/b", Taskset: sample()}), dao.ErrInvalidID)
	assert.NoError(t, Validate(&Record{Name: "ok", Taskset: sample()}))
}
