package memory

import (
	"context"
	"github.com/viant/tasksetgen/service/dao"
	"github.com/viant/tasksetgen/service/dao/criteria"
	"github.com/viant/tasksetgen/service/dao/store"
	"github.com/viant/tasksetgen/service/dao/taskset"
)

// Service keeps tasksets in memory, keyed like the file-system store.
type Service struct {
	*store.MemoryStore[string, taskset.Record]
}

var _ dao.Service[string, taskset.Record] = (*Service)(nil)

// Save stores the record.
func (s *Service) Save(ctx context.Context, record *taskset.Record) error {
	if err := taskset.Validate(record); err != nil {
		return err
	}
	return s.MemoryStore.Save(ctx, record)
}

// List returns records, optionally filtered with taskset.UtilizationParameter.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*taskset.Record, error) {
	records, err := s.MemoryStore.List(ctx)
	if err != nil {
		return nil, err
	}
	var ret []*taskset.Record
	for _, record := range records {
		if criteria.Match(taskset.UtilizationParameter, taskset.FormatUtilization(record.Utilization), parameters) {
			ret = append(ret, record)
		}
	}
	return ret, nil
}

// Clean removes all records.
func (s *Service) Clean(_ context.Context) error {
	s.Reset()
	return nil
}

// New creates an in-memory taskset store.
func New() *Service {
	return &Service{MemoryStore: store.NewMemoryStore[string, taskset.Record](func(r *taskset.Record) string {
		return r.Key()
	})}
}
