package fs

import (
	"bytes"
	"context"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	"github.com/viant/tasksetgen/service/dao"
	"github.com/viant/tasksetgen/service/dao/criteria"
	"github.com/viant/tasksetgen/service/dao/taskset"
	"path"
	"strings"
	"sync"
)

// Service stores tasksets as CSV files under a base URL.  Any afs supported
// scheme works (file://, mem://, s3://, gs://).
type Service struct {
	baseURL string
	fs      afs.Service
	mu      sync.RWMutex
}

var _ dao.Service[string, taskset.Record] = (*Service)(nil)

// BaseURL returns the root location.
func (s *Service) BaseURL() string {
	return s.baseURL
}

// URL returns the absolute location of a stored key.
func (s *Service) URL(key string) string {
	return url.Join(s.baseURL, key)
}

// Save writes the record to <base>/<utilization>_utilization/<name>_taskset.csv.
func (s *Service) Save(ctx context.Context, record *taskset.Record) error {
	if err := taskset.Validate(record); err != nil {
		return err
	}
	buffer := &bytes.Buffer{}
	if err := taskset.Encode(buffer, record.Taskset); err != nil {
		return fmt.Errorf("failed to encode taskset %s: %w", record.Name, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	location := s.URL(record.Key())
	if err := s.fs.Upload(ctx, location, file.DefaultFileOsMode, buffer); err != nil {
		return fmt.Errorf("failed to save taskset to %s: %w", location, err)
	}
	return nil
}

// Load reads the record stored under key.
func (s *Service) Load(ctx context.Context, key string) (*taskset.Record, error) {
	name, utilization, err := taskset.ParseKey(key)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	location := s.URL(key)
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to check if %s exists: %w", location, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", dao.ErrNotFound, location)
	}
	data, err := s.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", location, err)
	}
	decoded, err := taskset.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", location, err)
	}
	return &taskset.Record{Name: name, Utilization: utilization, Taskset: decoded}, nil
}

// Delete removes the record stored under key.
func (s *Service) Delete(ctx context.Context, key string) error {
	if _, _, err := taskset.ParseKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	location := s.URL(key)
	exists, err := s.fs.Exists(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to check if %s exists: %w", location, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", dao.ErrNotFound, location)
	}
	return s.fs.Delete(ctx, location)
}

// List returns every stored record, optionally filtered with
// taskset.UtilizationParameter.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*taskset.Record, error) {
	exists, err := s.fs.Exists(ctx, s.baseURL)
	if err != nil || !exists {
		return nil, err
	}
	objects, err := s.fs.List(ctx, s.baseURL, option.NewRecursive(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.baseURL, err)
	}
	var ret []*taskset.Record
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), "_taskset.csv") {
			continue
		}
		key := path.Join(path.Base(path.Dir(url.Path(object.URL()))), object.Name())
		_, utilization, err := taskset.ParseKey(key)
		if err != nil {
			continue
		}
		if !criteria.Match(taskset.UtilizationParameter, taskset.FormatUtilization(utilization), parameters) {
			continue
		}
		record, err := s.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		ret = append(ret, record)
	}
	return ret, nil
}

// Clean removes every stored taskset and recreates an empty base location.
func (s *Service) Clean(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists, err := s.fs.Exists(ctx, s.baseURL)
	if err != nil {
		return fmt.Errorf("failed to check if %s exists: %w", s.baseURL, err)
	}
	if exists {
		if err = s.fs.Delete(ctx, s.baseURL); err != nil {
			return fmt.Errorf("failed to clean %s: %w", s.baseURL, err)
		}
	}
	return s.fs.Create(ctx, s.baseURL, file.DefaultDirOsMode, true)
}

// New creates a file-system backed taskset store rooted at baseURL.
func New(baseURL string, fs afs.Service) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if fs == nil {
		fs = afs.New()
	}
	return &Service{
		baseURL: url.Normalize(baseURL, file.Scheme),
		fs:      fs,
	}, nil
}
