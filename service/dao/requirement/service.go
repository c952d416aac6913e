// Package requirement loads requirement collections from CSV or YAML files
// through afs, so any supported storage scheme can hold the configuration.
package requirement

import (
	"context"
	"fmt"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/tasksetgen/model"
	"path"
	"strings"
)

// Service loads requirements.
type Service struct {
	fs afs.Service
}

// Load reads the requirement collection at URL.  Files ending in .yaml or
// .yml are read as YAML; everything else as CSV.
func (s *Service) Load(ctx context.Context, URL string) ([]*model.Requirement, error) {
	URL = url.Normalize(URL, file.Scheme)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check if %s exists: %w", URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("requirements file %s does not exist", URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	var ret []*model.Requirement
	switch strings.ToLower(path.Ext(url.Path(URL))) {
	case ".yaml", ".yml":
		ret, err = DecodeYAML(data)
	default:
		ret, err = DecodeCSV(strings.NewReader(string(data)))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load requirements from %s: %w", URL, err)
	}
	return ret, nil
}

// New creates a requirement loader; a nil fs falls back to afs.New().
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}
