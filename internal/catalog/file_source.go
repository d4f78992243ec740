package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// FileSource reads a dataset file holding a list of book records. Files with
// a .yaml or .yml extension are decoded as YAML, anything else as JSON.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.path
}

func (s *FileSource) Records(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var items []any
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &items)
	default:
		err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &items)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	return toRecords(items), nil
}

// toRecords keeps positions stable: a non-object item becomes a nil Record
// so the loader can skip and report it by index.
func toRecords(items []any) []Record {
	records := make([]Record, len(items))
	for i, item := range items {
		if m, ok := item.(map[string]any); ok {
			records[i] = Record(m)
		}
	}
	return records
}
