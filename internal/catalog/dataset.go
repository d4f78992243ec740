package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"bookrec/internal/book"
)

// WriteDataset stores books in the format FileSource reads back, chosen by
// the file extension. The file is replaced atomically.
func WriteDataset(path string, books []book.Book) error {
	if books == nil {
		books = []book.Book{}
	}

	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(books)
	default:
		data, err = jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(books, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".books-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
