package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage wraps the filesystem operations for snapshots, manifests and audit
// logs. Parent directories are created on demand.
type Storage struct{}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(filePath, content, 0o644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

func (s *Storage) HasFile(fn string) bool {
	_, err := os.Stat(fn)
	return err == nil || !os.IsNotExist(err)
}

// SaveJSON writes v as indented JSON, matching the published snapshot format.
func (s *Storage) SaveJSON(filePath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling JSON: %w", err)
	}
	return s.SaveFile(filePath, data)
}

// LoadJSON reads a JSON file into out.
func (s *Storage) LoadJSON(filePath string, out any) error {
	data, err := s.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error decoding JSON: %w", err)
	}
	return nil
}

// WriteJSONL overwrites filePath with one compact JSON document per row.
// Used for the per-day candidate audit log and the comment corpus dump,
// both rewritten wholesale when a day is reprocessed.
func (s *Storage) WriteJSONL(filePath string, rows []any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("error encoding row: %w", err)
		}
	}
	return s.SaveFile(filePath, buf.Bytes())
}

// ReadJSONL reads one JSON document per line into a slice of T. Lines that
// fail to decode are skipped, not fatal.
func ReadJSONL[T any](s *Storage, filePath string) ([]T, error) {
	data, err := s.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var out []T
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var row T
		if err := json.Unmarshal(line, &row); err != nil {
			continue
		}
		out = append(out, row)
	}
	return out, scanner.Err()
}
