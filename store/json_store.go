package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/lvlgen/level"
)

// JSONStore handles level persistence using a local JSON file.
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *jsonData
}

type jsonData struct {
	Levels map[string]*jsonRecord `json:"levels"`
}

// jsonRecord stores tiles as .lvl bytes, which encoding/json writes as base64.
type jsonRecord struct {
	Meta
	Tiles []byte `json:"tiles"`
}

// NewJSONStore opens filePath, creating it when absent.
func NewJSONStore(filePath string) (*JSONStore, error) {
	js := &JSONStore{
		filePath: filePath,
		data:     &jsonData{Levels: make(map[string]*jsonRecord)},
	}
	if _, err := os.Stat(filePath); err == nil {
		if err := js.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load JSON store: %w", err)
		}
	} else if os.IsNotExist(err) {
		if err := js.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create JSON store file: %w", err)
		}
	} else {
		return nil, err
	}
	return js, nil
}

func (js *JSONStore) loadFromFile() error {
	raw, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, js.data); err != nil {
		return err
	}
	if js.data.Levels == nil {
		js.data.Levels = make(map[string]*jsonRecord)
	}
	return nil
}

// saveToFile writes through a temporary file and a rename.
// The caller holds the write lock.
func (js *JSONStore) saveToFile() error {
	raw, err := json.MarshalIndent(js.data, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(js.filePath), ".lvlstore-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), js.filePath)
}

// Save stores r, replacing any record with the same name.
func (js *JSONStore) Save(ctx context.Context, r *Record) error {
	if err := check(r); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	tiles, err := r.Level.MarshalBinary()
	if err != nil {
		return err
	}
	meta := r.Meta
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now().UTC()
	}

	js.mutex.Lock()
	defer js.mutex.Unlock()
	prev, had := js.data.Levels[r.Name]
	js.data.Levels[r.Name] = &jsonRecord{Meta: meta, Tiles: tiles}
	if err := js.saveToFile(); err != nil {
		if had {
			js.data.Levels[r.Name] = prev
		} else {
			delete(js.data.Levels, r.Name)
		}
		return fmt.Errorf("failed to save level: %w", err)
	}
	return nil
}

// Load returns a copy of the record stored under name.
func (js *JSONStore) Load(ctx context.Context, name string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	jr, ok := js.data.Levels[name]
	if !ok {
		return nil, notFound(name)
	}
	l := level.New()
	if err := l.UnmarshalBinary(jr.Tiles); err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return &Record{Meta: jr.Meta, Level: l}, nil
}

// List returns every record's Meta sorted by name.
func (js *JSONStore) List(ctx context.Context) ([]Meta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	out := make([]Meta, 0, len(js.data.Levels))
	for _, jr := range js.data.Levels {
		out = append(out, jr.Meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes the record stored under name.
func (js *JSONStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	js.mutex.Lock()
	defer js.mutex.Unlock()

	jr, ok := js.data.Levels[name]
	if !ok {
		return notFound(name)
	}
	delete(js.data.Levels, name)
	if err := js.saveToFile(); err != nil {
		js.data.Levels[name] = jr
		return fmt.Errorf("failed to delete level: %w", err)
	}
	return nil
}

// Close closes the store (no-op for JSON store).
func (js *JSONStore) Close() error {
	return nil
}
