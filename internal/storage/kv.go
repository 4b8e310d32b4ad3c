// Package storage provides a thread-safe key-value store with JSON file
// persistence. Values are kept as raw JSON so callers own their own schemas;
// the store only guarantees durability and atomic writes.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// KV is a thread-safe key-value store persisted to a single JSON file.
type KV struct {
	entries map[string]json.RawMessage
	mu      sync.RWMutex

	filePath        string
	filePermissions os.FileMode
	dirPermissions  os.FileMode
}

// PersistenceFile represents the on-disk structure.
type PersistenceFile struct {
	Version string                     `json:"version"`
	SavedAt time.Time                  `json:"saved_at"`
	Entries map[string]json.RawMessage `json:"entries"`
}

// New creates a KV store persisted at filePath. If filePath is empty an
// OS-appropriate tmp directory is used.
func New(filePath string, filePermissions, dirPermissions os.FileMode) *KV {
	if filePath == "" {
		filePath = filepath.Join(os.TempDir(), "rehoboam", "data.json")
	}

	return &KV{
		entries:         make(map[string]json.RawMessage),
		filePath:        filePath,
		filePermissions: filePermissions,
		dirPermissions:  dirPermissions,
	}
}

// Open creates a KV store and loads any existing state from disk.
func Open(filePath string, filePermissions, dirPermissions os.FileMode) (*KV, error) {
	kv := New(filePath, filePermissions, dirPermissions)
	if err := kv.Load(); err != nil {
		return nil, err
	}
	return kv, nil
}

// Get unmarshals the value stored under key into dest. It returns false when
// the key is absent, leaving dest untouched.
func (kv *KV) Get(key string, dest interface{}) (bool, error) {
	kv.mu.RLock()
	raw, exists := kv.entries[key]
	kv.mu.RUnlock()

	if !exists {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal key %s: %w", key, err)
	}
	return true, nil
}

// Set marshals value, stores it under key, and persists the store to disk.
func (kv *KV) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal key %s: %w", key, err)
	}

	kv.mu.Lock()
	kv.entries[key] = raw
	kv.mu.Unlock()

	return kv.Save()
}

// Delete removes key and persists the store to disk. Deleting an absent key
// is a no-op.
func (kv *KV) Delete(key string) error {
	kv.mu.Lock()
	_, exists := kv.entries[key]
	delete(kv.entries, key)
	kv.mu.Unlock()

	if !exists {
		return nil
	}
	return kv.Save()
}

// Save persists the store state to file
func (kv *KV) Save() error {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	// Create data directory if needed
	dir := filepath.Dir(kv.filePath)
	if err := os.MkdirAll(dir, kv.dirPermissions); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data := PersistenceFile{
		Version: "1.0",
		SavedAt: time.Now(),
		Entries: kv.entries,
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	// Write to temporary file first (atomic write)
	tempPath := kv.filePath + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, kv.filePermissions); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tempPath, kv.filePath); err != nil {
		_ = os.Remove(tempPath) // Clean up temp file on rename failure
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// Load restores the store state from file
func (kv *KV) Load() error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	// Clean up any stale temp files from previous crashes
	tempPath := kv.filePath + ".tmp"
	if _, err := os.Stat(tempPath); err == nil {
		_ = os.Remove(tempPath)
	}

	if _, err := os.Stat(kv.filePath); os.IsNotExist(err) {
		// No file to load, start fresh
		return nil
	}

	jsonData, err := os.ReadFile(kv.filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var data PersistenceFile
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	kv.entries = data.Entries
	if kv.entries == nil {
		kv.entries = make(map[string]json.RawMessage)
	}

	return nil
}
