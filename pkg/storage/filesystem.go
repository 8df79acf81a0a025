// Package storage persists the coworking documents as JSON files under the
// .cowork/ workspace directory. The document keys match the legacy data
// files, so an existing data directory loads unchanged.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
)

const CoworkDir = ".cowork"
const ClientsFile = "clients.json"
const ProductsFile = "products.json"
const RoomsFile = "rooms.json"
const BookingsFile = "bookings.json"
const SalesFile = "sales.json"
const EventsFile = "events.jsonl"
const ConfigFile = "config.yaml"

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .cowork directory and prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, CoworkDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, CoworkDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .cowork directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, CoworkDir))
	return err == nil
}

// documentExists reports whether a document file is present.
func (r *FilesystemRepository) documentExists(filename string) bool {
	path, err := r.ResolvePath(filename)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// readDocument reads a document with retries. A missing file returns nil
// data and no error.
func (r *FilesystemRepository) readDocument(filename string) ([]byte, error) {
	path, err := r.ResolvePath(filename)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	retryer := retry.New[[]byte](r.retryConfig)
	return retryer.Do(context.Background(), func(ctx context.Context) ([]byte, error) {
		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filename, err)
		}
		return data, nil
	})
}

func (r *FilesystemRepository) writeDocument(filename string, data []byte) error {
	path, err := r.ResolvePath(filename)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
