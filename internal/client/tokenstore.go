package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cardstream/decksync/models"
)

// FileTokenStore persists the token pair as a JSON file. A missing file reads
// as an empty pair; the refresh flow then reports reauthentication is needed
// instead of failing at startup.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) LoadTokens() (models.TokenPair, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.TokenPair{}, nil
	}
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("read token file: %w", err)
	}

	var tokens models.TokenPair
	if err = json.Unmarshal(data, &tokens); err != nil {
		return models.TokenPair{}, fmt.Errorf("decode token file: %w", err)
	}
	return tokens, nil
}

func (s *FileTokenStore) SaveTokens(tokens models.TokenPair) error {
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tokens: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	// 0600: the refresh token is a long-lived credential.
	if err = os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}
