// Package store provides loading of the keyword tables used by the rule-based classifier.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/nexus-classifier/internal/logging"
	"fjacquet/nexus-classifier/internal/models"

	"gopkg.in/yaml.v3"
)

// KeywordStore loads per-category keyword overrides from a YAML file.
type KeywordStore struct {
	KeywordsFile string
	logger       logging.Logger
}

// NewKeywordStore creates a new store reading keywordsFile. An empty path means
// no overrides: the built-in keyword table is used as is.
func NewKeywordStore(keywordsFile string, logger logging.Logger) *KeywordStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &KeywordStore{
		KeywordsFile: keywordsFile,
		logger:       logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *KeywordStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join(".nexus-classifier", filename),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".nexus-classifier", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadKeywordOverrides reads the keywords file and returns the keyword list of
// every category it mentions. Categories absent from the file keep their
// built-in keywords. A category name outside the taxonomy is an error: the
// taxonomy is closed and a file cannot extend it.
func (s *KeywordStore) LoadKeywordOverrides() (map[models.Category][]string, error) {
	if strings.TrimSpace(s.KeywordsFile) == "" {
		return map[models.Category][]string{}, nil
	}

	filePath, err := s.FindConfigFile(s.KeywordsFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.WithField("file_path", s.KeywordsFile).Warn("Keywords file not found, using built-in keywords")
			return map[models.Category][]string{}, nil
		}
		return nil, fmt.Errorf("error resolving keywords file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading keywords file: %w", err)
	}

	entries, err := parseKeywords(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing keywords file %s: %w", filePath, err)
	}

	overrides := make(map[models.Category][]string, len(entries))
	for _, entry := range entries {
		category, ok := models.ParseCategory(entry.Name)
		if !ok {
			return nil, fmt.Errorf("keywords file %s: unknown category %q (allowed: %s)",
				filePath, entry.Name, strings.Join(models.CategoryNames(), ", "))
		}

		var keywords []string
		for _, kw := range entry.Keywords {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		overrides[category] = append(overrides[category], keywords...)
	}

	s.logger.WithFields(
		logging.Field{Key: "file_path", Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(overrides)},
	).Debug("Loaded keyword overrides")

	return overrides, nil
}

// parseKeywords accepts both the "categories: [...]" layout and a bare list.
func parseKeywords(data []byte) ([]models.CategoryKeywords, error) {
	var cfg models.KeywordsConfig
	if err := yaml.Unmarshal(data, &cfg); err == nil && len(cfg.Categories) > 0 {
		return cfg.Categories, nil
	}

	var list []models.CategoryKeywords
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}
