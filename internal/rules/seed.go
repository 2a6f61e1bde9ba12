package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sumanmaity112/smart-finanza/internal/logging"
	"github.com/sumanmaity112/smart-finanza/internal/models"
)

// SeedFromYAML loads starter rules from a YAML file. Keywords already
// present in the database are left alone, so user-taught categories
// survive re-seeding. Returns the number of rules added.
func (e *Engine) SeedFromYAML(path string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seeds []models.CategoryRule
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	added := 0
	for _, seed := range seeds {
		keyword := strings.ToLower(strings.TrimSpace(seed.Keyword))
		category := strings.TrimSpace(seed.Category)
		if keyword == "" || category == "" {
			e.log.Warn("Skipping malformed seed rule",
				logging.Field{Key: logging.FieldKeyword, Value: seed.Keyword})
			continue
		}

		exists, err := e.store.HasRule(keyword)
		if err != nil {
			return added, err
		}
		if exists {
			continue
		}

		if err := e.store.UpsertRule(keyword, category); err != nil {
			return added, err
		}
		added++
	}

	e.log.Info("Seeded rules",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: added})
	return added, nil
}
