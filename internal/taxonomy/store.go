package taxonomy

import (
	"fmt"
	"os"

	"github.com/TonAlmeida/finance-dashboard/internal/fileutils"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store loads category vocabularies, preferring a user YAML file and falling
// back to the built-in defaults when none exists.
type Store struct {
	File string
}

// NewStore creates a store reading from the given YAML file. An empty name
// resolves to "categories.yaml" in the standard config locations.
func NewStore(file string) *Store {
	return &Store{File: file}
}

// Load returns the taxonomy Set. A missing override file is not an error;
// the built-in vocabularies are returned instead. Vocabularies missing from
// the file also fall back individually, so a user can override only one side.
func (s *Store) Load() (*Set, error) {
	filename := s.File
	if filename == "" {
		filename = "categories.yaml"
	}

	path, err := fileutils.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", filename).Debug("No categories override, using built-in taxonomy")
			return DefaultSet(), nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}

	if len(set.Income) == 0 {
		set.Income = DefaultIncome()
	}
	if len(set.Expenses) == 0 {
		set.Expenses = DefaultExpenses()
	}

	log.WithFields(logrus.Fields{
		"file":     path,
		"income":   len(set.Income),
		"expenses": len(set.Expenses),
	}).Debug("Loaded category vocabularies")

	return &set, nil
}

// Save writes the taxonomy Set to the store's YAML file. The path resolves
// through the same config locations as Load, so a vocabulary loaded from a
// config directory is saved back there rather than into the working
// directory; a file that does not exist anywhere yet is created at the
// given name.
func (s *Store) Save(set *Set) error {
	filename := s.File
	if filename == "" {
		filename = "categories.yaml"
	}
	if path, err := fileutils.FindConfigFile(filename); err == nil {
		filename = path
	}

	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	log.WithField("file", filename).Debug("Saved category vocabularies")
	return nil
}
