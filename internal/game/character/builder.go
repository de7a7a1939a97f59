package character

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/statcore/internal/game/item"
	"github.com/cory-johannsen/statcore/internal/game/profession"
)

// Sheet is a character definition loaded from YAML.
type Sheet struct {
	Name       string      `yaml:"name"`
	Profession string      `yaml:"profession"`
	Items      []item.Kind `yaml:"items"`
}

// Validate checks that the Sheet satisfies its invariants.
//
// Precondition: s is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (s *Sheet) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if s.Profession == "" {
		errs = append(errs, errors.New("profession must not be empty"))
	} else if _, err := profession.ParseKind(s.Profession); err != nil {
		errs = append(errs, err)
	}
	for i, k := range s.Items {
		if !k.Valid() {
			errs = append(errs, fmt.Errorf("items[%d] %q is not a known item", i, k))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("sheet validation failed: %v", errs)
	}
	return nil
}

// Resolve validates sheet and returns its profession and items.
//
// Precondition: sheet must be non-nil.
// Postcondition: Returns a non-nil Profession and the sheet's items in order, or a non-nil error.
func Resolve(sheet *Sheet) (profession.Profession, []item.Item, error) {
	if sheet == nil {
		return nil, nil, errors.New("sheet must not be nil")
	}
	if err := sheet.Validate(); err != nil {
		return nil, nil, err
	}
	kind, err := profession.ParseKind(sheet.Profession)
	if err != nil {
		return nil, nil, err
	}
	p, err := profession.New(kind)
	if err != nil {
		return nil, nil, err
	}
	items := make([]item.Item, 0, len(sheet.Items))
	for _, k := range sheet.Items {
		it, err := item.New(k)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	return p, items, nil
}

// Build constructs a Character from a sheet. The holder is seeded with the
// profession's base vector, then each listed item is applied in order.
//
// Precondition: sheet must be non-nil.
// Postcondition: Returns a Character whose Stats() == base + sum of item deltas, or a non-nil error.
func Build(sheet *Sheet) (*Character, error) {
	p, items, err := Resolve(sheet)
	if err != nil {
		return nil, err
	}
	c := New(sheet.Name, p, p.Base())
	c.Equip(items...)
	return c, nil
}

// LoadSheets reads all *.yaml and *.yml files from dir, parses each as a
// Sheet, validates it, and returns the collected slice sorted by file name.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid Sheets or the first encountered error.
func LoadSheets(dir string) ([]*Sheet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("LoadSheets: cannot read directory %q: %w", dir, err)
	}

	sheets := []*Sheet{}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		s, err := LoadSheet(path)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

// LoadSheet reads and validates a single YAML sheet.
//
// Precondition: path is a readable file.
// Postcondition: returns a valid Sheet or a non-nil error.
func LoadSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadSheet: cannot read file %q: %w", path, err)
	}
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("LoadSheet: cannot parse file %q: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("LoadSheet: invalid sheet in %q: %w", path, err)
	}
	return &s, nil
}
