// Package locale loads the translated UI strings.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embedded embed.FS

const indexFile = "index.yaml"

// Catalog holds the strings of one language.
type Catalog struct {
	Code string
	Tag  language.Tag
	Name string // Native language name, shown in the language selector

	strings map[string]string
}

// Get returns the translation for key, or the key itself when it is missing.
func (c *Catalog) Get(key string) string {
	if s, ok := c.strings[key]; ok {
		return s
	}
	return key
}

// Format looks up key and formats it with args.
func (c *Catalog) Format(key string, args ...any) string {
	return fmt.Sprintf(c.Get(key), args...)
}

// Missing returns the keys from Keys this catalog does not translate.
func (c *Catalog) Missing() []string {
	var missing []string
	for _, k := range Keys {
		if _, ok := c.strings[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Set is the ordered list of available catalogs.
type Set struct {
	catalogs []*Catalog
}

// Len returns the number of catalogs.
func (s *Set) Len() int {
	return len(s.catalogs)
}

// At returns catalog i. Out-of-range indexes fall back to the first catalog.
func (s *Set) At(i int) *Catalog {
	if i < 0 || i >= len(s.catalogs) {
		return s.catalogs[0]
	}
	return s.catalogs[i]
}

// All returns the catalogs in selector order.
func (s *Set) All() []*Catalog {
	return s.catalogs
}

// index is the on-disk layout of index.yaml.
type index struct {
	Languages []struct {
		Code string `yaml:"code"`
		Name string `yaml:"name"`
	} `yaml:"languages"`
}

// Load reads the embedded catalogs.
func Load() (*Set, error) {
	return LoadFS(embedded, "locales")
}

// LoadFS reads index.yaml and one <code>.yaml per listed language from dir.
func LoadFS(fsys fs.FS, dir string) (*Set, error) {
	data, err := fs.ReadFile(fsys, path.Join(dir, indexFile))
	if err != nil {
		return nil, fmt.Errorf("locale: read index: %w", err)
	}
	var idx index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("locale: parse index: %w", err)
	}
	if len(idx.Languages) == 0 {
		return nil, errors.New("locale: index lists no languages")
	}

	set := &Set{catalogs: make([]*Catalog, 0, len(idx.Languages))}
	for _, lang := range idx.Languages {
		tag, err := language.Parse(lang.Code)
		if err != nil {
			return nil, fmt.Errorf("locale: invalid code %q: %w", lang.Code, err)
		}

		file := path.Join(dir, lang.Code+".yaml")
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", file, err)
		}
		strs := make(map[string]string)
		if err := yaml.Unmarshal(data, &strs); err != nil {
			return nil, fmt.Errorf("locale: parse %s: %w", file, err)
		}

		name := lang.Name
		if name == "" {
			name = display.Self.Name(tag)
		}
		set.catalogs = append(set.catalogs, &Catalog{
			Code:    lang.Code,
			Tag:     tag,
			Name:    name,
			strings: strs,
		})
	}
	return set, nil
}
