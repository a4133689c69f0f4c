package localize

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithJSONDir returns an Option that overlays translations from JSON files
// in the root of an fs.FS. Each file covers one culture and is named after
// its code: en.json, de.json, pt-BR.json. Nested objects flatten into
// dot-separated keys. Subdirectories and other file types are ignored.
func WithJSONDir(fsys fs.FS) Option {
	return func(r *Registry) error {
		return loadDir(r, fsys, ".json", func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	}
}

// WithYAMLDir returns an Option that overlays translations from YAML files
// in the root of an fs.FS. Each file covers one culture and is named after
// its code: en.yaml, de.yml, pt-BR.yaml. Nested mappings flatten into
// dot-separated keys. Subdirectories and other file types are ignored.
func WithYAMLDir(fsys fs.FS) Option {
	return func(r *Registry) error {
		return loadDir(r, fsys, ".yaml", func(data []byte, v any) error {
			return yaml.Unmarshal(data, v)
		})
	}
}

func loadDir(r *Registry, fsys fs.FS, ext string, unmarshal func([]byte, any) error) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("localize: reading translation dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		fileExt := strings.ToLower(path.Ext(name))

		// .yml is accepted alongside .yaml
		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			continue
		}

		culture := ParseCulture(strings.TrimSuffix(name, path.Ext(name)))
		if culture == "" {
			return fmt.Errorf("%w: %q has no culture code in its name", ErrInvalidFile, name)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("localize: reading %q: %w", name, err)
		}

		var messages map[string]any
		if err := unmarshal(data, &messages); err != nil {
			return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, name, err)
		}
		if len(messages) == 0 {
			continue
		}

		r.seeds = append(r.seeds, seedEntry{culture: culture, messages: flattenMessages(messages, "")})
	}

	return nil
}

// flattenMessages collapses nested message maps into dot-separated keys.
// Non-string leaves are stringified with fmt.
func flattenMessages(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenMessages(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
