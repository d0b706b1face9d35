package productconfig

import (
	"sort"
)

// Bundle holds the properties of one role group, keyed by file name.
type Bundle map[string]map[string]string

// File returns the properties of file, never nil.
func (b Bundle) File(name string) map[string]string {
	if props, ok := b[name]; ok {
		return props
	}
	return map[string]string{}
}

// Files returns the file names of the bundle, sorted.
func (b Bundle) Files() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build layers the schema defaults of files, the computed properties and the
// user overrides, in that order, and validates the result.
func (s *Schema) Build(role string, files []string, computed Bundle, overrides map[string]map[string]string) (Bundle, error) {
	out := Bundle{}
	layer := func(file string, props map[string]string) {
		if out[file] == nil {
			out[file] = map[string]string{}
		}
		for k, v := range props {
			out[file][k] = v
		}
	}

	for _, file := range files {
		layer(file, s.Defaults(role, file))
	}
	for file, props := range computed {
		layer(file, props)
	}
	for file, props := range overrides {
		layer(file, props)
	}

	for _, file := range out.Files() {
		if err := s.Validate(role, file, out[file]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
