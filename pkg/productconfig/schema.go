// Package productconfig checks generated and user supplied product
// properties against a schema of known HBase properties.
package productconfig

import (
	_ "embed"
	"os"
	"sort"
	"strconv"

	"emperror.dev/errors"
	"github.com/coreos/pkg/capnslog"
	"sigs.k8s.io/yaml"
)

var logger = capnslog.NewPackageLogger("github.com/opencurve/hbase-operator", "productconfig")

//go:embed properties.yaml
var defaultSchema []byte

var (
	ErrInvalidSchema   = errors.NewPlain("invalid product config schema")
	ErrInvalidProperty = errors.NewPlain("invalid property value")
)

type PropertyType string

const (
	TypeString  PropertyType = "string"
	TypeBool    PropertyType = "bool"
	TypeInteger PropertyType = "integer"
	TypeFloat   PropertyType = "float"
	TypeEnum    PropertyType = "enum"
)

// Property is the definition of one property in one file.
type Property struct {
	Name string       `json:"name"`
	File string       `json:"file"`
	Type PropertyType `json:"type"`
	// Roles limits the definition to some roles, empty means all.
	Roles   []string `json:"roles,omitempty"`
	Default *string  `json:"default,omitempty"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Values  []string `json:"values,omitempty"`
}

func (p *Property) appliesTo(role string) bool {
	if len(p.Roles) == 0 {
		return true
	}
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type propertyKey struct {
	file string
	name string
}

// Schema is a set of property definitions.
type Schema struct {
	Properties []Property `json:"properties"`

	index map[propertyKey]*Property
}

// Load parses a schema document.
func Load(data []byte) (*Schema, error) {
	s := &Schema{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.WrapIf(errors.Combine(ErrInvalidSchema, err), "failed to parse product config schema")
	}
	s.index = make(map[propertyKey]*Property, len(s.Properties))
	for i := range s.Properties {
		p := &s.Properties[i]
		if p.Name == "" || p.File == "" {
			return nil, errors.WithDetails(ErrInvalidSchema, "index", i, "reason", "name and file are required")
		}
		switch p.Type {
		case TypeString, TypeBool, TypeInteger, TypeFloat:
		case TypeEnum:
			if len(p.Values) == 0 {
				return nil, errors.WithDetails(ErrInvalidSchema, "property", p.Name, "reason", "enum without values")
			}
		default:
			return nil, errors.WithDetails(ErrInvalidSchema, "property", p.Name, "type", p.Type)
		}
		if p.Default != nil {
			if err := p.check(*p.Default); err != nil {
				return nil, errors.WrapIfWithDetails(ErrInvalidSchema, err.Error(), "property", p.Name)
			}
		}
		s.index[propertyKey{file: p.File, name: p.Name}] = p
	}
	return s, nil
}

// LoadDefault returns the schema built into the operator.
func LoadDefault() (*Schema, error) {
	return Load(defaultSchema)
}

// LoadFile reads a schema from path, the built in schema when path is empty.
func LoadFile(path string) (*Schema, error) {
	if path == "" {
		return LoadDefault()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIfWithDetails(err, "failed to read product config schema", "path", path)
	}
	logger.Infof("using product config schema %s", path)
	return Load(data)
}

// Defaults returns the default values of the properties of file for role.
func (s *Schema) Defaults(role, file string) map[string]string {
	out := map[string]string{}
	for i := range s.Properties {
		p := &s.Properties[i]
		if p.File == file && p.Default != nil && p.appliesTo(role) {
			out[p.Name] = *p.Default
		}
	}
	return out
}

// Validate checks every known property of file. Properties without a
// definition for role are not checked.
func (s *Schema) Validate(role, file string, props map[string]string) error {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p, ok := s.index[propertyKey{file: file, name: name}]
		if !ok || !p.appliesTo(role) {
			logger.Debugf("property %s in %s of role %s is not known, skipping validation", name, file, role)
			continue
		}
		if err := p.check(props[name]); err != nil {
			return errors.WrapIfWithDetails(err, "invalid product config", "role", role, "file", file, "property", name)
		}
	}
	return nil
}

func (p *Property) check(value string) error {
	invalid := func(reason string) error {
		return errors.WithDetails(ErrInvalidProperty, "value", value, "type", p.Type, "reason", reason)
	}
	switch p.Type {
	case TypeBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return invalid("not a boolean")
		}
	case TypeInteger, TypeFloat:
		var n float64
		if p.Type == TypeInteger {
			i, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return invalid("not an integer")
			}
			n = float64(i)
		} else {
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return invalid("not a number")
			}
			n = f
		}
		if p.Min != nil && n < *p.Min {
			return invalid("below minimum")
		}
		if p.Max != nil && n > *p.Max {
			return invalid("above maximum")
		}
	case TypeEnum:
		for _, v := range p.Values {
			if v == value {
				return nil
			}
		}
		return invalid("not an allowed value")
	}
	return nil
}
