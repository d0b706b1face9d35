package fragment

import (
	"strings"

	"emperror.dev/errors"
)

// ErrValidation is returned when a merged fragment still has unset required fields.
var ErrValidation = errors.NewPlain("fragment validation failure")

// Validation collects the dotted paths of unset required fields. The zero
// value is ready to use.
type Validation struct {
	prefix  string
	missing *[]string
}

// Field returns a validation scoped to a nested fragment. Missing fields
// recorded on it are reported by v.
func (v *Validation) Field(name string) *Validation {
	return &Validation{prefix: v.path(name), missing: v.list()}
}

func (v *Validation) list() *[]string {
	if v.missing == nil {
		v.missing = &[]string{}
	}
	return v.missing
}

func (v *Validation) path(name string) string {
	if v.prefix == "" {
		return name
	}
	return v.prefix + "." + name
}

// Missing records name as an unset required field.
func (v *Validation) Missing(name string) {
	l := v.list()
	*l = append(*l, v.path(name))
}

// Err returns nil when every required field was set.
func (v *Validation) Err() error {
	if v.missing == nil || len(*v.missing) == 0 {
		return nil
	}
	missing := *v.missing
	return errors.WithDetails(
		errors.WithMessagef(ErrValidation, "required fields are not set: %s", strings.Join(missing, ", ")),
		"field", missing[0],
	)
}

// Required returns *p, recording name as missing when p is unset.
func Required[T any](v *Validation, name string, p *T) T {
	if p == nil {
		v.Missing(name)
		var zero T
		return zero
	}
	return *p
}

// Optional returns a copy of p without recording anything.
func Optional[T any](p *T) *T {
	return Copy(p)
}
