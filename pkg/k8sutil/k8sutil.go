package k8sutil

import (
	"sort"

	"github.com/coreos/pkg/capnslog"
	v1 "k8s.io/api/core/v1"
)

var logger = capnslog.NewPackageLogger("github.com/opencurve/hbase-operator", "k8sutil")

const (
	// LastAppliedAnnotation records the desired state the operator last wrote.
	LastAppliedAnnotation = "hbase.stackable.tech/last-applied-configuration"
)

// EnvVars turns a map into env vars sorted by name.
func EnvVars(m map[string]string) []v1.EnvVar {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	vars := make([]v1.EnvVar, 0, len(names))
	for _, name := range names {
		vars = append(vars, v1.EnvVar{Name: name, Value: m[name]})
	}
	return vars
}

// MergeEnvVars appends overrides to base. A variable already in base is
// replaced in place.
func MergeEnvVars(base []v1.EnvVar, overrides ...v1.EnvVar) []v1.EnvVar {
	out := append([]v1.EnvVar{}, base...)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Name == o.Name {
				out[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}
