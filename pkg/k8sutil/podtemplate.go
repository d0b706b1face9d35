package k8sutil

import (
	"github.com/pkg/errors"
	v1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/strategicpatch"
)

// ApplyPodOverrides merges each override into template, in order, with the
// strategic merge patch semantics kubectl uses. Containers and volumes are
// merged by name.
func ApplyPodOverrides(template *v1.PodTemplateSpec, overrides ...*v1.PodTemplateSpec) error {
	for _, override := range overrides {
		if override == nil {
			continue
		}
		original, err := json.Marshal(template)
		if err != nil {
			return errors.Wrap(err, "failed to encode pod template")
		}
		patch, err := overridePatch(override)
		if err != nil {
			return err
		}
		merged, err := strategicpatch.StrategicMergePatch(original, patch, v1.PodTemplateSpec{})
		if err != nil {
			return errors.Wrap(err, "failed to apply pod overrides")
		}
		result := v1.PodTemplateSpec{}
		if err := json.Unmarshal(merged, &result); err != nil {
			return errors.Wrap(err, "failed to decode pod template")
		}
		*template = result
	}
	return nil
}

// overridePatch encodes override without null values. Typed pod templates
// encode unset lists like containers as null, which a strategic merge patch
// would read as a deletion.
func overridePatch(override *v1.PodTemplateSpec) ([]byte, error) {
	raw, err := json.Marshal(override)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode pod overrides")
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to decode pod overrides")
	}
	patch, err := json.Marshal(pruneNulls(fields))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode pod overrides")
	}
	return patch, nil
}

func pruneNulls(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, child := range t {
			if child == nil {
				delete(t, k)
				continue
			}
			t[k] = pruneNulls(child)
		}
		return t
	case []interface{}:
		for i := range t {
			t[i] = pruneNulls(t[i])
		}
		return t
	}
	return v
}
