package roles

import (
	"emperror.dev/errors"
	"github.com/imdario/mergo"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/affinity"
)

// RoleGroupSpec carries everything about a role group apart from its config
// fragment.
type RoleGroupSpec struct {
	Role      Role
	RoleGroup string
	Replicas  *int32
	// ConfigOverrides and EnvOverrides are the role values overlaid with the
	// role group values.
	ConfigOverrides map[string]map[string]string
	EnvOverrides    map[string]string
	// JVM and pod overrides are applied role first, then role group.
	RoleJvmOverrides      *v1alpha1.JvmArgumentOverrides
	RoleGroupJvmOverrides *v1alpha1.JvmArgumentOverrides
	RolePodOverrides      *corev1.PodTemplateSpec
	RoleGroupPodOverrides *corev1.PodTemplateSpec
}

type roleParts struct {
	overrides  v1alpha1.Overrides
	roleConfig v1alpha1.RoleConfig
	groups     map[string]groupParts
}

type groupParts struct {
	overrides v1alpha1.Overrides
	replicas  *int32
	selector  *metav1.LabelSelector
}

// lookup reads the role and role group fragments of cluster. The fragments are
// copies and may be merged into.
func lookup(c *v1alpha1.HbaseCluster, role Role, group string) (roleFrag, groupFrag ConfigFragment, err error) {
	missing := errors.WithDetails(ErrMissingHbaseRole, "role", role)
	missingGroup := errors.WithDetails(ErrMissingRoleGroup, "role", role, "roleGroup", group)

	switch role {
	case Master, RestServer:
		r := c.Spec.Masters
		if role == RestServer {
			r = c.Spec.RestServers
		}
		if r == nil {
			return nil, nil, missing
		}
		rg, ok := r.RoleGroups[group]
		if !ok {
			return nil, nil, missingGroup
		}
		if role == Master {
			return &MasterFragment{Config: *r.Config.DeepCopy()}, &MasterFragment{Config: *rg.Config.DeepCopy()}, nil
		}
		return &RestServerFragment{Config: *r.Config.DeepCopy()}, &RestServerFragment{Config: *rg.Config.DeepCopy()}, nil
	case RegionServer:
		r := c.Spec.RegionServers
		if r == nil {
			return nil, nil, missing
		}
		rg, ok := r.RoleGroups[group]
		if !ok {
			return nil, nil, missingGroup
		}
		return &RegionServerFragment{Config: *r.Config.DeepCopy()}, &RegionServerFragment{Config: *rg.Config.DeepCopy()}, nil
	}
	return nil, nil, errors.WithDetails(ErrInvalidRole, "role", role)
}

func parts(c *v1alpha1.HbaseCluster, role Role) (*roleParts, bool) {
	switch role {
	case Master, RestServer:
		r := c.Spec.Masters
		if role == RestServer {
			r = c.Spec.RestServers
		}
		if r == nil {
			return nil, false
		}
		p := &roleParts{overrides: r.Overrides, roleConfig: r.RoleConfig, groups: map[string]groupParts{}}
		for name, rg := range r.RoleGroups {
			p.groups[name] = groupParts{overrides: rg.Overrides, replicas: rg.Replicas, selector: rg.Selector}
		}
		return p, true
	case RegionServer:
		r := c.Spec.RegionServers
		if r == nil {
			return nil, false
		}
		p := &roleParts{overrides: r.Overrides, roleConfig: r.RoleConfig, groups: map[string]groupParts{}}
		for name, rg := range r.RoleGroups {
			p.groups[name] = groupParts{overrides: rg.Overrides, replicas: rg.Replicas, selector: rg.Selector}
		}
		return p, true
	}
	return nil, false
}

// RoleGroups returns the sorted role group names of role. It is empty when the
// role is not defined.
func RoleGroups(c *v1alpha1.HbaseCluster, role Role) []string {
	p, ok := parts(c, role)
	if !ok {
		return nil
	}
	return sortedKeys(p.groups)
}

// RoleConfig returns the role wide settings, the zero value when the role is
// not defined.
func RoleConfig(c *v1alpha1.HbaseCluster, role Role) (v1alpha1.RoleConfig, bool) {
	p, ok := parts(c, role)
	if !ok {
		return v1alpha1.RoleConfig{}, false
	}
	return p.roleConfig, true
}

// MergedConfigFor resolves the config of a role group: the role is merged
// over the operator defaults, the role group over the role, and the result is
// validated.
func MergedConfigFor(c *v1alpha1.HbaseCluster, role Role, group, hdfsDiscoveryCMName string) (MergedConfig, error) {
	if group == "" {
		return nil, ErrNoRoleGroup
	}
	defaults, err := DefaultFragment(role, c.Name, hdfsDiscoveryCMName)
	if err != nil {
		return nil, err
	}
	roleFrag, groupFrag, err := lookup(c, role, group)
	if err != nil {
		return nil, err
	}

	if p, ok := parts(c, role); ok {
		applyLegacySelector(commonFragment(groupFrag), p.groups[group].selector)
	}

	if err := roleFrag.Merge(defaults); err != nil {
		return nil, err
	}
	if err := groupFrag.Merge(roleFrag); err != nil {
		return nil, err
	}
	logger.Debugf("merged config of role group %s/%s: %+v", role, group, groupFrag)

	merged, err := groupFrag.Validate()
	if err != nil {
		return nil, errors.WrapIfWithDetails(err, "invalid config", "role", role, "roleGroup", group)
	}
	return merged, nil
}

// applyLegacySelector adds a legacy node selector to the role group fragment
// before it is merged.
func applyLegacySelector(f *v1alpha1.HbaseConfigFragment, selector *metav1.LabelSelector) {
	if selector == nil {
		return
	}
	if f.Affinity == nil {
		f.Affinity = &v1alpha1.AffinityFragment{}
	}
	affinity.AddLegacySelector(f.Affinity, selector)
}

// Spec returns the replicas and overrides of a role group.
func Spec(c *v1alpha1.HbaseCluster, role Role, group string) (*RoleGroupSpec, error) {
	if group == "" {
		return nil, ErrNoRoleGroup
	}
	p, ok := parts(c, role)
	if !ok {
		return nil, errors.WithDetails(ErrMissingHbaseRole, "role", role)
	}
	g, ok := p.groups[group]
	if !ok {
		return nil, errors.WithDetails(ErrMissingRoleGroup, "role", role, "roleGroup", group)
	}

	s := &RoleGroupSpec{
		Role:                  role,
		RoleGroup:             group,
		Replicas:              g.replicas,
		ConfigOverrides:       map[string]map[string]string{},
		EnvOverrides:          map[string]string{},
		RoleJvmOverrides:      p.overrides.JvmArgumentOverrides,
		RoleGroupJvmOverrides: g.overrides.JvmArgumentOverrides,
		RolePodOverrides:      p.overrides.PodOverrides,
		RoleGroupPodOverrides: g.overrides.PodOverrides,
	}
	for _, layer := range []v1alpha1.Overrides{p.overrides, g.overrides} {
		for _, file := range sortedKeys(layer.ConfigOverrides) {
			dst := s.ConfigOverrides[file]
			if dst == nil {
				dst = map[string]string{}
			}
			if err := mergo.Merge(&dst, layer.ConfigOverrides[file], mergo.WithOverride); err != nil {
				return nil, errors.WrapIfWithDetails(err, "failed to merge config overrides", "role", role, "roleGroup", group, "file", file)
			}
			s.ConfigOverrides[file] = dst
		}
		if len(layer.EnvOverrides) == 0 {
			continue
		}
		if err := mergo.Merge(&s.EnvOverrides, layer.EnvOverrides, mergo.WithOverride); err != nil {
			return nil, errors.WrapIfWithDetails(err, "failed to merge env overrides", "role", role, "roleGroup", group)
		}
	}
	return s, nil
}

// BuildRoleProperties returns the role group specs of every defined role.
// Masters and region servers must be defined.
func BuildRoleProperties(c *v1alpha1.HbaseCluster) (map[Role]map[string]*RoleGroupSpec, error) {
	if c.Spec.Masters == nil {
		return nil, ErrNoMasterRole
	}
	if c.Spec.RegionServers == nil {
		return nil, ErrNoRegionServerRole
	}

	out := map[Role]map[string]*RoleGroupSpec{}
	for _, role := range All {
		groups := RoleGroups(c, role)
		if groups == nil {
			continue
		}
		out[role] = map[string]*RoleGroupSpec{}
		for _, group := range groups {
			s, err := Spec(c, role, group)
			if err != nil {
				return nil, err
			}
			out[role][group] = s
		}
	}
	return out, nil
}
