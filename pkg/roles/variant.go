package roles

import (
	"emperror.dev/errors"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
)

// ConfigFragment is a partially specified role config. The variant always
// matches the role the fragment was read from.
type ConfigFragment interface {
	Role() Role
	// Merge fills the unset fields of the receiver from defaults. defaults
	// must be the same variant.
	Merge(defaults ConfigFragment) error
	// Validate turns a fully merged fragment into a MergedConfig.
	Validate() (MergedConfig, error)

	isConfigFragment()
}

// MasterFragment is the config fragment of a master role or role group.
type MasterFragment struct {
	Config v1alpha1.HbaseConfigFragment
}

// RegionServerFragment is the config fragment of a region server role or role group.
type RegionServerFragment struct {
	Config v1alpha1.RegionServerConfigFragment
}

// RestServerFragment is the config fragment of a rest server role or role group.
type RestServerFragment struct {
	Config v1alpha1.HbaseConfigFragment
}

func (*MasterFragment) Role() Role       { return Master }
func (*RegionServerFragment) Role() Role { return RegionServer }
func (*RestServerFragment) Role() Role   { return RestServer }

func (*MasterFragment) isConfigFragment()       {}
func (*RegionServerFragment) isConfigFragment() {}
func (*RestServerFragment) isConfigFragment()   {}

func incompatible(f, defaults ConfigFragment) error {
	return errors.WithDetails(ErrIncompatibleMergeTypes, "role", f.Role(), "defaultsRole", defaults.Role())
}

func (f *MasterFragment) Merge(defaults ConfigFragment) error {
	d, ok := defaults.(*MasterFragment)
	if !ok {
		return incompatible(f, defaults)
	}
	f.Config.Merge(&d.Config)
	return nil
}

func (f *RegionServerFragment) Merge(defaults ConfigFragment) error {
	d, ok := defaults.(*RegionServerFragment)
	if !ok {
		return incompatible(f, defaults)
	}
	f.Config.Merge(&d.Config)
	return nil
}

func (f *RestServerFragment) Merge(defaults ConfigFragment) error {
	d, ok := defaults.(*RestServerFragment)
	if !ok {
		return incompatible(f, defaults)
	}
	f.Config.Merge(&d.Config)
	return nil
}

func (f *MasterFragment) Validate() (MergedConfig, error) {
	c, err := validateHbaseConfig(&f.Config)
	if err != nil {
		return nil, err
	}
	return &MasterConfig{HbaseConfig: c}, nil
}

func (f *RegionServerFragment) Validate() (MergedConfig, error) {
	c, err := validateHbaseConfig(&f.Config.HbaseConfigFragment)
	if err != nil {
		return nil, err
	}
	mover, err := validateRegionMover(f.Config.RegionMover)
	if err != nil {
		return nil, err
	}
	return &RegionServerConfig{HbaseConfig: c, regionMover: mover}, nil
}

func (f *RestServerFragment) Validate() (MergedConfig, error) {
	c, err := validateHbaseConfig(&f.Config)
	if err != nil {
		return nil, err
	}
	return &RestServerConfig{HbaseConfig: c}, nil
}

// commonFragment gives access to the fields shared by all variants.
func commonFragment(f ConfigFragment) *v1alpha1.HbaseConfigFragment {
	switch v := f.(type) {
	case *MasterFragment:
		return &v.Config
	case *RegionServerFragment:
		return &v.Config.HbaseConfigFragment
	case *RestServerFragment:
		return &v.Config
	}
	return nil
}
