package roles

import (
	"sort"

	"emperror.dev/errors"
	"github.com/coreos/pkg/capnslog"

	"github.com/opencurve/hbase-operator/pkg/fragment"
)

var logger = capnslog.NewPackageLogger("github.com/opencurve/hbase-operator", "roles")

var (
	ErrInvalidRole            = errors.NewPlain("invalid hbase role")
	ErrMissingHbaseRole       = errors.NewPlain("hbase role is not defined")
	ErrMissingRoleGroup       = errors.NewPlain("role group is not defined")
	ErrNoRoleGroup            = errors.NewPlain("role-group is not valid")
	ErrNoMasterRole           = errors.NewPlain("no master role defined")
	ErrNoRegionServerRole     = errors.NewPlain("no regionserver role defined")
	ErrIncompatibleMergeTypes = errors.NewPlain("incompatible merge types")
	ErrFragmentValidation     = fragment.ErrValidation
)

// Role is one of the three HBase server roles.
type Role string

const (
	Master       Role = "master"
	RegionServer Role = "regionserver"
	RestServer   Role = "restserver"
)

// All lists the roles in the order their artifacts are applied.
var All = []Role{Master, RegionServer, RestServer}

// Parse returns the role named s.
func Parse(s string) (Role, error) {
	for _, r := range All {
		if string(r) == s {
			return r, nil
		}
	}
	return "", errors.WithDetails(ErrInvalidRole, "role", s)
}

func (r Role) String() string {
	return string(r)
}

// CLIRoleName is the name hbase's bin/hbase script knows the role by.
func (r Role) CLIRoleName() string {
	switch r {
	case RestServer:
		return "rest"
	default:
		return string(r)
	}
}

// KerberosServiceName is the service part of the role's principal.
func (r Role) KerberosServiceName() string {
	return "hbase"
}

// OptsEnvName is the hbase-env.sh variable carrying the role's JVM arguments.
func (r Role) OptsEnvName() string {
	switch r {
	case Master:
		return "HBASE_MASTER_OPTS"
	case RegionServer:
		return "HBASE_REGIONSERVER_OPTS"
	default:
		return "HBASE_REST_OPTS"
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
