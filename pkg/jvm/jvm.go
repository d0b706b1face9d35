// Package jvm computes the heap size and the JVM arguments of HBase processes.
package jvm

import (
	"fmt"
	"regexp"
	"strings"

	"emperror.dev/errors"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/config"
)

// heapFactor is the share of the container memory limit given to the heap.
const heapFactor = 0.8

var (
	ErrInvalidMemoryLimit = errors.NewPlain("invalid memory limit")
	ErrInvalidRegex       = errors.NewPlain("invalid jvm argument regex")
)

// HeapSize returns the -Xmx value for a memory limit, in MiB, e.g. "819m" for 1Gi.
func HeapSize(memoryLimit resource.Quantity) (string, error) {
	bytes, ok := memoryLimit.AsInt64()
	if !ok || bytes <= 0 {
		return "", errors.WithDetails(ErrInvalidMemoryLimit, "limit", memoryLimit.String())
	}
	heap := int64(float64(bytes) / (1024 * 1024) * heapFactor)
	if heap <= 0 {
		return "", errors.WithDetails(ErrInvalidMemoryLimit, "limit", memoryLimit.String(), "reason", "heap below 1m")
	}
	return fmt.Sprintf("%dm", heap), nil
}

// GlobalArgs are the arguments for every hbase process of the container,
// including the CLI tools.
func GlobalArgs(kerberos bool) string {
	if kerberos {
		return krb5Arg
	}
	return ""
}

var krb5Arg = "-Djava.security.krb5.conf=" + config.KerberosConfFile

// RoleArgs builds the arguments of the role's server process. The
// operator's arguments come first, then role and role group overrides are
// applied in that order. Heap flags are dropped, the heap is set with
// HBASE_HEAPSIZE.
func RoleArgs(role, productVersion string, kerberos bool, roleOverrides, groupOverrides *v1alpha1.JvmArgumentOverrides) (string, error) {
	args := []string{"-Djava.security.properties=" + config.ConfigDir + "/" + config.SecurityProperties}
	if strings.HasPrefix(productVersion, "2.4") {
		args = append(args, fmt.Sprintf("-javaagent:%s/jmx_prometheus_javaagent.jar=%d:%s/%s.yaml",
			config.JmxDir, config.MetricsPort, config.JmxDir, role))
	}
	if kerberos {
		args = append(args, krb5Arg)
	}

	var err error
	for _, o := range []*v1alpha1.JvmArgumentOverrides{roleOverrides, groupOverrides} {
		if args, err = applyOverrides(args, o); err != nil {
			return "", err
		}
	}

	kept := args[:0]
	for _, a := range args {
		lower := strings.ToLower(a)
		if strings.HasPrefix(lower, "-xms") || strings.HasPrefix(lower, "-xmx") {
			continue
		}
		kept = append(kept, a)
	}
	return strings.Join(kept, " "), nil
}

func applyOverrides(args []string, o *v1alpha1.JvmArgumentOverrides) ([]string, error) {
	if o == nil {
		return args, nil
	}

	patterns := make([]*regexp.Regexp, 0, len(o.RemoveRegex))
	for _, expr := range o.RemoveRegex {
		re, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return nil, errors.WrapIfWithDetails(ErrInvalidRegex, err.Error(), "regex", expr)
		}
		patterns = append(patterns, re)
	}

	out := make([]string, 0, len(args)+len(o.Add))
	for _, a := range args {
		if contains(o.Remove, a) || matchesAny(patterns, a) {
			continue
		}
		out = append(out, a)
	}
	for _, a := range o.Add {
		if !contains(out, a) {
			out = append(out, a)
		}
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
