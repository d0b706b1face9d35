// Package opa configures the HBase access controller that asks an Open
// Policy Agent for authorization decisions.
package opa

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"emperror.dev/errors"
	"k8s.io/client-go/kubernetes"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/k8sutil"
)

const (
	defaultDryRun       = false
	defaultCacheActive  = true
	defaultCacheSeconds = 5 * 60
	defaultCacheSize    = 1000
	// DefaultPolicyURL is used when no OPA is configured.
	DefaultPolicyURL = "http://localhost:8081/v1/data/hbase/allow"

	// OPA discovery ConfigMaps publish the base URL under this key
	discoveryURLEntry = "OPA"
	accessController  = "tech.stackable.hbase.OpenPolicyAgentAccessController"
)

var ErrConstructEndpoint = errors.NewPlain("failed to construct OPA endpoint URL for authorizer")

// Config is the OPA side channel of one cluster.
type Config struct {
	PolicyURL    string
	DryRun       bool
	CacheActive  bool
	CacheSeconds int
	CacheSize    int
}

// NewConfig returns the default settings for policyURL.
func NewConfig(policyURL string) *Config {
	return &Config{
		PolicyURL:    policyURL,
		DryRun:       defaultDryRun,
		CacheActive:  defaultCacheActive,
		CacheSeconds: defaultCacheSeconds,
		CacheSize:    defaultCacheSize,
	}
}

// DocumentURL builds the URL of the allow rule: the base URL from the
// discovery ConfigMap, then the package path. The package defaults to the
// cluster name.
func DocumentURL(baseURL string, pkg *string, clusterName string) string {
	name := clusterName
	if pkg != nil && *pkg != "" {
		name = *pkg
	}
	return fmt.Sprintf("%s/v1/data/%s/allow", strings.TrimRight(baseURL, "/"), strings.ReplaceAll(name, ".", "/"))
}

// FromCluster resolves the OPA settings of cluster. It returns nil when no
// authorization is configured.
func FromCluster(ctx context.Context, clientset kubernetes.Interface, c *v1alpha1.HbaseCluster) (*Config, error) {
	authz := c.Spec.ClusterConfig.Authorization
	if authz == nil {
		return nil, nil
	}
	name := authz.Opa.ConfigMapName
	cm, err := k8sutil.GetConfigMapByName(ctx, clientset, c.Namespace, name)
	if err != nil {
		return nil, errors.WrapIfWithDetails(errors.Combine(ErrConstructEndpoint, err), "failed to read OPA discovery ConfigMap", "configMap", name)
	}
	base, ok := cm.Data[discoveryURLEntry]
	if !ok || base == "" {
		return nil, errors.WithDetails(ErrConstructEndpoint, "configMap", name, "entry", discoveryURLEntry)
	}
	return NewConfig(DocumentURL(base, authz.Opa.Package, c.Name)), nil
}

// HbaseSiteConfig are the hbase-site.xml properties enabling the access controller.
func (c *Config) HbaseSiteConfig() map[string]string {
	return map[string]string{
		"hbase.security.authorization.opa.policy.url":           c.PolicyURL,
		"hbase.security.authorization.opa.policy.dryrun":        strconv.FormatBool(c.DryRun),
		"hbase.security.authorization.opa.policy.cache.active":  strconv.FormatBool(c.CacheActive),
		"hbase.security.authorization.opa.policy.cache.seconds": strconv.Itoa(c.CacheSeconds),
		"hbase.security.authorization.opa.policy.cache.size":    strconv.Itoa(c.CacheSize),
		"hbase.coprocessor.region.classes":                      accessController,
		"hbase.coprocessor.master.classes":                      accessController,
		"hbase.coprocessor.regionserver.classes":                accessController,
	}
}
