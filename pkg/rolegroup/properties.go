// Package rolegroup synthesizes the Kubernetes objects of one HBase role
// group: its headless Service, its ConfigMap and its StatefulSet.
package rolegroup

import (
	"strconv"

	"emperror.dev/errors"
	"github.com/coreos/pkg/capnslog"

	"github.com/opencurve/hbase-operator/pkg/config"
	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/jvm"
	"github.com/opencurve/hbase-operator/pkg/kerberos"
	"github.com/opencurve/hbase-operator/pkg/productconfig"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

var logger = capnslog.NewPackageLogger("github.com/opencurve/hbase-operator", "rolegroup")

var ErrUnsupportedOverrideFile = errors.NewPlain("config overrides are not supported for this file")

// environment variables the start script exports from the listener volume
const (
	serviceHostEnv = "HBASE_SERVICE_HOST"
	servicePortEnv = "HBASE_SERVICE_PORT"
	infoPortEnv    = "HBASE_INFO_PORT"
)

// overridableFiles can be changed with configOverrides.
var overridableFiles = []string{
	config.HbaseSiteXML,
	config.HbaseEnvSh,
	config.SecurityProperties,
	config.SSLServerXML,
	config.SSLClientXML,
}

func envRef(name string) string {
	return "${env." + name + "}"
}

// bindSettings make the role announce the address and ports of its listener.
func bindSettings(role roles.Role) map[string]string {
	switch role {
	case roles.Master:
		return map[string]string{
			"hbase.master.hostname":        envRef(serviceHostEnv),
			"hbase.master.port":            envRef(servicePortEnv),
			"hbase.master.info.port":       envRef(infoPortEnv),
			"hbase.master.bound.info.port": strconv.Itoa(config.MasterUIPort),
		}
	case roles.RegionServer:
		return map[string]string{
			"hbase.unsafe.regionserver.hostname":                           envRef(serviceHostEnv),
			"hbase.unsafe.regionserver.hostname.disable.master.reversedns": "true",
			"hbase.regionserver.port":                                      envRef(servicePortEnv),
			"hbase.regionserver.info.port":                                 envRef(infoPortEnv),
			"hbase.regionserver.bound.info.port":                           strconv.Itoa(config.RegionServerUIPort),
		}
	case roles.RestServer:
		return map[string]string{
			"hbase.rest.hostname":  envRef(serviceHostEnv),
			"hbase.rest.port":      envRef(servicePortEnv),
			"hbase.rest.info.port": envRef(infoPortEnv),
		}
	}
	return map[string]string{}
}

// hbaseSite layers the computed hbase-site.xml properties: ZooKeeper,
// Kerberos, OPA and the listener bindings, later ones winning.
func hbaseSite(c *daemon.Cluster, role roles.Role, merged roles.MergedConfig) (map[string]string, error) {
	site := map[string]string{
		config.HbaseClusterDistributed: "true",
	}
	if rootdir := merged.HbaseRootdir(); rootdir != nil {
		site[config.HbaseRootdir] = *rootdir
	}

	layers := []map[string]string{c.Discovery.Zookeeper.HbaseSettings()}
	krb, err := kerberos.ConfigProperties(c.HbaseCluster)
	if err != nil {
		return nil, err
	}
	layers = append(layers, krb)
	if c.Opa != nil {
		layers = append(layers, c.Opa.HbaseSiteConfig())
	}
	layers = append(layers, bindSettings(role))

	for _, layer := range layers {
		for k, v := range layer {
			site[k] = v
		}
	}
	return site, nil
}

// hbaseEnv sets the heap and the JVM arguments of the role.
func hbaseEnv(c *daemon.Cluster, role roles.Role, merged roles.MergedConfig, spec *roles.RoleGroupSpec) (map[string]string, error) {
	heap, err := jvm.HeapSize(merged.Resources().MemoryLimit)
	if err != nil {
		return nil, err
	}
	secured := kerberos.Enabled(c.HbaseCluster)
	roleArgs, err := jvm.RoleArgs(string(role), c.Image.ProductVersion, secured, spec.RoleJvmOverrides, spec.RoleGroupJvmOverrides)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		config.HbaseHeapsize:  heap,
		config.HbaseOpts:      jvm.GlobalArgs(secured),
		role.OptsEnvName():    roleArgs,
		config.HbaseManagesZK: "false",
	}, nil
}

// Properties computes the config files of a role group, overlays the
// config overrides and validates the result against the product config
// schema. TLS files are left out when they would be empty.
func Properties(c *daemon.Cluster, ref daemon.RoleGroupRef, merged roles.MergedConfig, spec *roles.RoleGroupSpec) (productconfig.Bundle, error) {
	for file := range spec.ConfigOverrides {
		if !contains(overridableFiles, file) {
			return nil, errors.WithDetails(ErrUnsupportedOverrideFile, "roleGroup", ref.ObjectName(), "file", file)
		}
	}

	site, err := hbaseSite(c, ref.Role, merged)
	if err != nil {
		return nil, err
	}
	env, err := hbaseEnv(c, ref.Role, merged, spec)
	if err != nil {
		return nil, errors.WrapIfWithDetails(err, "failed to build hbase-env.sh", "roleGroup", ref.ObjectName())
	}
	computed := productconfig.Bundle{
		config.HbaseSiteXML:       site,
		config.HbaseEnvSh:         env,
		config.SecurityProperties: {},
		config.SSLServerXML:       kerberos.SSLServerSettings(c.HbaseCluster),
		config.SSLClientXML:       kerberos.SSLClientSettings(c.HbaseCluster),
	}

	schema := c.Context.ProductConfig
	if schema == nil {
		if schema, err = productconfig.LoadDefault(); err != nil {
			return nil, err
		}
	}
	bundle, err := schema.Build(string(ref.Role), computed.Files(), computed, spec.ConfigOverrides)
	if err != nil {
		return nil, errors.WrapIfWithDetails(err, "invalid properties", "roleGroup", ref.ObjectName())
	}
	for _, file := range []string{config.SSLServerXML, config.SSLClientXML} {
		if len(bundle[file]) == 0 {
			delete(bundle, file)
		}
	}
	logger.Debugf("properties of %s: %v", ref.ObjectName(), bundle)
	return bundle, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
