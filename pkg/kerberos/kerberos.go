// Package kerberos derives the Kerberos and TLS settings of a secured cluster.
package kerberos

import (
	"fmt"
	"strconv"
	"time"

	"emperror.dev/errors"
	corev1 "k8s.io/api/core/v1"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/config"
	"github.com/opencurve/hbase-operator/pkg/k8sutil"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

// ErrObjectMissingNamespace is returned for clusters without a namespace, the
// principals contain it.
var ErrObjectMissingNamespace = errors.NewPlain("object is missing namespace")

const (
	defaultTLSSecretClass = "tls"
	// httpServiceName is the SPNEGO principal of the web UIs and the REST API
	httpServiceName  = "HTTP"
	realmPlaceholder = "${env.KERBEROS_REALM}"
)

// Enabled reports whether the cluster authenticates with Kerberos.
func Enabled(c *v1alpha1.HbaseCluster) bool {
	return c.Spec.ClusterConfig.Authentication != nil
}

// HTTPSEnabled reports whether web UIs and REST are served over TLS. This is
// the case whenever authentication is configured.
func HTTPSEnabled(c *v1alpha1.HbaseCluster) bool {
	return TLSSecretClass(c) != ""
}

// TLSSecretClass is empty when TLS is off.
func TLSSecretClass(c *v1alpha1.HbaseCluster) string {
	auth := c.Spec.ClusterConfig.Authentication
	if auth == nil {
		return ""
	}
	if auth.TLSSecretClass == "" {
		return defaultTLSSecretClass
	}
	return auth.TLSSecretClass
}

func principalHostPart(c *v1alpha1.HbaseCluster) (string, error) {
	if c.Namespace == "" {
		return "", errors.WithDetails(ErrObjectMissingNamespace, "cluster", c.Name)
	}
	return fmt.Sprintf("%s.%s.svc.cluster.local@%s", c.Name, c.Namespace, realmPlaceholder), nil
}

func principals(host string) map[string]string {
	return map[string]string{
		"hbase.master.kerberos.principal":       roles.Master.KerberosServiceName() + "/" + host,
		"hbase.regionserver.kerberos.principal": roles.RegionServer.KerberosServiceName() + "/" + host,
		"hbase.rest.kerberos.principal":         roles.RestServer.KerberosServiceName() + "/" + host,
	}
}

// ConfigProperties are the hbase-site.xml properties of a secured cluster.
// The realm is left as a placeholder the start script fills in.
func ConfigProperties(c *v1alpha1.HbaseCluster) (map[string]string, error) {
	if !Enabled(c) {
		return map[string]string{}, nil
	}
	host, err := principalHostPart(c)
	if err != nil {
		return nil, err
	}

	props := principals(host)
	for k, v := range map[string]string{
		"hbase.security.authentication":  "kerberos",
		"hbase.security.authorization":   "true",
		"hbase.rpc.protection":           "privacy",
		"dfs.data.transfer.protection":   "privacy",
		"hbase.rpc.engine":               "org.apache.hadoop.hbase.ipc.SecureRpcEngine",
		"hbase.master.keytab.file":       config.KerberosKeytab,
		"hbase.regionserver.keytab.file": config.KerberosKeytab,
		"hbase.rest.keytab.file":         config.KerberosKeytab,

		"hbase.coprocessor.master.classes": "org.apache.hadoop.hbase.security.access.AccessController",
		"hbase.coprocessor.region.classes": "org.apache.hadoop.hbase.security.token.TokenProvider,org.apache.hadoop.hbase.security.access.AccessController",

		"hbase.rest.authentication.type":               "kerberos",
		"hbase.rest.authentication.kerberos.principal": httpServiceName + "/" + host,
		"hbase.rest.authentication.kerberos.keytab":    config.KerberosKeytab,

		"hbase.ssl.enabled":                 "true",
		"hbase.http.policy":                 "HTTPS_ONLY",
		"hbase.http.filter.no-store.enable": "true",

		"hbase.rest.ssl.enabled":           "true",
		"hbase.rest.ssl.keystore.store":    config.TLSStoreDir + "/keystore.p12",
		"hbase.rest.ssl.keystore.password": config.TLSStorePassword,
		"hbase.rest.ssl.keystore.type":     "pkcs12",

		"hbase.master.info.port":       strconv.Itoa(config.MasterUIPort),
		"hbase.regionserver.info.port": strconv.Itoa(config.RegionServerUIPort),
	} {
		props[k] = v
	}
	return props, nil
}

// DiscoveryConfigProperties are the properties clients need to talk to a
// secured cluster.
func DiscoveryConfigProperties(c *v1alpha1.HbaseCluster) (map[string]string, error) {
	if !Enabled(c) {
		return map[string]string{}, nil
	}
	host, err := principalHostPart(c)
	if err != nil {
		return nil, err
	}

	props := principals(host)
	props["hbase.security.authentication"] = "kerberos"
	props["hbase.rpc.protection"] = "privacy"
	props["hbase.ssl.enabled"] = "true"
	return props, nil
}

// SSLServerSettings are the ssl-server.xml properties, empty without TLS.
func SSLServerSettings(c *v1alpha1.HbaseCluster) map[string]string {
	if !HTTPSEnabled(c) {
		return map[string]string{}
	}
	return map[string]string{
		"ssl.server.truststore.location": config.TLSStoreDir + "/truststore.p12",
		"ssl.server.truststore.type":     "pkcs12",
		"ssl.server.truststore.password": config.TLSStorePassword,
		"ssl.server.keystore.location":   config.TLSStoreDir + "/keystore.p12",
		"ssl.server.keystore.type":       "pkcs12",
		"ssl.server.keystore.password":   config.TLSStorePassword,
	}
}

// SSLClientSettings are the ssl-client.xml properties, empty without TLS.
func SSLClientSettings(c *v1alpha1.HbaseCluster) map[string]string {
	if !HTTPSEnabled(c) {
		return map[string]string{}
	}
	return map[string]string{
		"ssl.client.truststore.location": config.TLSStoreDir + "/truststore.p12",
		"ssl.client.truststore.type":     "pkcs12",
		"ssl.client.truststore.password": config.TLSStorePassword,
	}
}

// PodConfig holds what a secured cluster adds to the hbase container and its pod.
type PodConfig struct {
	Volumes      []corev1.Volume
	VolumeMounts []corev1.VolumeMount
	Env          []corev1.EnvVar
}

// BuildPodConfig requests the keytab and the TLS stores from the secret
// operator. certLifetime is the lifetime requested for the TLS certificate.
func BuildPodConfig(c *v1alpha1.HbaseCluster, role roles.Role, certLifetime time.Duration) PodConfig {
	var pc PodConfig
	if auth := c.Spec.ClusterConfig.Authentication; auth != nil {
		keytab := k8sutil.SecretOperatorVolume{
			Class:                auth.Kerberos.SecretClass,
			Scopes:               []string{k8sutil.SecretScopeService(c.Name)},
			KerberosServiceNames: []string{role.KerberosServiceName(), httpServiceName},
		}
		pc.Volumes = append(pc.Volumes, keytab.Volume(config.KerberosVolume))
		pc.VolumeMounts = append(pc.VolumeMounts, corev1.VolumeMount{Name: config.KerberosVolume, MountPath: config.KerberosDir})
		pc.Env = append(pc.Env,
			corev1.EnvVar{Name: "KRB5_CONFIG", Value: config.KerberosConfFile},
			corev1.EnvVar{Name: config.HbaseOpts, Value: "-Djava.security.krb5.conf=" + config.KerberosConfFile},
		)
	}

	if class := TLSSecretClass(c); class != "" {
		tls := k8sutil.SecretOperatorVolume{
			Class:          class,
			Scopes:         []string{k8sutil.SecretScopePod, k8sutil.SecretScopeNode},
			Format:         k8sutil.SecretFormatTLSPkcs12,
			Pkcs12Password: config.TLSStorePassword,
			CertLifetime:   certLifetime,
		}
		pc.Volumes = append(pc.Volumes, tls.Volume(config.TLSVolume))
		pc.VolumeMounts = append(pc.VolumeMounts, corev1.VolumeMount{Name: config.TLSVolume, MountPath: config.TLSStoreDir})
	}
	return pc
}

// ContainerStartCommands read the realm from krb5.conf and write it into
// hbase-site.xml before HBase starts.
func ContainerStartCommands(c *v1alpha1.HbaseCluster) string {
	if !Enabled(c) {
		return ""
	}
	return fmt.Sprintf(`export KERBEROS_REALM=$(grep -oP 'default_realm = \K.*' %s)
sed -i -e 's/${env.KERBEROS_REALM}/'"$KERBEROS_REALM/g" %s/%s`, config.KerberosConfFile, config.ConfigDir, config.HbaseSiteXML)
}
