package kerberos

import (
	"strings"
	"testing"
	"time"

	"emperror.dev/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

func securedCluster() *v1alpha1.HbaseCluster {
	return &v1alpha1.HbaseCluster{
		ObjectMeta: metav1.ObjectMeta{Name: "simple-hbase", Namespace: "default"},
		Spec: v1alpha1.HbaseClusterSpec{
			ClusterConfig: v1alpha1.HbaseClusterConfig{
				Authentication: &v1alpha1.AuthenticationConfig{
					Kerberos: v1alpha1.KerberosConfig{SecretClass: "kerberos-default"},
				},
			},
		},
	}
}

func TestUnsecuredCluster(t *testing.T) {
	c := securedCluster()
	c.Spec.ClusterConfig.Authentication = nil

	if Enabled(c) || HTTPSEnabled(c) {
		t.Error("expected kerberos and https to be off")
	}
	props, err := ConfigProperties(c)
	if err != nil || len(props) != 0 {
		t.Errorf("expected no properties, got %v, %v", props, err)
	}
	if len(SSLServerSettings(c)) != 0 || len(SSLClientSettings(c)) != 0 {
		t.Error("expected no ssl settings")
	}
	pc := BuildPodConfig(c, roles.Master, time.Hour)
	if len(pc.Volumes) != 0 || len(pc.VolumeMounts) != 0 || len(pc.Env) != 0 {
		t.Errorf("expected an empty pod config, got %+v", pc)
	}
	if ContainerStartCommands(c) != "" {
		t.Error("expected no start commands")
	}
}

func TestConfigProperties(t *testing.T) {
	c := securedCluster()
	props, err := ConfigProperties(c)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := map[string]string{
		"hbase.security.authentication":   "kerberos",
		"hbase.master.kerberos.principal": "hbase/simple-hbase.default.svc.cluster.local@${env.KERBEROS_REALM}",
		"hbase.http.policy":               "HTTPS_ONLY",
		"hbase.master.keytab.file":        "/stackable/kerberos/keytab",
	}
	for k, v := range want {
		if props[k] != v {
			t.Errorf("%s: expected %q, got %q", k, v, props[k])
		}
	}

	disc, err := DiscoveryConfigProperties(c)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := disc["hbase.master.keytab.file"]; ok {
		t.Error("discovery properties must not contain keytab paths")
	}
	if disc["hbase.rpc.protection"] != "privacy" {
		t.Errorf("unexpected discovery properties %v", disc)
	}

	c.Namespace = ""
	if _, err := ConfigProperties(c); !errors.Is(err, ErrObjectMissingNamespace) {
		t.Errorf("expected ErrObjectMissingNamespace, got %v", err)
	}
}

func TestTLSSecretClass(t *testing.T) {
	c := securedCluster()
	if TLSSecretClass(c) != "tls" {
		t.Errorf("expected the default tls class, got %q", TLSSecretClass(c))
	}
	c.Spec.ClusterConfig.Authentication.TLSSecretClass = "custom-tls"
	if TLSSecretClass(c) != "custom-tls" {
		t.Errorf("expected custom-tls, got %q", TLSSecretClass(c))
	}
	if SSLServerSettings(c)["ssl.server.keystore.type"] != "pkcs12" {
		t.Error("expected pkcs12 key stores")
	}
}

func TestBuildPodConfig(t *testing.T) {
	pc := BuildPodConfig(securedCluster(), roles.RegionServer, 24*time.Hour)
	if len(pc.Volumes) != 2 || len(pc.VolumeMounts) != 2 {
		t.Fatalf("expected kerberos and tls volumes, got %+v", pc)
	}
	if pc.Volumes[0].Name != "kerberos" || pc.Volumes[1].Name != "tls" {
		t.Errorf("unexpected volumes %s, %s", pc.Volumes[0].Name, pc.Volumes[1].Name)
	}
	ann := pc.Volumes[0].Ephemeral.VolumeClaimTemplate.Annotations
	if ann["secrets.stackable.tech/class"] != "kerberos-default" {
		t.Errorf("unexpected secret class %v", ann)
	}
	if ann["secrets.stackable.tech/kerberos.service.names"] != "hbase,HTTP" {
		t.Errorf("unexpected service names %v", ann)
	}
	tlsAnn := pc.Volumes[1].Ephemeral.VolumeClaimTemplate.Annotations
	if tlsAnn["secrets.stackable.tech/backend.autotls.cert.lifetime"] != "24h0m0s" {
		t.Errorf("unexpected cert lifetime %v", tlsAnn)
	}
	if pc.Env[0].Name != "KRB5_CONFIG" {
		t.Errorf("unexpected env %+v", pc.Env)
	}

	cmds := ContainerStartCommands(securedCluster())
	if !strings.Contains(cmds, "KERBEROS_REALM") || !strings.Contains(cmds, "/stackable/conf/hbase-site.xml") {
		t.Errorf("unexpected start commands %s", cmds)
	}
}
