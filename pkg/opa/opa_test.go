package opa

import (
	"context"
	"testing"

	"emperror.dev/errors"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/utils/pointer"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
)

func TestDocumentURL(t *testing.T) {
	tests := []struct {
		base string
		pkg  *string
		want string
	}{
		{"http://opa:8081/", nil, "http://opa:8081/v1/data/simple-hbase/allow"},
		{"http://opa:8081", pointer.String("hbase.acl"), "http://opa:8081/v1/data/hbase/acl/allow"},
		{"http://opa:8081", pointer.String(""), "http://opa:8081/v1/data/simple-hbase/allow"},
	}
	for _, tt := range tests {
		if got := DocumentURL(tt.base, tt.pkg, "simple-hbase"); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}

func authorizedCluster() *v1alpha1.HbaseCluster {
	return &v1alpha1.HbaseCluster{
		ObjectMeta: metav1.ObjectMeta{Name: "simple-hbase", Namespace: "default"},
		Spec: v1alpha1.HbaseClusterSpec{
			ClusterConfig: v1alpha1.HbaseClusterConfig{
				Authorization: &v1alpha1.AuthorizationConfig{
					Opa: v1alpha1.OpaConfig{ConfigMapName: "simple-opa", Package: pointer.String("hbase")},
				},
			},
		},
	}
}

func TestFromCluster(t *testing.T) {
	ctx := context.TODO()

	c := authorizedCluster()
	c.Spec.ClusterConfig.Authorization = nil
	cfg, err := FromCluster(ctx, fake.NewSimpleClientset(), c)
	if cfg != nil || err != nil {
		t.Errorf("expected nothing without authorization, got %v, %v", cfg, err)
	}

	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "simple-opa", Namespace: "default"},
		Data:       map[string]string{"OPA": "http://simple-opa.default.svc.cluster.local:8081/"},
	}
	cfg, err = FromCluster(ctx, fake.NewSimpleClientset(cm), authorizedCluster())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if cfg.PolicyURL != "http://simple-opa.default.svc.cluster.local:8081/v1/data/hbase/allow" {
		t.Errorf("unexpected policy url %s", cfg.PolicyURL)
	}
	site := cfg.HbaseSiteConfig()
	if site["hbase.security.authorization.opa.policy.cache.seconds"] != "300" {
		t.Errorf("unexpected cache seconds %s", site["hbase.security.authorization.opa.policy.cache.seconds"])
	}
	if site["hbase.coprocessor.master.classes"] != accessController {
		t.Errorf("access controller not configured: %v", site)
	}

	_, err = FromCluster(ctx, fake.NewSimpleClientset(), authorizedCluster())
	if !errors.Is(err, ErrConstructEndpoint) {
		t.Errorf("expected ErrConstructEndpoint for a missing ConfigMap, got %v", err)
	}
	delete(cm.Data, "OPA")
	_, err = FromCluster(ctx, fake.NewSimpleClientset(cm), authorizedCluster())
	if !errors.Is(err, ErrConstructEndpoint) {
		t.Errorf("expected ErrConstructEndpoint for a missing entry, got %v", err)
	}
}
