package jvm

import (
	"testing"

	"emperror.dev/errors"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
)

func TestHeapSize(t *testing.T) {
	tests := []struct {
		limit string
		want  string
	}{
		{"1Gi", "819m"},
		{"512Mi", "409m"},
		{"43008Mi", "34406m"},
	}
	for _, tt := range tests {
		got, err := HeapSize(resource.MustParse(tt.limit))
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.limit, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.limit, tt.want, got)
		}
	}

	if _, err := HeapSize(resource.Quantity{}); !errors.Is(err, ErrInvalidMemoryLimit) {
		t.Errorf("expected ErrInvalidMemoryLimit for a zero limit, got %v", err)
	}
	if _, err := HeapSize(resource.MustParse("1Mi")); !errors.Is(err, ErrInvalidMemoryLimit) {
		t.Errorf("expected ErrInvalidMemoryLimit for a limit without heap, got %v", err)
	}
}

func TestRoleArgs(t *testing.T) {
	got, err := RoleArgs("master", "2.4.17", true, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := "-Djava.security.properties=/stackable/conf/security.properties " +
		"-javaagent:/stackable/jmx/jmx_prometheus_javaagent.jar=9100:/stackable/jmx/master.yaml " +
		"-Djava.security.krb5.conf=/stackable/kerberos/krb5.conf"
	if got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}

	got, err = RoleArgs("regionserver", "2.6.0", false, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != "-Djava.security.properties=/stackable/conf/security.properties" {
		t.Errorf("unexpected args %s", got)
	}
}

func TestRoleArgsOverrides(t *testing.T) {
	role := &v1alpha1.JvmArgumentOverrides{
		Add:    []string{"-Dfoo=role", "-Xmx4g", "-Dbar=1"},
		Remove: []string{"-Djava.security.properties=/stackable/conf/security.properties"},
	}
	group := &v1alpha1.JvmArgumentOverrides{
		Add:         []string{"-Dfoo=group"},
		RemoveRegex: []string{"-Dfoo=.*"},
	}
	got, err := RoleArgs("master", "2.6.0", false, role, group)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != "-Dbar=1 -Dfoo=group" {
		t.Errorf("unexpected args %q", got)
	}

	_, err = RoleArgs("master", "2.6.0", false, &v1alpha1.JvmArgumentOverrides{RemoveRegex: []string{"("}}, nil)
	if !errors.Is(err, ErrInvalidRegex) {
		t.Errorf("expected ErrInvalidRegex, got %v", err)
	}
}

func TestGlobalArgs(t *testing.T) {
	if GlobalArgs(false) != "" {
		t.Error("expected no global args without kerberos")
	}
	if GlobalArgs(true) != "-Djava.security.krb5.conf=/stackable/kerberos/krb5.conf" {
		t.Errorf("unexpected global args %s", GlobalArgs(true))
	}
}
