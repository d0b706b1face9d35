package daemon

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/pointer"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
)

func TestResolveImage(t *testing.T) {
	tests := []struct {
		name string
		img  v1alpha1.ProductImage
		want ResolvedProductImage
	}{
		{
			name: "operator version",
			img:  v1alpha1.ProductImage{ProductVersion: "2.4.17"},
			want: ResolvedProductImage{
				Image:           "docker.stackable.tech/stackable/hbase:2.4.17-stackable0.0.0-dev",
				AppVersionLabel: "2.4.17-stackable0.0.0-dev",
				ProductVersion:  "2.4.17",
				PullPolicy:      corev1.PullAlways,
			},
		},
		{
			name: "stackable version and repo",
			img: v1alpha1.ProductImage{
				ProductVersion:   "2.4.17",
				StackableVersion: pointer.String("23.7.0"),
				Repo:             pointer.String("my.registry/hbase/"),
				PullPolicy:       "IfNotPresent",
				PullSecrets:      []v1alpha1.LocalObjectReference{{Name: "registry"}},
			},
			want: ResolvedProductImage{
				Image:           "my.registry/hbase/hbase:2.4.17-stackable23.7.0",
				AppVersionLabel: "2.4.17-stackable23.7.0",
				ProductVersion:  "2.4.17",
				PullPolicy:      corev1.PullIfNotPresent,
				PullSecrets:     []corev1.LocalObjectReference{{Name: "registry"}},
			},
		},
		{
			name: "custom",
			img: v1alpha1.ProductImage{
				ProductVersion: "2.4.17",
				Custom:         pointer.String("my.registry:5000/hbase:custom@sha256:abc"),
			},
			want: ResolvedProductImage{
				Image:           "my.registry:5000/hbase:custom@sha256:abc",
				AppVersionLabel: "2.4.17-custom",
				ProductVersion:  "2.4.17",
				PullPolicy:      corev1.PullAlways,
			},
		},
		{
			name: "custom without tag",
			img: v1alpha1.ProductImage{
				ProductVersion: "2.6.0",
				Custom:         pointer.String("my.registry:5000/hbase"),
			},
			want: ResolvedProductImage{
				Image:           "my.registry:5000/hbase",
				AppVersionLabel: "2.6.0-latest",
				ProductVersion:  "2.6.0",
				PullPolicy:      corev1.PullAlways,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveImage(tt.img, "0.0.0-dev")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("resolved image mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLabelValue(t *testing.T) {
	if got := labelValue("2.4.17+build/1"); got != "2.4.17-build-1" {
		t.Errorf("unexpected label value %s", got)
	}
	long := labelValue(strings.Repeat("a", 62) + ".b")
	if len(long) > 63 || strings.HasSuffix(long, ".") {
		t.Errorf("label value not cut correctly: %s", long)
	}
}

func TestLabels(t *testing.T) {
	ref := RoleGroupRef{Cluster: "simple-hbase", Role: "master", RoleGroup: "default"}
	if ref.ObjectName() != "simple-hbase-master-default" {
		t.Errorf("unexpected object name %s", ref.ObjectName())
	}
	want := map[string]string{
		NameLabel:      "hbase",
		InstanceLabel:  "simple-hbase",
		ComponentLabel: "master",
		RoleGroupLabel: "default",
	}
	if diff := cmp.Diff(want, RoleGroupSelectorLabels(ref)); diff != "" {
		t.Errorf("selector mismatch (-want +got):\n%s", diff)
	}
	labels := RecommendedLabels("simple-hbase", "2.4.17", "discovery", "")
	if _, ok := labels[RoleGroupLabel]; ok {
		t.Error("role-group label should be left out")
	}
	if labels[ManagedByLabel] != "hbase.stackable.tech_hbasecluster" {
		t.Errorf("unexpected managed-by %s", labels[ManagedByLabel])
	}
}
