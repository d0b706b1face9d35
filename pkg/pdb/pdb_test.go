package pdb

import (
	"testing"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/utils/pointer"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

func newCluster() *daemon.Cluster {
	hc := &v1alpha1.HbaseCluster{ObjectMeta: metav1.ObjectMeta{Name: "simple-hbase", Namespace: "default"}}
	return &daemon.Cluster{
		Namespace:      "default",
		NamespacedName: types.NamespacedName{Namespace: "default", Name: "simple-hbase"},
		HbaseCluster:   hc,
		Image:          daemon.ResolvedProductImage{AppVersionLabel: "2.4.17-stackable23.7.0"},
	}
}

func TestBuild(t *testing.T) {
	b := Build(newCluster(), roles.RegionServer, v1alpha1.RoleConfig{})
	if b == nil {
		t.Fatal("budgets are enabled by default")
	}
	if b.Name != "simple-hbase-regionserver" {
		t.Errorf("unexpected name %s", b.Name)
	}
	if b.Spec.MaxUnavailable.IntValue() != 1 {
		t.Errorf("expected maxUnavailable 1, got %s", b.Spec.MaxUnavailable.String())
	}
	if _, ok := b.Spec.Selector.MatchLabels[daemon.RoleGroupLabel]; ok {
		t.Error("the budget covers all role groups of the role")
	}
	if b.Spec.Selector.MatchLabels[daemon.ComponentLabel] != "regionserver" {
		t.Errorf("unexpected selector %v", b.Spec.Selector.MatchLabels)
	}
}

func TestBuildConfigured(t *testing.T) {
	rc := v1alpha1.RoleConfig{PodDisruptionBudget: v1alpha1.PodDisruptionBudgetConfig{MaxUnavailable: pointer.Int32(2)}}
	b := Build(newCluster(), roles.Master, rc)
	if b.Spec.MaxUnavailable.IntValue() != 2 {
		t.Errorf("expected maxUnavailable 2, got %s", b.Spec.MaxUnavailable.String())
	}

	rc.PodDisruptionBudget.Enabled = pointer.Bool(false)
	if Build(newCluster(), roles.Master, rc) != nil {
		t.Error("expected no budget when disabled")
	}
}
