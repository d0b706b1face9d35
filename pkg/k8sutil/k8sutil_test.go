package k8sutil

import (
	"context"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
)

func newScheme(t *testing.T) *runtime.Scheme {
	t.Helper()
	s := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(s); err != nil {
		t.Fatalf("failed to build scheme: %v", err)
	}
	if err := v1alpha1.AddToScheme(s); err != nil {
		t.Fatalf("failed to build scheme: %v", err)
	}
	return s
}

func newOwner() *v1alpha1.HbaseCluster {
	return &v1alpha1.HbaseCluster{
		ObjectMeta: metav1.ObjectMeta{Name: "simple-hbase", Namespace: "default", UID: "3c8d3b5e"},
	}
}

var clusterLabels = map[string]string{"app.kubernetes.io/instance": "simple-hbase"}

func configMap(name string, data map[string]string) *corev1.ConfigMap {
	labels := map[string]string{}
	for k, v := range clusterLabels {
		labels[k] = v
	}
	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default", Labels: labels},
		Data:       data,
	}
}

func TestApply(t *testing.T) {
	ctx := context.TODO()
	c := fake.NewClientBuilder().WithScheme(newScheme(t)).Build()

	if _, err := Apply(ctx, c, configMap("cm", map[string]string{"a": "1"})); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	live := &corev1.ConfigMap{}
	if err := c.Get(ctx, client.ObjectKey{Namespace: "default", Name: "cm"}, live); err != nil {
		t.Fatalf("object was not created: %v", err)
	}
	if live.Annotations[LastAppliedAnnotation] == "" {
		t.Error("expected the last applied annotation")
	}
	version := live.ResourceVersion

	if _, err := Apply(ctx, c, configMap("cm", map[string]string{"a": "1"})); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := c.Get(ctx, client.ObjectKey{Namespace: "default", Name: "cm"}, live); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if live.ResourceVersion != version {
		t.Error("an unchanged object should not be updated")
	}

	if _, err := Apply(ctx, c, configMap("cm", map[string]string{"a": "2"})); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := c.Get(ctx, client.ObjectKey{Namespace: "default", Name: "cm"}, live); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if live.Data["a"] != "2" {
		t.Errorf("object was not updated: %v", live.Data)
	}
}

func TestDeleteOrphaned(t *testing.T) {
	ctx := context.TODO()
	s := newScheme(t)
	owner := newOwner()
	foreign := configMap("foreign", nil)
	c := fake.NewClientBuilder().WithScheme(s).WithObjects(owner, foreign).Build()
	info := NewOwnerInfo(owner, s)

	first := NewClusterResources(c, info, "default", clusterLabels)
	for _, name := range []string{"keep", "orphan"} {
		if _, err := first.Add(ctx, configMap(name, nil)); err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
	}
	deleted, err := first.DeleteOrphaned(ctx)
	if err != nil || deleted != 0 {
		t.Errorf("nothing is orphaned after the first pass, got %d, %v", deleted, err)
	}

	second := NewClusterResources(c, info, "default", clusterLabels)
	if _, err := second.Add(ctx, configMap("keep", nil)); err != nil {
		t.Fatalf("failed to add keep: %v", err)
	}
	deleted, err = second.DeleteOrphaned(ctx)
	if err != nil || deleted != 1 {
		t.Errorf("expected one orphan, got %d, %v", deleted, err)
	}
	deleted, err = second.DeleteOrphaned(ctx)
	if err != nil || deleted != 0 {
		t.Errorf("orphans are deleted once, got %d, %v", deleted, err)
	}

	list := &corev1.ConfigMapList{}
	if err := c.List(ctx, list, client.InNamespace("default")); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	var names []string
	for _, cm := range list.Items {
		names = append(names, cm.Name)
	}
	sort.Strings(names)
	if diff := cmp.Diff([]string{"foreign", "keep"}, names); diff != "" {
		t.Errorf("remaining ConfigMaps mismatch (-want +got):\n%s", diff)
	}
}

func TestAddRequiresClusterLabels(t *testing.T) {
	s := newScheme(t)
	owner := newOwner()
	c := fake.NewClientBuilder().WithScheme(s).Build()
	r := NewClusterResources(c, NewOwnerInfo(owner, s), "default", clusterLabels)

	unlabeled := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: "cm", Namespace: "default"}}
	if _, err := r.Add(context.TODO(), unlabeled); err == nil {
		t.Error("expected objects without the cluster labels to be rejected")
	}
}

func TestSetClusterCondition(t *testing.T) {
	cluster := newOwner()
	SetClusterCondition(cluster, v1alpha1.ClusterCondition{
		Type:   v1alpha1.ConditionAvailable,
		Status: v1alpha1.ConditionStatusFalse,
		Reason: v1alpha1.ConditionRolloutInProgress,
	})
	if cluster.Status.Phase != v1alpha1.ClusterUpdating {
		t.Errorf("expected Updating, got %s", cluster.Status.Phase)
	}

	SetClusterCondition(cluster, v1alpha1.ClusterCondition{
		Type:    v1alpha1.ConditionFailure,
		Status:  v1alpha1.ConditionStatusTrue,
		Reason:  v1alpha1.ConditionReconcileFailed,
		Message: "no master role defined",
	})
	if cluster.Status.Phase != v1alpha1.ClusterFailed || cluster.Status.Message != "no master role defined" {
		t.Errorf("expected Failed, got %s: %s", cluster.Status.Phase, cluster.Status.Message)
	}

	SetClusterCondition(cluster, v1alpha1.ClusterCondition{
		Type:   v1alpha1.ConditionAvailable,
		Status: v1alpha1.ConditionStatusTrue,
		Reason: v1alpha1.ConditionRolloutComplete,
	})
	if cluster.Status.Phase != v1alpha1.ClusterRunning {
		t.Errorf("a failure is cleared by the next update, got %s", cluster.Status.Phase)
	}
	if GetClusterCondition(cluster, v1alpha1.ConditionFailure) != nil {
		t.Error("expected the failure condition to be dropped")
	}
	if len(cluster.Status.Conditions) != 1 {
		t.Errorf("expected one condition, got %+v", cluster.Status.Conditions)
	}
}

func TestMergeEnvVars(t *testing.T) {
	base := []corev1.EnvVar{{Name: "A", Value: "1"}, {Name: "B", Value: "2"}}
	got := MergeEnvVars(base, EnvVars(map[string]string{"C": "3", "A": "override"})...)
	want := []corev1.EnvVar{{Name: "A", Value: "override"}, {Name: "B", Value: "2"}, {Name: "C", Value: "3"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
	if base[0].Value != "1" {
		t.Error("base was modified")
	}
}

func TestApplyPodOverrides(t *testing.T) {
	template := &corev1.PodTemplateSpec{
		ObjectMeta: metav1.ObjectMeta{Labels: map[string]string{"app": "hbase"}},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{
				{Name: "hbase", Image: "hbase:2.4", Env: []corev1.EnvVar{{Name: "A", Value: "1"}}},
				{Name: "vector", Image: "vector"},
			},
		},
	}
	override := &corev1.PodTemplateSpec{
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{
				{Name: "hbase", Env: []corev1.EnvVar{{Name: "B", Value: "2"}}},
			},
		},
	}
	if err := ApplyPodOverrides(template, nil, override); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(template.Spec.Containers) != 2 {
		t.Fatalf("containers are merged by name, got %d", len(template.Spec.Containers))
	}
	hbase := template.Spec.Containers[0]
	if hbase.Image != "hbase:2.4" || len(hbase.Env) != 2 {
		t.Errorf("unexpected container after override: %+v", hbase)
	}
	if template.Labels["app"] != "hbase" {
		t.Errorf("labels were lost: %v", template.Labels)
	}
}

func TestFinalizer(t *testing.T) {
	ctx := context.TODO()
	owner := newOwner()
	owner.Finalizers = []string{"other.example.com"}
	c := fake.NewClientBuilder().WithScheme(newScheme(t)).WithObjects(owner).Build()

	for i := 0; i < 2; i++ {
		if err := EnsureFinalizer(ctx, c, owner); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}
	live := &v1alpha1.HbaseCluster{}
	if err := c.Get(ctx, client.ObjectKeyFromObject(owner), live); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if diff := cmp.Diff([]string{"other.example.com", ClusterFinalizer}, live.Finalizers); diff != "" {
		t.Errorf("finalizers mismatch (-want +got):\n%s", diff)
	}

	if err := ReleaseFinalizer(ctx, c, live); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := c.Get(ctx, client.ObjectKeyFromObject(owner), live); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if diff := cmp.Diff([]string{"other.example.com"}, live.Finalizers); diff != "" {
		t.Errorf("finalizers mismatch (-want +got):\n%s", diff)
	}
}
