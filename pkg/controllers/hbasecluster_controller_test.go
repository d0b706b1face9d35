package controllers

import (
	"context"
	"testing"
	"time"

	"emperror.dev/errors"
	"github.com/go-logr/logr"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	policyv1 "k8s.io/api/policy/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	kubefake "k8s.io/client-go/kubernetes/fake"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/utils/pointer"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/clusterd"
	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/discovery"
	"github.com/opencurve/hbase-operator/pkg/jvm"
	"github.com/opencurve/hbase-operator/pkg/k8sutil"
	"github.com/opencurve/hbase-operator/pkg/productconfig"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

var clusterKey = types.NamespacedName{Namespace: "default", Name: "simple-hbase"}

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

func newCluster() *v1alpha1.HbaseCluster {
	return &v1alpha1.HbaseCluster{
		ObjectMeta: metav1.ObjectMeta{Name: clusterKey.Name, Namespace: clusterKey.Namespace, UID: "5f2c7d1a"},
		Spec: v1alpha1.HbaseClusterSpec{
			Image: v1alpha1.ProductImage{ProductVersion: "2.4.17"},
			ClusterConfig: v1alpha1.HbaseClusterConfig{
				HdfsConfigMapName:      "simple-hdfs",
				ZookeeperConfigMapName: "simple-znode",
			},
			Masters: &v1alpha1.Role{
				RoleGroups: map[string]v1alpha1.RoleGroup{
					"default": {Replicas: pointer.Int32(2)},
				},
			},
			RegionServers: &v1alpha1.RegionServerRole{
				RoleGroups: map[string]v1alpha1.RegionServerRoleGroup{
					"default": {Replicas: pointer.Int32(1)},
				},
			},
			RestServers: &v1alpha1.Role{
				RoleGroups: map[string]v1alpha1.RoleGroup{
					"default": {Replicas: pointer.Int32(1)},
				},
			},
		},
	}
}

func discoveryConfigMaps() []runtime.Object {
	return []runtime.Object{
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "simple-znode", Namespace: "default"},
			Data: map[string]string{
				discovery.ZookeeperHostsEntry:      "zk-0:2181",
				discovery.ZookeeperChrootEntry:     "/znode-123",
				discovery.ZookeeperClientPortEntry: "2181",
			},
		},
		&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "simple-hdfs", Namespace: "default"},
			Data: map[string]string{
				"core-site.xml": "<configuration/>",
				"hdfs-site.xml": "<configuration/>",
			},
		},
	}
}

func newReconciler(t *testing.T, cluster *v1alpha1.HbaseCluster, upstream ...runtime.Object) (*HbaseClusterReconciler, client.Client) {
	t.Helper()
	s := newScheme(t)
	c := fake.NewClientBuilder().WithScheme(s).WithObjects(cluster).Build()
	ctx := clusterd.Context{
		Clientset:       kubefake.NewSimpleClientset(upstream...),
		OperatorVersion: "23.7.0",
	}
	return NewHbaseClusterReconciler(c, logr.Discard(), s, ctx), c
}

func getCluster(t *testing.T, c client.Client) *v1alpha1.HbaseCluster {
	t.Helper()
	cluster := &v1alpha1.HbaseCluster{}
	if err := c.Get(context.TODO(), clusterKey, cluster); err != nil {
		t.Fatalf("failed to get cluster: %v", err)
	}
	return cluster
}

func TestReconcileCreatesObjects(t *testing.T) {
	r, c := newReconciler(t, newCluster(), discoveryConfigMaps()...)
	ctx := context.TODO()

	result, err := r.Reconcile(ctx, ctrl.Request{NamespacedName: clusterKey})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if result.Requeue || result.RequeueAfter != 0 {
		t.Errorf("unexpected requeue %+v", result)
	}

	for _, role := range roles.All {
		name := "simple-hbase-" + string(role) + "-default"
		for _, obj := range []client.Object{&corev1.Service{}, &corev1.ConfigMap{}, &appsv1.StatefulSet{}} {
			if err := c.Get(ctx, types.NamespacedName{Namespace: "default", Name: name}, obj); err != nil {
				t.Errorf("missing %T %s: %v", obj, name, err)
			}
		}
		budget := &policyv1.PodDisruptionBudget{}
		if err := c.Get(ctx, types.NamespacedName{Namespace: "default", Name: "simple-hbase-" + string(role)}, budget); err != nil {
			t.Errorf("missing pod disruption budget of %s: %v", role, err)
		}
	}
	if err := c.Get(ctx, clusterKey, &corev1.ConfigMap{}); err != nil {
		t.Errorf("missing discovery ConfigMap: %v", err)
	}
	if err := c.Get(ctx, types.NamespacedName{Namespace: "default", Name: "simple-hbase-serviceaccount"}, &corev1.ServiceAccount{}); err != nil {
		t.Errorf("missing service account: %v", err)
	}
	if err := c.Get(ctx, types.NamespacedName{Namespace: "default", Name: "simple-hbase-rolebinding"}, &rbacv1.RoleBinding{}); err != nil {
		t.Errorf("missing role binding: %v", err)
	}

	sts := &appsv1.StatefulSet{}
	if err := c.Get(ctx, types.NamespacedName{Namespace: "default", Name: "simple-hbase-master-default"}, sts); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(sts.OwnerReferences) != 1 || sts.OwnerReferences[0].UID != "5f2c7d1a" {
		t.Errorf("statefulset is not owned by the cluster: %+v", sts.OwnerReferences)
	}
	if *sts.Spec.Replicas != 2 {
		t.Errorf("expected 2 replicas, got %d", *sts.Spec.Replicas)
	}

	cluster := getCluster(t, c)
	if len(cluster.Finalizers) != 1 {
		t.Errorf("expected the finalizer, got %v", cluster.Finalizers)
	}
	if cluster.Status.Phase != v1alpha1.ClusterUpdating {
		t.Errorf("pods are not ready yet, expected Updating, got %s", cluster.Status.Phase)
	}
}

func TestReconcileDeletesOrphans(t *testing.T) {
	cluster := newCluster()
	r, c := newReconciler(t, cluster, discoveryConfigMaps()...)
	ctx := context.TODO()

	if _, err := r.Reconcile(ctx, ctrl.Request{NamespacedName: clusterKey}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	live := getCluster(t, c)
	live.Spec.RestServers = nil
	if err := c.Update(ctx, live); err != nil {
		t.Fatalf("failed to update cluster: %v", err)
	}
	if _, err := r.Reconcile(ctx, ctrl.Request{NamespacedName: clusterKey}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	err := c.Get(ctx, types.NamespacedName{Namespace: "default", Name: "simple-hbase-restserver-default"}, &appsv1.StatefulSet{})
	if !kerrors.IsNotFound(err) {
		t.Errorf("expected the rest server statefulset to be deleted, got %v", err)
	}
	err = c.Get(ctx, types.NamespacedName{Namespace: "default", Name: "simple-hbase-restserver"}, &policyv1.PodDisruptionBudget{})
	if !kerrors.IsNotFound(err) {
		t.Errorf("expected the rest server budget to be deleted, got %v", err)
	}
	if err := c.Get(ctx, types.NamespacedName{Namespace: "default", Name: "simple-hbase-master-default"}, &appsv1.StatefulSet{}); err != nil {
		t.Errorf("master statefulset should be kept: %v", err)
	}
}

func TestReconcileNotFound(t *testing.T) {
	r, _ := newReconciler(t, newCluster())
	result, err := r.Reconcile(context.TODO(), ctrl.Request{NamespacedName: types.NamespacedName{Namespace: "default", Name: "missing"}})
	if err != nil || result.Requeue || result.RequeueAfter != 0 {
		t.Errorf("expected nothing to do, got %+v, %v", result, err)
	}
}

func TestReconcileInvalidSpec(t *testing.T) {
	cluster := newCluster()
	cluster.Spec.Masters = nil
	r, c := newReconciler(t, cluster, discoveryConfigMaps()...)

	result, err := r.Reconcile(context.TODO(), ctrl.Request{NamespacedName: clusterKey})
	if err != nil || result.Requeue || result.RequeueAfter != 0 {
		t.Errorf("an invalid spec is not retried, got %+v, %v", result, err)
	}
	live := getCluster(t, c)
	if live.Status.Phase != v1alpha1.ClusterFailed {
		t.Errorf("expected Failed, got %s", live.Status.Phase)
	}
	if live.Status.Message != roles.ErrNoMasterRole.Error() {
		t.Errorf("unexpected message %q", live.Status.Message)
	}
}

func TestReconcileMissingUpstream(t *testing.T) {
	r, c := newReconciler(t, newCluster())

	result, err := r.Reconcile(context.TODO(), ctrl.Request{NamespacedName: clusterKey})
	if err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if result.RequeueAfter != 5*time.Second {
		t.Errorf("expected a requeue after 5s, got %+v", result)
	}
	if getCluster(t, c).Status.Phase != v1alpha1.ClusterFailed {
		t.Error("expected the failure to be published")
	}
	if err := c.Get(context.TODO(), types.NamespacedName{Namespace: "default", Name: "simple-hbase-master-default"}, &appsv1.StatefulSet{}); !kerrors.IsNotFound(err) {
		t.Errorf("nothing should be applied before the dependencies are found, got %v", err)
	}
}

func TestReconcilePaused(t *testing.T) {
	cluster := newCluster()
	cluster.Spec.ClusterOperation.ReconciliationPaused = true
	r, c := newReconciler(t, cluster, discoveryConfigMaps()...)

	if _, err := r.Reconcile(context.TODO(), ctrl.Request{NamespacedName: clusterKey}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if getCluster(t, c).Status.Phase != v1alpha1.ClusterPaused {
		t.Errorf("expected Paused, got %s", getCluster(t, c).Status.Phase)
	}
	if err := c.Get(context.TODO(), types.NamespacedName{Namespace: "default", Name: "simple-hbase-master-default"}, &appsv1.StatefulSet{}); !kerrors.IsNotFound(err) {
		t.Errorf("a paused cluster is not reconciled, got %v", err)
	}
}

func TestReconcileStopped(t *testing.T) {
	cluster := newCluster()
	cluster.Spec.ClusterOperation.Stopped = true
	r, c := newReconciler(t, cluster, discoveryConfigMaps()...)

	if _, err := r.Reconcile(context.TODO(), ctrl.Request{NamespacedName: clusterKey}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	sts := &appsv1.StatefulSet{}
	if err := c.Get(context.TODO(), types.NamespacedName{Namespace: "default", Name: "simple-hbase-regionserver-default"}, sts); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if *sts.Spec.Replicas != 0 {
		t.Errorf("expected 0 replicas, got %d", *sts.Spec.Replicas)
	}
	if getCluster(t, c).Status.Phase != v1alpha1.ClusterStopped {
		t.Errorf("expected Stopped, got %s", getCluster(t, c).Status.Phase)
	}
}

func TestReconcileDelete(t *testing.T) {
	cluster := newCluster()
	now := metav1.Now()
	cluster.DeletionTimestamp = &now
	cluster.Finalizers = []string{k8sutil.ClusterFinalizer}
	r, c := newReconciler(t, cluster, discoveryConfigMaps()...)
	ctx := context.TODO()

	labels := daemon.ClusterLabels(cluster.Name)
	owned := []client.Object{
		&appsv1.StatefulSet{ObjectMeta: metav1.ObjectMeta{Name: "simple-hbase-master-default", Namespace: "default", Labels: labels}},
		&corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: "simple-hbase-master-default", Namespace: "default", Labels: labels}},
		&corev1.Service{ObjectMeta: metav1.ObjectMeta{Name: "simple-hbase-master-default", Namespace: "default", Labels: labels}},
	}
	for _, obj := range owned {
		if err := ctrl.SetControllerReference(cluster, obj, r.Scheme); err != nil {
			t.Fatalf("failed to set owner: %v", err)
		}
		if err := c.Create(ctx, obj); err != nil {
			t.Fatalf("failed to create %T: %v", obj, err)
		}
	}
	foreign := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: "simple-hbase-extra", Namespace: "default", Labels: labels}}
	if err := c.Create(ctx, foreign); err != nil {
		t.Fatalf("failed to create config map: %v", err)
	}

	if _, err := r.Reconcile(ctx, ctrl.Request{NamespacedName: clusterKey}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	for _, obj := range owned {
		if err := c.Get(ctx, client.ObjectKeyFromObject(obj), obj); !kerrors.IsNotFound(err) {
			t.Errorf("expected %T %s to be deleted, got %v", obj, obj.GetName(), err)
		}
	}
	if err := c.Get(ctx, client.ObjectKeyFromObject(foreign), &corev1.ConfigMap{}); err != nil {
		t.Errorf("objects not owned by the cluster are kept: %v", err)
	}

	live := &v1alpha1.HbaseCluster{}
	err := c.Get(ctx, clusterKey, live)
	if err != nil && !kerrors.IsNotFound(err) {
		t.Fatalf("unexpected error %v", err)
	}
	if err == nil && len(live.Finalizers) != 0 {
		t.Errorf("expected the finalizer to be removed, got %v", live.Finalizers)
	}
}

func TestReconcileInvalidSettings(t *testing.T) {
	cluster := newCluster()
	cluster.Spec.Masters.Overrides.JvmArgumentOverrides = &v1alpha1.JvmArgumentOverrides{RemoveRegex: []string{"-Xmx["}}
	r, c := newReconciler(t, cluster, discoveryConfigMaps()...)

	_, err := r.Reconcile(context.TODO(), ctrl.Request{NamespacedName: clusterKey})
	if !errors.Is(err, jvm.ErrInvalidRegex) {
		t.Errorf("invalid settings are retried with backoff, got %v", err)
	}
	if getCluster(t, c).Status.Phase != v1alpha1.ClusterFailed {
		t.Error("expected the failure to be published")
	}
}

// conflictingStatusClient fails every status update with a conflict.
type conflictingStatusClient struct {
	client.Client
}

func (c conflictingStatusClient) Status() client.StatusWriter {
	return conflictingStatusWriter{c.Client.Status()}
}

type conflictingStatusWriter struct {
	client.StatusWriter
}

func (conflictingStatusWriter) Update(_ context.Context, obj client.Object, _ ...client.SubResourceUpdateOption) error {
	gr := schema.GroupResource{Group: v1alpha1.CustomResourceGroup, Resource: "hbaseclusters"}
	return kerrors.NewConflict(gr, obj.GetName(), errors.New("the object has been modified"))
}

func TestReconcileReturnsStatusErrors(t *testing.T) {
	r, c := newReconciler(t, newCluster(), discoveryConfigMaps()...)
	r = NewHbaseClusterReconciler(conflictingStatusClient{c}, logr.Discard(), r.Scheme, r.Context)

	_, err := r.Reconcile(context.TODO(), ctrl.Request{NamespacedName: clusterKey})
	if !kerrors.IsConflict(err) {
		t.Errorf("expected the status conflict to be returned, got %v", err)
	}
	if err := c.Get(context.TODO(), types.NamespacedName{Namespace: "default", Name: "simple-hbase-master-default"}, &appsv1.StatefulSet{}); err != nil {
		t.Errorf("objects are applied before the status: %v", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want errorClass
	}{
		{errors.WithDetails(roles.ErrMissingRoleGroup, "role", "master"), classSpec},
		{roles.ErrNoMasterRole, classSpec},
		{errors.WrapIf(roles.ErrFragmentValidation, "invalid config"), classValidation},
		{errors.WrapIfWithDetails(jvm.ErrInvalidRegex, "missing ]", "regex", "-Xmx["), classValidation},
		{errors.WithDetails(productconfig.ErrInvalidProperty, "property", "hbase.rootdir"), classValidation},
		{errors.Combine(discovery.ErrMissingConfigMap, errors.New("not found")), classUpstream},
		{errors.New("connection refused"), classOther},
	}
	for _, tt := range tests {
		if got := classify(tt.err); got != tt.want {
			t.Errorf("%v: expected %s, got %s", tt.err, tt.want, got)
		}
	}
}

func TestClustersForConfigMap(t *testing.T) {
	cluster := newCluster()
	cluster.Spec.ClusterConfig.Authorization = &v1alpha1.AuthorizationConfig{
		Opa: v1alpha1.OpaConfig{ConfigMapName: "simple-opa"},
	}
	r, _ := newReconciler(t, cluster)

	for _, name := range []string{"simple-znode", "simple-hdfs", "simple-opa"} {
		cm := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "default"}}
		requests := r.clustersForConfigMap(cm)
		if len(requests) != 1 || requests[0].NamespacedName != clusterKey {
			t.Errorf("%s: expected the cluster to be enqueued, got %v", name, requests)
		}
	}
	other := &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: "unrelated", Namespace: "default"}}
	if requests := r.clustersForConfigMap(other); len(requests) != 0 {
		t.Errorf("expected no requests, got %v", requests)
	}
}
