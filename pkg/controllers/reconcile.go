package controllers

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	appsv1 "k8s.io/api/apps/v1"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/discovery"
	"github.com/opencurve/hbase-operator/pkg/k8sutil"
	"github.com/opencurve/hbase-operator/pkg/opa"
	"github.com/opencurve/hbase-operator/pkg/pdb"
	"github.com/opencurve/hbase-operator/pkg/productconfig"
	"github.com/opencurve/hbase-operator/pkg/rolegroup"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

// resolvedGroup is a role group whose config is merged and validated.
type resolvedGroup struct {
	ref    daemon.RoleGroupRef
	merged roles.MergedConfig
	spec   *roles.RoleGroupSpec
	bundle productconfig.Bundle
}

// reconcileCluster runs one pass: it resolves the config of every role group,
// applies the generated objects and deletes the ones no longer generated.
func (r *HbaseClusterReconciler) reconcileCluster(ctx context.Context, log logr.Logger, hbaseCluster *v1alpha1.HbaseCluster) (ctrl.Result, error) {
	nn := types.NamespacedName{Namespace: hbaseCluster.Namespace, Name: hbaseCluster.Name}
	cluster := &daemon.Cluster{
		Context:            r.Context,
		Namespace:          hbaseCluster.Namespace,
		NamespacedName:     nn,
		ObservedGeneration: hbaseCluster.Generation,
		OwnerInfo:          k8sutil.NewOwnerInfo(hbaseCluster, r.Scheme),
		HbaseCluster:       hbaseCluster,
	}

	cluster.Image = daemon.ResolveImage(hbaseCluster.Spec.Image, r.Context.OperatorVersion)
	log.V(1).Info("resolved product image", "image", cluster.Image.Image)

	info, err := discovery.Fetch(ctx, r.Context.Clientset, hbaseCluster)
	if err != nil {
		return ctrl.Result{}, err
	}
	cluster.Discovery = info

	// hbase-site.xml carries the authorizer settings, so OPA is resolved
	// before the properties are built
	if cluster.Opa, err = opa.FromCluster(ctx, r.Context.Clientset, hbaseCluster); err != nil {
		return ctrl.Result{}, err
	}

	groups, err := resolveRoleGroups(cluster)
	if err != nil {
		return ctrl.Result{}, err
	}

	resources := k8sutil.NewClusterResources(r.Client, cluster.OwnerInfo, cluster.Namespace, daemon.ClusterLabels(cluster.Name()))
	if _, err := resources.Add(ctx, cluster.BuildServiceAccount()); err != nil {
		return ctrl.Result{}, errors.Wrap(err, "failed to apply service account")
	}
	if _, err := resources.Add(ctx, cluster.BuildRoleBinding()); err != nil {
		return ctrl.Result{}, errors.Wrap(err, "failed to apply role binding")
	}

	ready := true
	for _, g := range groups {
		groupReady, err := applyRoleGroup(ctx, cluster, resources, g)
		if err != nil {
			return ctrl.Result{}, err
		}
		ready = ready && groupReady
	}

	for _, role := range roles.All {
		rc, ok := roles.RoleConfig(hbaseCluster, role)
		if !ok {
			continue
		}
		budget := pdb.Build(cluster, role, rc)
		if budget == nil {
			continue
		}
		if _, err := resources.Add(ctx, budget); err != nil {
			return ctrl.Result{}, errors.Wrapf(err, "failed to apply pod disruption budget of role %s", role)
		}
	}

	discoveryCM, err := rolegroup.BuildDiscoveryConfigMap(cluster)
	if err != nil {
		return ctrl.Result{}, err
	}
	if _, err := resources.Add(ctx, discoveryCM); err != nil {
		return ctrl.Result{}, errors.Wrap(err, "failed to apply discovery config map")
	}

	deleted, err := resources.DeleteOrphaned(ctx)
	orphansDeleted.Add(float64(deleted))
	if err != nil {
		return ctrl.Result{}, errors.Wrap(err, "failed to delete orphaned resources")
	}
	if deleted > 0 {
		log.Info("deleted orphaned resources", "count", deleted)
	}

	if err := k8sutil.UpdateClusterCondition(ctx, &r.Context, hbaseCluster, statusConditions(hbaseCluster, ready)...); err != nil {
		return ctrl.Result{}, err
	}
	return ctrl.Result{}, nil
}

// resolveRoleGroups merges and validates the config of every role group and
// builds its properties, role by role and role groups sorted by name.
func resolveRoleGroups(cluster *daemon.Cluster) ([]resolvedGroup, error) {
	specs, err := roles.BuildRoleProperties(cluster.HbaseCluster)
	if err != nil {
		return nil, err
	}

	var groups []resolvedGroup
	for _, role := range roles.All {
		for _, group := range roles.RoleGroups(cluster.HbaseCluster, role) {
			ref := cluster.RoleGroupRef(role, group)
			merged, err := roles.MergedConfigFor(cluster.HbaseCluster, role, group, cluster.HdfsConfigMapName())
			if err != nil {
				return nil, err
			}
			spec := specs[role][group]
			bundle, err := rolegroup.Properties(cluster, ref, merged, spec)
			if err != nil {
				return nil, err
			}
			groups = append(groups, resolvedGroup{ref: ref, merged: merged, spec: spec, bundle: bundle})
		}
	}
	return groups, nil
}

// applyRoleGroup applies the Service, ConfigMap and StatefulSet of a role
// group and reports whether its StatefulSet is rolled out.
func applyRoleGroup(ctx context.Context, cluster *daemon.Cluster, resources *k8sutil.ClusterResources, g resolvedGroup) (bool, error) {
	name := g.ref.ObjectName()

	if _, err := resources.Add(ctx, rolegroup.BuildService(cluster, g.ref)); err != nil {
		return false, errors.Wrapf(err, "failed to apply service %q", name)
	}

	cm, err := rolegroup.BuildConfigMap(cluster, g.ref, g.merged, g.bundle)
	if err != nil {
		return false, err
	}
	if _, err := resources.Add(ctx, cm); err != nil {
		return false, errors.Wrapf(err, "failed to apply config map %q", name)
	}

	sts, err := rolegroup.BuildStatefulSet(cluster, g.ref, g.merged, g.spec)
	if err != nil {
		return false, err
	}
	applied, err := resources.Add(ctx, sts)
	if err != nil {
		return false, errors.Wrapf(err, "failed to apply statefulset %q", name)
	}
	live, ok := applied.(*appsv1.StatefulSet)
	if !ok {
		return false, errors.Errorf("unexpected type %T of applied statefulset %q", applied, name)
	}
	return statefulSetReady(live), nil
}

// statefulSetReady reports whether the controller has seen the latest spec
// and all desired replicas are ready.
func statefulSetReady(sts *appsv1.StatefulSet) bool {
	desired := int32(1)
	if sts.Spec.Replicas != nil {
		desired = *sts.Spec.Replicas
	}
	return sts.Status.ObservedGeneration >= sts.Generation &&
		sts.Status.ReadyReplicas >= desired &&
		sts.Status.UpdatedReplicas >= desired
}

func statusConditions(hbaseCluster *v1alpha1.HbaseCluster, ready bool) []v1alpha1.ClusterCondition {
	available := v1alpha1.ClusterCondition{
		Type:    v1alpha1.ConditionAvailable,
		Status:  v1alpha1.ConditionStatusTrue,
		Reason:  v1alpha1.ConditionRolloutComplete,
		Message: "All role groups are rolled out",
	}
	if !ready {
		available.Status = v1alpha1.ConditionStatusFalse
		available.Reason = v1alpha1.ConditionRolloutInProgress
		available.Message = "Waiting for role groups to roll out"
	}

	stopped := v1alpha1.ClusterCondition{
		Type:    v1alpha1.ConditionStopped,
		Status:  v1alpha1.ConditionStatusFalse,
		Reason:  v1alpha1.ConditionClusterRunning,
		Message: "The cluster is running",
	}
	if hbaseCluster.Spec.ClusterOperation.Stopped {
		stopped.Status = v1alpha1.ConditionStatusTrue
		stopped.Reason = v1alpha1.ConditionClusterStopped
		stopped.Message = "The cluster is stopped, all role groups are scaled to zero"
	}

	paused := v1alpha1.ClusterCondition{
		Type:    v1alpha1.ConditionReconciliationPaused,
		Status:  v1alpha1.ConditionStatusFalse,
		Reason:  v1alpha1.ConditionNotPaused,
		Message: fmt.Sprintf("Reconciled generation %d", hbaseCluster.Generation),
	}
	return []v1alpha1.ClusterCondition{available, stopped, paused}
}
