package k8sutil

import (
	"context"
	"time"

	"github.com/pkg/errors"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/clusterd"
)

// UpdateClusterCondition sets the conditions on cluster and writes its status.
func UpdateClusterCondition(ctx context.Context, c *clusterd.Context, cluster *v1alpha1.HbaseCluster, conditions ...v1alpha1.ClusterCondition) error {
	for _, condition := range conditions {
		SetClusterCondition(cluster, condition)
	}
	logger.Debugf("HbaseCluster %s/%s status: %q. %q", cluster.Namespace, cluster.Name, cluster.Status.Phase, cluster.Status.Message)

	return UpdateStatus(ctx, c.Client, cluster)
}

// isPersisted tells whether a condition survives updates of other conditions.
// Failed and Deleting only last until the next condition update.
func isPersisted(conditionType v1alpha1.ConditionType) bool {
	switch conditionType {
	case v1alpha1.ConditionAvailable, v1alpha1.ConditionStopped, v1alpha1.ConditionReconciliationPaused:
		return true
	}
	return false
}

// SetClusterCondition replaces the condition of the same type on cluster and
// recomputes the phase. The transition time only moves when status or message
// change.
func SetClusterCondition(cluster *v1alpha1.HbaseCluster, condition v1alpha1.ClusterCondition) {
	var currentCondition *v1alpha1.ClusterCondition
	var conditions []v1alpha1.ClusterCondition
	for _, existing := range cluster.Status.Conditions {
		if existing.Type != condition.Type {
			if isPersisted(existing.Type) {
				conditions = append(conditions, existing)
			}
			continue
		}

		currentCondition = existing.DeepCopy()
		if currentCondition.Status != condition.Status || currentCondition.Message != condition.Message {
			currentCondition.LastTransitionTime = metav1.NewTime(time.Now())
		}
		currentCondition.Status = condition.Status
		currentCondition.Reason = condition.Reason
		currentCondition.Message = condition.Message
	}

	if currentCondition == nil {
		currentCondition = condition.DeepCopy()
		currentCondition.LastTransitionTime = metav1.NewTime(time.Now())
	}
	currentCondition.ObservedGeneration = cluster.Generation

	conditions = append(conditions, *currentCondition)
	cluster.Status.Conditions = conditions

	// Once the cluster begins deleting, the phase should not revert back to any other phase
	if cluster.Status.Phase != v1alpha1.ClusterDeleting {
		cluster.Status.Phase = phaseOf(cluster.Status.Conditions)
		cluster.Status.Message = currentCondition.Message
	}
}

// GetClusterCondition returns the condition of type t, nil when it is not set.
func GetClusterCondition(cluster *v1alpha1.HbaseCluster, t v1alpha1.ConditionType) *v1alpha1.ClusterCondition {
	for i := range cluster.Status.Conditions {
		if cluster.Status.Conditions[i].Type == t {
			return &cluster.Status.Conditions[i]
		}
	}
	return nil
}

func phaseOf(conditions []v1alpha1.ClusterCondition) v1alpha1.ClusterPhase {
	byType := map[v1alpha1.ConditionType]v1alpha1.ConditionStatus{}
	for _, c := range conditions {
		byType[c.Type] = c.Status
	}
	switch {
	case byType[v1alpha1.ConditionDeleting] == v1alpha1.ConditionStatusTrue:
		return v1alpha1.ClusterDeleting
	case byType[v1alpha1.ConditionFailure] == v1alpha1.ConditionStatusTrue:
		return v1alpha1.ClusterFailed
	case byType[v1alpha1.ConditionReconciliationPaused] == v1alpha1.ConditionStatusTrue:
		return v1alpha1.ClusterPaused
	case byType[v1alpha1.ConditionStopped] == v1alpha1.ConditionStatusTrue:
		return v1alpha1.ClusterStopped
	}
	switch byType[v1alpha1.ConditionAvailable] {
	case v1alpha1.ConditionStatusTrue:
		return v1alpha1.ClusterRunning
	case v1alpha1.ConditionStatusFalse:
		return v1alpha1.ClusterUpdating
	}
	return v1alpha1.ClusterCreating
}

// UpdateStatus updates an object with a given status. The object is updated with the latest version
// from the server on a successful update.
func UpdateStatus(ctx context.Context, cli client.Client, obj client.Object) error {
	nsName := client.ObjectKeyFromObject(obj)

	// Try to update the status
	err := cli.Status().Update(ctx, obj)
	// If the object doesn't exist yet, we need to initialize it
	if kerrors.IsNotFound(err) {
		err = cli.Update(ctx, obj)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to update object %q status", nsName.String())
	}

	return nil
}
