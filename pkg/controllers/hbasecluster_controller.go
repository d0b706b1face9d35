/*


Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controllers

import (
	"context"
	"time"

	"github.com/coreos/pkg/capnslog"
	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	policyv1 "k8s.io/api/policy/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"
	"sigs.k8s.io/controller-runtime/pkg/source"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/clusterd"
	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/k8sutil"
)

var logger = capnslog.NewPackageLogger("github.com/opencurve/hbase-operator", "controller")

// maxConcurrentReconciles bounds the number of clusters reconciled at once.
// Passes of one cluster never overlap.
const maxConcurrentReconciles = 16

// HbaseClusterReconciler reconciles a HbaseCluster object
type HbaseClusterReconciler struct {
	Client  client.Client
	Log     logr.Logger
	Scheme  *runtime.Scheme
	Context clusterd.Context
}

func NewHbaseClusterReconciler(
	client client.Client,
	log logr.Logger,
	scheme *runtime.Scheme,
	context clusterd.Context,
) *HbaseClusterReconciler {
	context.Client = client
	return &HbaseClusterReconciler{
		Client:  client,
		Log:     log,
		Scheme:  scheme,
		Context: context,
	}
}

// +kubebuilder:rbac:groups=hbase.stackable.tech,resources=hbaseclusters,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=hbase.stackable.tech,resources=hbaseclusters/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=hbase.stackable.tech,resources=hbaseclusters/finalizers,verbs=update
// +kubebuilder:rbac:groups=core,resources=configmaps;services;serviceaccounts,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=apps,resources=statefulsets,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=policy,resources=poddisruptionbudgets,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=rbac.authorization.k8s.io,resources=rolebindings,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=rbac.authorization.k8s.io,resources=clusterroles,verbs=bind,resourceNames=hbase-clusterrole

func (r *HbaseClusterReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := r.Log.WithValues("hbasecluster", req.NamespacedName, "reconcileID", uuid.New().String())
	log.Info("reconciling HbaseCluster")
	start := time.Now()

	// Fetch the HbaseCluster instance
	hbaseCluster := &v1alpha1.HbaseCluster{}
	err := r.Client.Get(ctx, req.NamespacedName, hbaseCluster)
	if err != nil {
		if kerrors.IsNotFound(err) {
			log.Info("HbaseCluster resource not found. Ignoring since object must be deleted.")
			return reconcile.Result{}, nil
		}
		// Error reading the object - requeue the request.
		return reconcile.Result{}, errors.Wrap(err, "failed to get HbaseCluster")
	}

	// Delete: the CR was deleted
	if !hbaseCluster.GetDeletionTimestamp().IsZero() {
		return r.reconcileDelete(ctx, log, hbaseCluster)
	}

	// Set a finalizer so the generated objects are deleted before the cluster
	if err := k8sutil.EnsureFinalizer(ctx, r.Client, hbaseCluster); err != nil {
		return reconcile.Result{}, err
	}

	if hbaseCluster.Spec.ClusterOperation.ReconciliationPaused {
		log.Info("reconciliation is paused")
		if err := k8sutil.UpdateClusterCondition(ctx, &r.Context, hbaseCluster, v1alpha1.ClusterCondition{
			Type:    v1alpha1.ConditionReconciliationPaused,
			Status:  v1alpha1.ConditionStatusTrue,
			Reason:  v1alpha1.ConditionPausedByUser,
			Message: "The reconciliation of this cluster is paused",
		}); err != nil {
			logger.Errorf("failed to publish the paused condition of %s/%s. %v", hbaseCluster.Namespace, hbaseCluster.Name, err)
		}
		observePass(resultPaused, start)
		return reconcile.Result{}, nil
	}

	result, err := r.reconcileCluster(ctx, log, hbaseCluster)
	if err != nil {
		return r.handleError(ctx, log, hbaseCluster, err, start)
	}
	observePass(resultSucceeded, start)
	log.Info("reconciled HbaseCluster", "duration", time.Since(start).String())
	return result, nil
}

// reconcileDelete deletes every object generated for the cluster, then
// releases the finalizer. A failed deletion keeps the finalizer and is
// retried.
func (r *HbaseClusterReconciler) reconcileDelete(ctx context.Context, log logr.Logger, hbaseCluster *v1alpha1.HbaseCluster) (reconcile.Result, error) {
	if !controllerutil.ContainsFinalizer(hbaseCluster, k8sutil.ClusterFinalizer) {
		return reconcile.Result{}, nil
	}
	log.Info("deleting the HbaseCluster")
	if err := k8sutil.UpdateClusterCondition(ctx, &r.Context, hbaseCluster, v1alpha1.ClusterCondition{
		Type:    v1alpha1.ConditionDeleting,
		Status:  v1alpha1.ConditionStatusTrue,
		Reason:  v1alpha1.ConditionDeletingClusterReason,
		Message: "Deleting the generated objects",
	}); err != nil {
		return reconcile.Result{}, err
	}

	// nothing is added, so every owned object is an orphan
	resources := k8sutil.NewClusterResources(r.Client, k8sutil.NewOwnerInfo(hbaseCluster, r.Scheme),
		hbaseCluster.Namespace, daemon.ClusterLabels(hbaseCluster.Name))
	deleted, err := resources.DeleteOrphaned(ctx)
	orphansDeleted.Add(float64(deleted))
	if err != nil {
		return reconcile.Result{}, errors.Wrap(err, "failed to delete the generated objects")
	}
	log.Info("deleted the generated objects", "count", deleted)

	if err := k8sutil.ReleaseFinalizer(ctx, r.Client, hbaseCluster); err != nil {
		return reconcile.Result{}, err
	}

	logger.Infof("hbase cluster %s/%s deleted", hbaseCluster.Namespace, hbaseCluster.Name)
	return reconcile.Result{}, nil
}

func (r *HbaseClusterReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&v1alpha1.HbaseCluster{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ConfigMap{}).
		Owns(&appsv1.StatefulSet{}).
		Owns(&policyv1.PodDisruptionBudget{}).
		Watches(&source.Kind{Type: &corev1.ConfigMap{}}, handler.EnqueueRequestsFromMapFunc(r.clustersForConfigMap)).
		WithOptions(controller.Options{MaxConcurrentReconciles: maxConcurrentReconciles}).
		Complete(r)
}
