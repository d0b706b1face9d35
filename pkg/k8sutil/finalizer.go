package k8sutil

import (
	"context"

	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
)

// ClusterFinalizer holds a HbaseCluster back until its generated objects are
// deleted.
const ClusterFinalizer = "hbasecluster." + v1alpha1.CustomResourceGroup

// EnsureFinalizer adds the cluster finalizer to obj and writes it when it
// was missing.
func EnsureFinalizer(ctx context.Context, cli client.Client, obj client.Object) error {
	if controllerutil.ContainsFinalizer(obj, ClusterFinalizer) {
		return nil
	}
	controllerutil.AddFinalizer(obj, ClusterFinalizer)
	logger.Infof("adding finalizer %q on %q", ClusterFinalizer, obj.GetName())
	if err := cli.Update(ctx, obj); err != nil {
		return errors.Wrapf(err, "failed to add finalizer %q on %q", ClusterFinalizer, obj.GetName())
	}
	return nil
}

// ReleaseFinalizer removes the cluster finalizer from obj so the API server
// can finish deleting it.
func ReleaseFinalizer(ctx context.Context, cli client.Client, obj client.Object) error {
	if !controllerutil.ContainsFinalizer(obj, ClusterFinalizer) {
		return nil
	}
	controllerutil.RemoveFinalizer(obj, ClusterFinalizer)
	logger.Infof("removing finalizer %q on %q", ClusterFinalizer, obj.GetName())
	if err := cli.Update(ctx, obj); err != nil {
		return errors.Wrapf(err, "failed to remove finalizer %q on %q", ClusterFinalizer, obj.GetName())
	}
	return nil
}
