package controllers

import (
	"context"
	"time"

	emperrors "emperror.dev/errors"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/discovery"
	"github.com/opencurve/hbase-operator/pkg/jvm"
	"github.com/opencurve/hbase-operator/pkg/k8sutil"
	"github.com/opencurve/hbase-operator/pkg/kerberos"
	"github.com/opencurve/hbase-operator/pkg/logging"
	"github.com/opencurve/hbase-operator/pkg/opa"
	"github.com/opencurve/hbase-operator/pkg/productconfig"
	"github.com/opencurve/hbase-operator/pkg/rolegroup"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

// upstreamRequeueDelay is how long a pass waits for missing dependencies.
const upstreamRequeueDelay = 5 * time.Second

type errorClass string

const (
	// classSpec errors can only be fixed by changing the HbaseCluster
	classSpec errorClass = "spec"
	// classUpstream errors wait for the ZooKeeper, HDFS or OPA clusters
	classUpstream errorClass = "upstream"
	// classValidation errors are rejected settings, retried with backoff
	classValidation errorClass = "validation"
	// classOther errors are retried with backoff
	classOther errorClass = "other"
)

var specErrors = []error{
	roles.ErrInvalidRole,
	roles.ErrMissingHbaseRole,
	roles.ErrMissingRoleGroup,
	roles.ErrNoRoleGroup,
	roles.ErrNoMasterRole,
	roles.ErrNoRegionServerRole,
	roles.ErrIncompatibleMergeTypes,
	kerberos.ErrObjectMissingNamespace,
	discovery.ErrObjectHasNoNamespace,
	logging.ErrMissingVectorAggregatorAddress,
}

var validationErrors = []error{
	roles.ErrFragmentValidation,
	rolegroup.ErrUnsupportedOverrideFile,
	productconfig.ErrInvalidProperty,
	jvm.ErrInvalidRegex,
	jvm.ErrInvalidMemoryLimit,
}

var upstreamErrors = []error{
	discovery.ErrMissingConfigMap,
	discovery.ErrMissingConfigMapEntry,
	discovery.ErrParseZookeeperPort,
	opa.ErrConstructEndpoint,
}

func classify(err error) errorClass {
	for _, target := range specErrors {
		if emperrors.Is(err, target) {
			return classSpec
		}
	}
	for _, target := range upstreamErrors {
		if emperrors.Is(err, target) {
			return classUpstream
		}
	}
	for _, target := range validationErrors {
		if emperrors.Is(err, target) {
			return classValidation
		}
	}
	return classOther
}

// handleError publishes the error as the Failed condition and decides how
// the pass is retried.
func (r *HbaseClusterReconciler) handleError(ctx context.Context, log logr.Logger, hbaseCluster *v1alpha1.HbaseCluster, err error, start time.Time) (reconcile.Result, error) {
	if statusErr := k8sutil.UpdateClusterCondition(ctx, &r.Context, hbaseCluster, v1alpha1.ClusterCondition{
		Type:    v1alpha1.ConditionFailure,
		Status:  v1alpha1.ConditionStatusTrue,
		Reason:  v1alpha1.ConditionReconcileFailed,
		Message: err.Error(),
	}); statusErr != nil {
		log.Error(statusErr, "failed to publish the failure")
	}

	class := classify(err)
	observePass(string(class)+"-error", start)
	switch class {
	case classSpec:
		log.Error(err, "invalid HbaseCluster, waiting for it to change", "details", emperrors.GetDetails(err))
		return reconcile.Result{}, nil
	case classUpstream:
		log.Info("dependencies are not available, retrying", "error", err.Error(), "after", upstreamRequeueDelay.String())
		return reconcile.Result{RequeueAfter: upstreamRequeueDelay}, nil
	case classValidation:
		return reconcile.Result{}, errors.Wrapf(err, "invalid settings in HbaseCluster %q", hbaseCluster.Name)
	}
	return reconcile.Result{}, errors.Wrapf(err, "failed to reconcile HbaseCluster %q", hbaseCluster.Name)
}
