package k8sutil

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	policyv1 "k8s.io/api/policy/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// ClusterResources applies the objects of one reconcile pass and deletes
// the objects of earlier passes that were not applied again.
type ClusterResources struct {
	client    client.Client
	owner     *OwnerInfo
	namespace string
	// labels every applied object must carry; orphans are listed by them
	labels  map[string]string
	applied map[string]struct{}
}

// NewClusterResources returns a tracker for objects in namespace carrying labels.
func NewClusterResources(c client.Client, owner *OwnerInfo, namespace string, labels map[string]string) *ClusterResources {
	return &ClusterResources{
		client:    c,
		owner:     owner,
		namespace: namespace,
		labels:    labels,
		applied:   map[string]struct{}{},
	}
}

// managedLists are the kinds of objects the operator generates.
func managedLists() []client.ObjectList {
	return []client.ObjectList{
		&corev1.ServiceList{},
		&corev1.ConfigMapList{},
		&appsv1.StatefulSetList{},
		&policyv1.PodDisruptionBudgetList{},
		&corev1.ServiceAccountList{},
		&rbacv1.RoleBindingList{},
	}
}

func (r *ClusterResources) key(obj client.Object) (string, error) {
	gvk, err := r.owner.GVK(obj)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve kind of %T", obj)
	}
	return fmt.Sprintf("%s/%s/%s", gvk.GroupKind().String(), obj.GetNamespace(), obj.GetName()), nil
}

// Add applies obj owned by the cluster and remembers it as part of this pass.
func (r *ClusterResources) Add(ctx context.Context, obj client.Object) (client.Object, error) {
	if !HasLabels(obj.GetLabels(), r.labels) {
		return nil, errors.Errorf("%T %q misses the cluster labels %s", obj, obj.GetName(), GetLabelSelector(r.labels))
	}
	if obj.GetNamespace() == "" {
		obj.SetNamespace(r.namespace)
	}
	if err := r.owner.SetControllerReference(obj); err != nil {
		return nil, err
	}
	key, err := r.key(obj)
	if err != nil {
		return nil, err
	}

	applied, err := Apply(ctx, r.client, obj)
	if err != nil {
		return nil, err
	}
	r.applied[key] = struct{}{}
	return applied, nil
}

// DeleteOrphaned deletes every object owned by the cluster that was not added
// in this pass and returns how many were deleted.
func (r *ClusterResources) DeleteOrphaned(ctx context.Context) (int, error) {
	var errs []error
	deleted := 0
	for _, list := range managedLists() {
		err := r.client.List(ctx, list, client.InNamespace(r.namespace), client.MatchingLabels(r.labels))
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to list %T", list))
			continue
		}
		items, err := meta.ExtractList(list)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to read %T", list))
			continue
		}
		for _, item := range items {
			obj, ok := item.(client.Object)
			if !ok || !r.owner.IsOwnedBy(obj) {
				continue
			}
			key, err := r.key(obj)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if _, ok := r.applied[key]; ok {
				continue
			}
			logger.Infof("deleting orphaned %s", key)
			if err := r.client.Delete(ctx, obj); err != nil && !kerrors.IsNotFound(err) {
				errs = append(errs, errors.Wrapf(err, "failed to delete orphaned %s", key))
				continue
			}
			deleted++
		}
	}
	return deleted, utilerrors.NewAggregate(errs)
}
