package k8sutil

import (
	"github.com/pkg/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/apiutil"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
)

// OwnerInfo is the owner every generated object is attached to.
type OwnerInfo struct {
	owner  client.Object
	scheme *runtime.Scheme
}

// NewOwnerInfo create a new OwnerInfo for owner.
func NewOwnerInfo(owner client.Object, scheme *runtime.Scheme) *OwnerInfo {
	return &OwnerInfo{owner: owner, scheme: scheme}
}

// SetControllerReference makes the owner the controller of object. Deleting
// the owner garbage collects the object.
func (info *OwnerInfo) SetControllerReference(object metav1.Object) error {
	if err := controllerutil.SetControllerReference(info.owner, object, info.scheme); err != nil {
		return errors.Wrapf(err, "failed to set controller reference on %q", object.GetName())
	}
	return nil
}

// IsOwnedBy reports whether object has an owner reference to the owner.
func (info *OwnerInfo) IsOwnedBy(object metav1.Object) bool {
	return HasOwner(object, info.owner.GetUID())
}

// GVK resolves the kind of obj from the owner's scheme.
func (info *OwnerInfo) GVK(obj runtime.Object) (schema.GroupVersionKind, error) {
	return apiutil.GVKForObject(obj, info.scheme)
}

// HasOwner reports whether object references the owner with uid.
func HasOwner(object metav1.Object, uid types.UID) bool {
	for _, ref := range object.GetOwnerReferences() {
		if ref.UID == uid {
			return true
		}
	}
	return false
}
