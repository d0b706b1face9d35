package k8sutil

import (
	"context"

	jsonpatch "github.com/evanphx/json-patch"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Apply creates obj, or updates the live object when obj differs from what
// was applied last time. The desired state is recorded in the
// LastAppliedAnnotation so changes made by other controllers to fields the
// operator does not set are not fought over. The returned object is the
// state on the server.
func Apply(ctx context.Context, c client.Client, obj client.Object) (client.Object, error) {
	desired, err := setLastApplied(obj)
	if err != nil {
		return nil, err
	}

	live, ok := obj.DeepCopyObject().(client.Object)
	if !ok {
		return nil, errors.Errorf("object %q can not be copied", obj.GetName())
	}
	err = c.Get(ctx, client.ObjectKeyFromObject(obj), live)
	if kerrors.IsNotFound(err) {
		logger.Infof("creating %T %s/%s", obj, obj.GetNamespace(), obj.GetName())
		if err := c.Create(ctx, obj); err != nil {
			return nil, errors.Wrapf(err, "failed to create %T %q", obj, obj.GetName())
		}
		return obj, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %T %q", obj, obj.GetName())
	}

	changed, err := differs(live.GetAnnotations()[LastAppliedAnnotation], desired)
	if err != nil {
		return nil, err
	}
	if !changed {
		logger.Debugf("%T %s/%s is up to date", obj, obj.GetNamespace(), obj.GetName())
		return live, nil
	}

	obj.SetResourceVersion(live.GetResourceVersion())
	keepImmutableFields(live, obj)
	logger.Infof("updating %T %s/%s", obj, obj.GetNamespace(), obj.GetName())
	if err := c.Update(ctx, obj); err != nil {
		return nil, errors.Wrapf(err, "failed to update %T %q", obj, obj.GetName())
	}
	return obj, nil
}

// setLastApplied stores the JSON form of obj in its own annotation and
// returns it.
func setLastApplied(obj client.Object) ([]byte, error) {
	annotations := obj.GetAnnotations()
	delete(annotations, LastAppliedAnnotation)
	desired, err := json.Marshal(obj)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %T %q", obj, obj.GetName())
	}
	if annotations == nil {
		annotations = map[string]string{}
	}
	annotations[LastAppliedAnnotation] = string(desired)
	obj.SetAnnotations(annotations)
	return desired, nil
}

func differs(lastApplied string, desired []byte) (bool, error) {
	if lastApplied == "" {
		return true, nil
	}
	patch, err := jsonpatch.CreateMergePatch([]byte(lastApplied), desired)
	if err != nil {
		return false, errors.Wrap(err, "failed to compute merge patch against last applied state")
	}
	return string(patch) != "{}", nil
}

func keepImmutableFields(live, desired client.Object) {
	if l, ok := live.(*corev1.Service); ok {
		if d, ok := desired.(*corev1.Service); ok {
			d.Spec.ClusterIP = l.Spec.ClusterIP
			d.Spec.ClusterIPs = l.Spec.ClusterIPs
		}
	}
}
