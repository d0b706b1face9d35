package controllers

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
)

// referencesConfigMap reports whether the cluster reads the discovery
// ConfigMap name.
func referencesConfigMap(c *v1alpha1.HbaseCluster, name string) bool {
	cc := c.Spec.ClusterConfig
	if cc.ZookeeperConfigMapName == name || cc.HdfsConfigMapName == name {
		return true
	}
	return cc.Authorization != nil && cc.Authorization.Opa.ConfigMapName == name
}

// clustersForConfigMap triggers the clusters of the namespace that read obj
// as ZooKeeper, HDFS or OPA discovery ConfigMap.
func (r *HbaseClusterReconciler) clustersForConfigMap(obj client.Object) []reconcile.Request {
	list := &v1alpha1.HbaseClusterList{}
	if err := r.Client.List(context.Background(), list, client.InNamespace(obj.GetNamespace())); err != nil {
		logger.Errorf("failed to list HbaseClusters in namespace %q. %v", obj.GetNamespace(), err)
		return nil
	}

	var requests []reconcile.Request
	for i := range list.Items {
		c := &list.Items[i]
		if referencesConfigMap(c, obj.GetName()) {
			requests = append(requests, reconcile.Request{NamespacedName: client.ObjectKeyFromObject(c)})
		}
	}
	return requests
}
