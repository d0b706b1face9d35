package daemon

import (
	"fmt"

	"k8s.io/apimachinery/pkg/types"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/clusterd"
	"github.com/opencurve/hbase-operator/pkg/discovery"
	"github.com/opencurve/hbase-operator/pkg/k8sutil"
	"github.com/opencurve/hbase-operator/pkg/opa"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

// Cluster is everything one reconcile pass knows about an HbaseCluster.
// It is built once per pass and read by every role group.
type Cluster struct {
	Context            clusterd.Context
	Namespace          string
	NamespacedName     types.NamespacedName
	ObservedGeneration int64
	OwnerInfo          *k8sutil.OwnerInfo

	HbaseCluster *v1alpha1.HbaseCluster
	Image        ResolvedProductImage
	Discovery    *discovery.Info
	// Opa is nil when authorization is not configured
	Opa *opa.Config
}

// Name is the name of the HbaseCluster.
func (c *Cluster) Name() string {
	return c.NamespacedName.Name
}

// Stopped reports whether the user asked to scale every role group to zero.
func (c *Cluster) Stopped() bool {
	return c.HbaseCluster.Spec.ClusterOperation.Stopped
}

// HdfsConfigMapName is the HDFS discovery ConfigMap mounted into every pod.
func (c *Cluster) HdfsConfigMapName() string {
	return c.HbaseCluster.Spec.ClusterConfig.HdfsConfigMapName
}

// ServiceAccountName is shared by all pods of the cluster.
func (c *Cluster) ServiceAccountName() string {
	return fmt.Sprintf("%s-serviceaccount", c.Name())
}

// RoleGroupRef names one role group of a cluster.
type RoleGroupRef struct {
	Cluster   string
	Role      roles.Role
	RoleGroup string
}

// ObjectName is the name shared by the Service, ConfigMap and StatefulSet of
// the role group.
func (r RoleGroupRef) ObjectName() string {
	return fmt.Sprintf("%s-%s-%s", r.Cluster, r.Role, r.RoleGroup)
}

func (r RoleGroupRef) String() string {
	return r.ObjectName()
}

// RoleGroupRef returns the reference of a role group of this cluster.
func (c *Cluster) RoleGroupRef(role roles.Role, group string) RoleGroupRef {
	return RoleGroupRef{Cluster: c.Name(), Role: role, RoleGroup: group}
}
