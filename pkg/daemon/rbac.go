package daemon

import (
	corev1 "k8s.io/api/core/v1"
	rbacv1 "k8s.io/api/rbac/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ClusterRoleName is the ClusterRole installed with the operator that grants
// the HBase pods their permissions.
const ClusterRoleName = "hbase-clusterrole"

// BuildServiceAccount returns the service account shared by the pods of the cluster.
func (c *Cluster) BuildServiceAccount() *corev1.ServiceAccount {
	return &corev1.ServiceAccount{
		ObjectMeta: metav1.ObjectMeta{
			Name:      c.ServiceAccountName(),
			Namespace: c.Namespace,
			Labels:    ClusterLabels(c.Name()),
		},
	}
}

// BuildRoleBinding binds the service account to ClusterRoleName within the
// namespace of the cluster.
func (c *Cluster) BuildRoleBinding() *rbacv1.RoleBinding {
	return &rbacv1.RoleBinding{
		ObjectMeta: metav1.ObjectMeta{
			Name:      c.Name() + "-rolebinding",
			Namespace: c.Namespace,
			Labels:    ClusterLabels(c.Name()),
		},
		RoleRef: rbacv1.RoleRef{
			APIGroup: rbacv1.GroupName,
			Kind:     "ClusterRole",
			Name:     ClusterRoleName,
		},
		Subjects: []rbacv1.Subject{{
			Kind:      rbacv1.ServiceAccountKind,
			Name:      c.ServiceAccountName(),
			Namespace: c.Namespace,
		}},
	}
}
