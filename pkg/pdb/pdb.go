// Package pdb builds the PodDisruptionBudgets of the HBase roles.
package pdb

import (
	"fmt"

	policyv1 "k8s.io/api/policy/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

// defaultMaxUnavailable allows one pod of a role to be evicted at a time.
const defaultMaxUnavailable = 1

// Enabled reports whether a PodDisruptionBudget is generated for the role.
// Budgets are on unless disabled explicitly.
func Enabled(rc v1alpha1.RoleConfig) bool {
	enabled := rc.PodDisruptionBudget.Enabled
	return enabled == nil || *enabled
}

// MaxUnavailable returns the configured limit, 1 when unset.
func MaxUnavailable(rc v1alpha1.RoleConfig) int32 {
	if m := rc.PodDisruptionBudget.MaxUnavailable; m != nil {
		return *m
	}
	return defaultMaxUnavailable
}

// Name is the name of the budget of role.
func Name(clusterName string, role roles.Role) string {
	return fmt.Sprintf("%s-%s", clusterName, role)
}

// Build returns the budget covering every role group of role, nil when
// budgets are disabled for it.
func Build(c *daemon.Cluster, role roles.Role, rc v1alpha1.RoleConfig) *policyv1.PodDisruptionBudget {
	if !Enabled(rc) {
		return nil
	}
	maxUnavailable := intstr.FromInt(int(MaxUnavailable(rc)))
	return &policyv1.PodDisruptionBudget{
		ObjectMeta: metav1.ObjectMeta{
			Name:      Name(c.Name(), role),
			Namespace: c.Namespace,
			Labels:    daemon.RecommendedLabels(c.Name(), c.Image.AppVersionLabel, string(role), ""),
		},
		Spec: policyv1.PodDisruptionBudgetSpec{
			MaxUnavailable: &maxUnavailable,
			Selector: &metav1.LabelSelector{
				MatchLabels: daemon.RoleSelectorLabels(c.Name(), string(role)),
			},
		},
	}
}
