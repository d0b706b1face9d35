package daemon

import (
	"github.com/opencurve/hbase-operator/pkg/config"
)

const (
	NameLabel      = "app.kubernetes.io/name"
	InstanceLabel  = "app.kubernetes.io/instance"
	VersionLabel   = "app.kubernetes.io/version"
	ComponentLabel = "app.kubernetes.io/component"
	RoleGroupLabel = "app.kubernetes.io/role-group"
	ManagedByLabel = "app.kubernetes.io/managed-by"

	// PrometheusScrapeLabel marks the services exposing metrics
	PrometheusScrapeLabel = "prometheus.io/scrape"
)

// ManagedBy is the value of the managed-by label.
func ManagedBy() string {
	return config.OperatorName + "_" + config.ControllerName
}

// ClusterLabels are carried by every object generated for a cluster. The
// orphan cleanup lists objects by them.
func ClusterLabels(clusterName string) map[string]string {
	return map[string]string{
		NameLabel:      config.AppName,
		InstanceLabel:  clusterName,
		ManagedByLabel: ManagedBy(),
	}
}

// RoleSelectorLabels select the pods of one role.
func RoleSelectorLabels(clusterName, role string) map[string]string {
	return map[string]string{
		NameLabel:      config.AppName,
		InstanceLabel:  clusterName,
		ComponentLabel: role,
	}
}

// RoleGroupSelectorLabels select the pods of one role group.
func RoleGroupSelectorLabels(ref RoleGroupRef) map[string]string {
	labels := RoleSelectorLabels(ref.Cluster, string(ref.Role))
	labels[RoleGroupLabel] = ref.RoleGroup
	return labels
}

// RecommendedLabels are the labels of an object generated for a role group
// or role. An empty roleGroup leaves out the role-group label.
func RecommendedLabels(clusterName, appVersion, role, roleGroup string) map[string]string {
	labels := ClusterLabels(clusterName)
	labels[VersionLabel] = appVersion
	labels[ComponentLabel] = role
	if roleGroup != "" {
		labels[RoleGroupLabel] = roleGroup
	}
	return labels
}
