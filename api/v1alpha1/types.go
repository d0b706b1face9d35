/*


Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type ClusterPhase string

const (
	// ClusterCreating indicates the cluster resources are being created for the first time.
	ClusterCreating ClusterPhase = "Creating"
	// ClusterRunning indicates every role group has rolled out.
	ClusterRunning ClusterPhase = "Running"
	// ClusterUpdating indicates at least one role group has not finished its rollout.
	ClusterUpdating ClusterPhase = "Updating"
	// ClusterStopped indicates all role groups are scaled to zero on request.
	ClusterStopped ClusterPhase = "Stopped"
	// ClusterPaused indicates reconciliation is paused on request.
	ClusterPaused ClusterPhase = "Paused"
	// ClusterFailed indicates the last pass failed.
	ClusterFailed ClusterPhase = "Failed"
	// ClusterDeleting indicates the cluster is being deleted.
	ClusterDeleting ClusterPhase = "Deleting"
	// ClusterPhaseUnknown means that for some reason the state of cluster could not be obtained.
	ClusterPhaseUnknown ClusterPhase = "Unknown"
)

// ConditionType represents a resource's status
type ConditionType string

const (
	// ConditionAvailable indicates all StatefulSets are rolled out
	ConditionAvailable ConditionType = "Available"
	// ConditionReconciliationPaused indicates the operator leaves the cluster alone
	ConditionReconciliationPaused ConditionType = "ReconciliationPaused"
	// ConditionStopped indicates the cluster has been scaled to zero
	ConditionStopped ConditionType = "Stopped"
	// ConditionFailure indicates it's failed
	ConditionFailure ConditionType = "Failed"
	// ConditionDeleting indicates it's deleting
	ConditionDeleting ConditionType = "Deleting"
)

type ConditionStatus string

const (
	ConditionStatusTrue    ConditionStatus = "True"
	ConditionStatusFalse   ConditionStatus = "False"
	ConditionStatusUnknown ConditionStatus = "Unknown" //nolint:unused
)

type ConditionReason string

const (
	ConditionDeletingClusterReason ConditionReason = "Deleting"
	ConditionReconcileSucceeded    ConditionReason = "ReconcileSucceeded"
	ConditionReconcileFailed       ConditionReason = "ReconcileFailed"
	ConditionRolloutInProgress     ConditionReason = "RolloutInProgress"
	ConditionRolloutComplete       ConditionReason = "RolloutComplete"
	ConditionClusterStopped        ConditionReason = "ClusterStopped"
	ConditionClusterRunning        ConditionReason = "ClusterRunning"
	ConditionPausedByUser          ConditionReason = "ReconciliationPaused"
	ConditionNotPaused             ConditionReason = "ReconciliationActive"
)

type ClusterCondition struct {
	// Type is the type of condition.
	Type ConditionType `json:"type,omitempty"`
	// Status is the status of condition
	// Can be True, False or Unknown.
	Status ConditionStatus `json:"status,omitempty"`
	// ObservedGeneration is the cluster generation the condition was computed from.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
	// LastTransitionTime specifies last time the condition transitioned
	// from one status to another.
	LastTransitionTime metav1.Time `json:"lastTransitionTime,omitempty"`
	// Reason is a unique, one-word, CamelCase reason for the condition's last transition.
	Reason ConditionReason `json:"reason,omitempty"`
	// Message is a human readable message indicating details about last transition.
	Message string `json:"message,omitempty"`
}

// ProductImage selects the HBase image the role groups run.
type ProductImage struct {
	// ProductVersion is the HBase version, e.g. 2.4.18.
	ProductVersion string `json:"productVersion"`
	// Custom is a full image reference that replaces the computed one.
	// +optional
	Custom *string `json:"custom,omitempty"`
	// +optional
	Repo *string `json:"repo,omitempty"`
	// +optional
	StackableVersion *string `json:"stackableVersion,omitempty"`
	// +kubebuilder:validation:Enum=Always;IfNotPresent;Never
	// +optional
	PullPolicy string `json:"pullPolicy,omitempty"`
	// +optional
	PullSecrets []LocalObjectReference `json:"pullSecrets,omitempty"`
}

type LocalObjectReference struct {
	Name string `json:"name"`
}

// ClusterOperation lets users stop or freeze a cluster.
type ClusterOperation struct {
	// +optional
	Stopped bool `json:"stopped,omitempty"`
	// +optional
	ReconciliationPaused bool `json:"reconciliationPaused,omitempty"`
}

// JvmArgumentOverrides changes the JVM argument list of a role or role group.
type JvmArgumentOverrides struct {
	// +optional
	Add []string `json:"add,omitempty"`
	// +optional
	Remove []string `json:"remove,omitempty"`
	// RemoveRegex entries must match a whole argument.
	// +optional
	RemoveRegex []string `json:"removeRegex,omitempty"`
}

// Overrides is shared by roles and role groups.
type Overrides struct {
	// ConfigOverrides maps a config file name to the properties forced into it.
	// +optional
	ConfigOverrides map[string]map[string]string `json:"configOverrides,omitempty"`
	// +optional
	EnvOverrides map[string]string `json:"envOverrides,omitempty"`
	// PodOverrides is applied to the generated pod template as a strategic merge patch.
	// +kubebuilder:pruning:PreserveUnknownFields
	// +kubebuilder:validation:Schemaless
	// +optional
	PodOverrides *corev1.PodTemplateSpec `json:"podOverrides,omitempty"`
	// +optional
	JvmArgumentOverrides *JvmArgumentOverrides `json:"jvmArgumentOverrides,omitempty"`
}

type PodDisruptionBudgetConfig struct {
	// +optional
	Enabled *bool `json:"enabled,omitempty"`
	// +optional
	MaxUnavailable *int32 `json:"maxUnavailable,omitempty"`
}

type RoleConfig struct {
	// +optional
	PodDisruptionBudget PodDisruptionBudgetConfig `json:"podDisruptionBudget,omitempty"`
}
