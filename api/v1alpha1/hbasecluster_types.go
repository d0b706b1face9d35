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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// HbaseClusterSpec defines the desired state of HbaseCluster
type HbaseClusterSpec struct {
	Image ProductImage `json:"image"`

	ClusterConfig HbaseClusterConfig `json:"clusterConfig"`

	// +optional
	ClusterOperation ClusterOperation `json:"clusterOperation,omitempty"`

	// +optional
	Masters *Role `json:"masters,omitempty"`

	// +optional
	RegionServers *RegionServerRole `json:"regionServers,omitempty"`

	// +optional
	RestServers *Role `json:"restServers,omitempty"`
}

type HbaseClusterConfig struct {
	// HdfsConfigMapName names the HDFS discovery ConfigMap.
	HdfsConfigMapName string `json:"hdfsConfigMapName"`

	// ZookeeperConfigMapName names the ZooKeeper znode discovery ConfigMap.
	ZookeeperConfigMapName string `json:"zookeeperConfigMapName"`

	// VectorAggregatorConfigMapName names the ConfigMap holding the vector aggregator ADDRESS.
	// +optional
	VectorAggregatorConfigMapName *string `json:"vectorAggregatorConfigMapName,omitempty"`

	// +optional
	Authentication *AuthenticationConfig `json:"authentication,omitempty"`

	// +optional
	Authorization *AuthorizationConfig `json:"authorization,omitempty"`
}

type AuthenticationConfig struct {
	// TLSSecretClass is the secret class the TLS certificates are requested from.
	// +kubebuilder:default=tls
	// +optional
	TLSSecretClass string `json:"tlsSecretClass,omitempty"`

	Kerberos KerberosConfig `json:"kerberos"`
}

type KerberosConfig struct {
	// SecretClass is the secret class the keytabs are requested from.
	SecretClass string `json:"secretClass"`
}

type AuthorizationConfig struct {
	Opa OpaConfig `json:"opa"`
}

type OpaConfig struct {
	// ConfigMapName names the OPA discovery ConfigMap.
	ConfigMapName string `json:"configMapName"`
	// Package is the rego package, defaults to the cluster name.
	// +optional
	Package *string `json:"package,omitempty"`
}

// Role holds the config of masters and rest servers.
type Role struct {
	// +optional
	Config HbaseConfigFragment `json:"config,omitempty"`

	Overrides `json:",inline"`

	// +optional
	RoleConfig RoleConfig `json:"roleConfig,omitempty"`

	RoleGroups map[string]RoleGroup `json:"roleGroups"`
}

type RoleGroup struct {
	// +optional
	Config HbaseConfigFragment `json:"config,omitempty"`

	Overrides `json:",inline"`

	// +optional
	Replicas *int32 `json:"replicas,omitempty"`

	// Selector is the legacy node selector. Its matchLabels are added to the
	// node selector and its matchExpressions become a required node affinity
	// term.
	// +optional
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
}

// RegionServerRole holds the config of region servers.
type RegionServerRole struct {
	// +optional
	Config RegionServerConfigFragment `json:"config,omitempty"`

	Overrides `json:",inline"`

	// +optional
	RoleConfig RoleConfig `json:"roleConfig,omitempty"`

	RoleGroups map[string]RegionServerRoleGroup `json:"roleGroups"`
}

type RegionServerRoleGroup struct {
	// +optional
	Config RegionServerConfigFragment `json:"config,omitempty"`

	Overrides `json:",inline"`

	// +optional
	Replicas *int32 `json:"replicas,omitempty"`

	// +optional
	Selector *metav1.LabelSelector `json:"selector,omitempty"`
}

// HbaseClusterStatus defines the observed state of HbaseCluster
type HbaseClusterStatus struct {
	// Phase is a summary of the conditions.
	// +optional
	Phase ClusterPhase `json:"phase,omitempty"`

	// Message shows summary message of cluster from ClusterState
	// +optional
	Message string `json:"message,omitempty"`

	// ObservedGeneration is the last generation a pass finished for.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Conditions is a list of conditions related to this cluster
	// +optional
	Conditions []ClusterCondition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=hbase
// +kubebuilder:printcolumn:name="Version",JSONPath=".spec.image.productVersion",type=string
// +kubebuilder:printcolumn:name="Age",JSONPath=".metadata.creationTimestamp",type=date
// +kubebuilder:printcolumn:name="Phase",JSONPath=".status.phase",type=string

// HbaseCluster is the Schema for the hbaseclusters API
type HbaseCluster struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   HbaseClusterSpec   `json:"spec,omitempty"`
	Status HbaseClusterStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// HbaseClusterList contains a list of HbaseCluster
type HbaseClusterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []HbaseCluster `json:"items"`
}

func init() {
	SchemeBuilder.Register(&HbaseCluster{}, &HbaseClusterList{})
}
