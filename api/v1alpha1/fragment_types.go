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
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/opencurve/hbase-operator/pkg/fragment"
)

// Every field of a fragment is optional. Unset fields are filled from the
// role, then from the operator defaults.

// HbaseConfigFragment is the config shared by masters and rest servers.
type HbaseConfigFragment struct {
	// +optional
	HbaseRootdir *string `json:"hbaseRootdir,omitempty"`
	// +optional
	Resources *ResourcesFragment `json:"resources,omitempty"`
	// +optional
	Logging *LoggingFragment `json:"logging,omitempty"`
	// +optional
	Affinity *AffinityFragment `json:"affinity,omitempty"`
	// +optional
	GracefulShutdownTimeout *metav1.Duration `json:"gracefulShutdownTimeout,omitempty"`
	// +optional
	RequestedSecretLifetime *metav1.Duration `json:"requestedSecretLifetime,omitempty"`
	// +optional
	ListenerClass *string `json:"listenerClass,omitempty"`
}

func (f *HbaseConfigFragment) Merge(defaults *HbaseConfigFragment) {
	fragment.Merge(&f.HbaseRootdir, defaults.HbaseRootdir)
	fragment.MergeNested(&f.Resources, defaults.Resources)
	fragment.MergeNested(&f.Logging, defaults.Logging)
	fragment.MergeNested(&f.Affinity, defaults.Affinity)
	fragment.Merge(&f.GracefulShutdownTimeout, defaults.GracefulShutdownTimeout)
	fragment.Merge(&f.RequestedSecretLifetime, defaults.RequestedSecretLifetime)
	fragment.Merge(&f.ListenerClass, defaults.ListenerClass)
}

// RegionServerConfigFragment adds the region mover settings.
type RegionServerConfigFragment struct {
	HbaseConfigFragment `json:",inline"`
	// +optional
	RegionMover *RegionMoverFragment `json:"regionMover,omitempty"`
}

func (f *RegionServerConfigFragment) Merge(defaults *RegionServerConfigFragment) {
	f.HbaseConfigFragment.Merge(&defaults.HbaseConfigFragment)
	fragment.MergeNested(&f.RegionMover, defaults.RegionMover)
}

type RegionMoverFragment struct {
	// RunBeforeShutdown moves the regions off a region server before it stops.
	// +optional
	RunBeforeShutdown *bool `json:"runBeforeShutdown,omitempty"`
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	// +optional
	MaxThreads *uint16 `json:"maxThreads,omitempty"`
	// +optional
	Ack *bool `json:"ack,omitempty"`
	// AdditionalMoverOptions are passed to the region mover as they are.
	// +optional
	AdditionalMoverOptions []string `json:"additionalMoverOptions,omitempty"`
}

func (f *RegionMoverFragment) Merge(defaults *RegionMoverFragment) {
	fragment.Merge(&f.RunBeforeShutdown, defaults.RunBeforeShutdown)
	fragment.Merge(&f.MaxThreads, defaults.MaxThreads)
	fragment.Merge(&f.Ack, defaults.Ack)
	fragment.MergeSlice(&f.AdditionalMoverOptions, defaults.AdditionalMoverOptions)
}

type ResourcesFragment struct {
	// +optional
	CPU *CPULimitsFragment `json:"cpu,omitempty"`
	// +optional
	Memory *MemoryLimitsFragment `json:"memory,omitempty"`
	// HBase keeps its data in HDFS, so there is nothing to configure here.
	// +optional
	Storage *StorageFragment `json:"storage,omitempty"`
}

func (f *ResourcesFragment) Merge(defaults *ResourcesFragment) {
	fragment.MergeNested(&f.CPU, defaults.CPU)
	fragment.MergeNested(&f.Memory, defaults.Memory)
	fragment.MergeNested(&f.Storage, defaults.Storage)
}

type CPULimitsFragment struct {
	// +optional
	Min *resource.Quantity `json:"min,omitempty"`
	// +optional
	Max *resource.Quantity `json:"max,omitempty"`
}

func (f *CPULimitsFragment) Merge(defaults *CPULimitsFragment) {
	fragment.Merge(&f.Min, defaults.Min)
	fragment.Merge(&f.Max, defaults.Max)
}

type MemoryLimitsFragment struct {
	// +optional
	Limit *resource.Quantity `json:"limit,omitempty"`
}

func (f *MemoryLimitsFragment) Merge(defaults *MemoryLimitsFragment) {
	fragment.Merge(&f.Limit, defaults.Limit)
}

type StorageFragment struct{}

func (f *StorageFragment) Merge(*StorageFragment) {}

// +kubebuilder:validation:Enum=TRACE;DEBUG;INFO;WARN;ERROR;FATAL;NONE
type LogLevel string

const (
	LogLevelTrace LogLevel = "TRACE"
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
	LogLevelFatal LogLevel = "FATAL"
	LogLevelNone  LogLevel = "NONE"
)

type LoggingFragment struct {
	// +optional
	EnableVectorAgent *bool `json:"enableVectorAgent,omitempty"`
	// Containers is keyed by container name, hbase or vector.
	// +optional
	Containers map[string]ContainerLogConfigFragment `json:"containers,omitempty"`
}

func (f *LoggingFragment) Merge(defaults *LoggingFragment) {
	fragment.Merge(&f.EnableVectorAgent, defaults.EnableVectorAgent)
	fragment.MergeMap(&f.Containers, defaults.Containers)
}

// ContainerLogConfigFragment is either a custom log config or the automatic one.
type ContainerLogConfigFragment struct {
	// +optional
	Custom *CustomContainerLogConfig `json:"custom,omitempty"`
	// +optional
	Loggers map[string]LoggerConfigFragment `json:"loggers,omitempty"`
	// +optional
	Console *AppenderConfigFragment `json:"console,omitempty"`
	// +optional
	File *AppenderConfigFragment `json:"file,omitempty"`
}

func (f *ContainerLogConfigFragment) Merge(defaults *ContainerLogConfigFragment) {
	if f.Custom != nil {
		return
	}
	if defaults.Custom != nil {
		if f.Loggers == nil && f.Console == nil && f.File == nil {
			f.Custom = fragment.Copy(defaults.Custom)
		}
		return
	}
	fragment.MergeMap(&f.Loggers, defaults.Loggers)
	fragment.MergeNested(&f.Console, defaults.Console)
	fragment.MergeNested(&f.File, defaults.File)
}

// CustomContainerLogConfig points at a ConfigMap holding a complete log config.
type CustomContainerLogConfig struct {
	ConfigMap string `json:"configMap"`
}

type LoggerConfigFragment struct {
	// +optional
	Level *LogLevel `json:"level,omitempty"`
}

func (f *LoggerConfigFragment) Merge(defaults *LoggerConfigFragment) {
	fragment.Merge(&f.Level, defaults.Level)
}

type AppenderConfigFragment struct {
	// +optional
	Level *LogLevel `json:"level,omitempty"`
}

func (f *AppenderConfigFragment) Merge(defaults *AppenderConfigFragment) {
	fragment.Merge(&f.Level, defaults.Level)
}

type AffinityFragment struct {
	// +optional
	PodAffinity *corev1.PodAffinity `json:"podAffinity,omitempty"`
	// +optional
	PodAntiAffinity *corev1.PodAntiAffinity `json:"podAntiAffinity,omitempty"`
	// +optional
	NodeAffinity *corev1.NodeAffinity `json:"nodeAffinity,omitempty"`
	// +optional
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`
}

func (f *AffinityFragment) Merge(defaults *AffinityFragment) {
	fragment.Merge(&f.PodAffinity, defaults.PodAffinity)
	fragment.Merge(&f.PodAntiAffinity, defaults.PodAntiAffinity)
	fragment.Merge(&f.NodeAffinity, defaults.NodeAffinity)
	fragment.MergeAtomicMap(&f.NodeSelector, defaults.NodeSelector)
}
