package roles

import (
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/fragment"
)

// MergedConfig is the validated config of one role group.
type MergedConfig interface {
	Role() Role
	HbaseRootdir() *string
	Resources() Resources
	Logging() Logging
	Affinity() Affinity
	GracefulShutdownTimeout() time.Duration
	RequestedSecretLifetime() time.Duration
	ListenerClass() string
	// RegionMoverArgs is the argument string passed to the region mover, or
	// empty when the region mover does not run.
	RegionMoverArgs() string
	RunRegionMover() bool
}

type Resources struct {
	CPUMin      resource.Quantity
	CPUMax      resource.Quantity
	MemoryLimit resource.Quantity
}

// Requirements returns the container resources. Memory is requested at its limit.
func (r Resources) Requirements() corev1.ResourceRequirements {
	return corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    r.CPUMin.DeepCopy(),
			corev1.ResourceMemory: r.MemoryLimit.DeepCopy(),
		},
		Limits: corev1.ResourceList{
			corev1.ResourceCPU:    r.CPUMax.DeepCopy(),
			corev1.ResourceMemory: r.MemoryLimit.DeepCopy(),
		},
	}
}

type Logging struct {
	EnableVectorAgent bool
	Containers        map[string]ContainerLogConfig
}

// ContainerLogConfig is either a custom log config in a ConfigMap or the
// automatic one built from levels.
type ContainerLogConfig struct {
	// CustomConfigMap is set for a custom log config.
	CustomConfigMap *string
	Loggers         map[string]v1alpha1.LogLevel
	ConsoleLevel    *v1alpha1.LogLevel
	FileLevel       *v1alpha1.LogLevel
}

type Affinity struct {
	PodAffinity     *corev1.PodAffinity
	PodAntiAffinity *corev1.PodAntiAffinity
	NodeAffinity    *corev1.NodeAffinity
	NodeSelector    map[string]string
}

// Kubernetes returns the pod affinity, nil when no part is set.
func (a Affinity) Kubernetes() *corev1.Affinity {
	if a.PodAffinity == nil && a.PodAntiAffinity == nil && a.NodeAffinity == nil {
		return nil
	}
	return &corev1.Affinity{
		PodAffinity:     a.PodAffinity.DeepCopy(),
		PodAntiAffinity: a.PodAntiAffinity.DeepCopy(),
		NodeAffinity:    a.NodeAffinity.DeepCopy(),
	}
}

type RegionMover struct {
	RunBeforeShutdown      bool
	MaxThreads             uint16
	Ack                    bool
	AdditionalMoverOptions []string
}

// HbaseConfig holds the fields every role shares.
type HbaseConfig struct {
	hbaseRootdir            *string
	resources               Resources
	logging                 Logging
	affinity                Affinity
	gracefulShutdownTimeout time.Duration
	requestedSecretLifetime time.Duration
	listenerClass           string
}

func (c *HbaseConfig) HbaseRootdir() *string                  { return c.hbaseRootdir }
func (c *HbaseConfig) Resources() Resources                   { return c.resources }
func (c *HbaseConfig) Logging() Logging                       { return c.logging }
func (c *HbaseConfig) Affinity() Affinity                     { return c.affinity }
func (c *HbaseConfig) GracefulShutdownTimeout() time.Duration { return c.gracefulShutdownTimeout }
func (c *HbaseConfig) RequestedSecretLifetime() time.Duration { return c.requestedSecretLifetime }
func (c *HbaseConfig) ListenerClass() string                  { return c.listenerClass }
func (c *HbaseConfig) RegionMoverArgs() string                { return "" }
func (c *HbaseConfig) RunRegionMover() bool                   { return false }

type MasterConfig struct {
	HbaseConfig
}

func (*MasterConfig) Role() Role { return Master }

type RestServerConfig struct {
	HbaseConfig
}

func (*RestServerConfig) Role() Role { return RestServer }

type RegionServerConfig struct {
	HbaseConfig
	regionMover RegionMover
}

func (*RegionServerConfig) Role() Role { return RegionServer }

func (c *RegionServerConfig) RegionMover() RegionMover { return c.regionMover }

func (c *RegionServerConfig) RunRegionMover() bool { return c.regionMover.RunBeforeShutdown }

func validateHbaseConfig(f *v1alpha1.HbaseConfigFragment) (HbaseConfig, error) {
	v := &fragment.Validation{}
	c := HbaseConfig{
		hbaseRootdir:  fragment.Optional(f.HbaseRootdir),
		listenerClass: fragment.Required(v, "listenerClass", f.ListenerClass),
	}
	c.gracefulShutdownTimeout = fragment.Required(v, "gracefulShutdownTimeout", f.GracefulShutdownTimeout).Duration
	c.requestedSecretLifetime = fragment.Required(v, "requestedSecretLifetime", f.RequestedSecretLifetime).Duration

	if f.Resources == nil {
		v.Missing("resources")
	} else {
		c.resources = validateResources(v.Field("resources"), f.Resources)
	}
	if f.Logging == nil {
		v.Missing("logging")
	} else {
		c.logging = validateLogging(v.Field("logging"), f.Logging)
	}
	if f.Affinity == nil {
		v.Missing("affinity")
	} else {
		c.affinity = Affinity{
			PodAffinity:     fragment.Optional(f.Affinity.PodAffinity),
			PodAntiAffinity: fragment.Optional(f.Affinity.PodAntiAffinity),
			NodeAffinity:    fragment.Optional(f.Affinity.NodeAffinity),
		}
		fragment.MergeAtomicMap(&c.affinity.NodeSelector, f.Affinity.NodeSelector)
	}

	if err := v.Err(); err != nil {
		return HbaseConfig{}, err
	}
	return c, nil
}

func validateResources(v *fragment.Validation, f *v1alpha1.ResourcesFragment) Resources {
	var r Resources
	if f.CPU == nil {
		v.Missing("cpu")
	} else {
		cpu := v.Field("cpu")
		r.CPUMin = fragment.Required(cpu, "min", f.CPU.Min)
		r.CPUMax = fragment.Required(cpu, "max", f.CPU.Max)
	}
	if f.Memory == nil {
		v.Missing("memory")
	} else {
		r.MemoryLimit = fragment.Required(v.Field("memory"), "limit", f.Memory.Limit)
	}
	return r
}

func validateLogging(v *fragment.Validation, f *v1alpha1.LoggingFragment) Logging {
	l := Logging{
		EnableVectorAgent: fragment.Required(v, "enableVectorAgent", f.EnableVectorAgent),
		Containers:        make(map[string]ContainerLogConfig, len(f.Containers)),
	}
	for _, name := range sortedKeys(f.Containers) {
		cf := f.Containers[name]
		cv := v.Field("containers." + name)
		if cf.Custom != nil {
			cm := cf.Custom.ConfigMap
			l.Containers[name] = ContainerLogConfig{CustomConfigMap: &cm}
			continue
		}
		c := ContainerLogConfig{
			Loggers: make(map[string]v1alpha1.LogLevel, len(cf.Loggers)),
		}
		for _, logger := range sortedKeys(cf.Loggers) {
			c.Loggers[logger] = fragment.Required(cv.Field("loggers."+logger), "level", cf.Loggers[logger].Level)
		}
		if cf.Console != nil {
			c.ConsoleLevel = fragment.Optional(cf.Console.Level)
		}
		if cf.File != nil {
			c.FileLevel = fragment.Optional(cf.File.Level)
		}
		l.Containers[name] = c
	}
	return l
}

func validateRegionMover(f *v1alpha1.RegionMoverFragment) (RegionMover, error) {
	v := &fragment.Validation{}
	if f == nil {
		v.Missing("regionMover")
		return RegionMover{}, v.Err()
	}
	mv := v.Field("regionMover")
	m := RegionMover{
		RunBeforeShutdown: fragment.Required(mv, "runBeforeShutdown", f.RunBeforeShutdown),
		MaxThreads:        fragment.Required(mv, "maxThreads", f.MaxThreads),
		Ack:               fragment.Required(mv, "ack", f.Ack),
	}
	if f.AdditionalMoverOptions != nil {
		m.AdditionalMoverOptions = append([]string{}, f.AdditionalMoverOptions...)
	}
	if err := v.Err(); err != nil {
		return RegionMover{}, err
	}
	return m, nil
}
