package roles

import (
	"time"

	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/pointer"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/affinity"
	"github.com/opencurve/hbase-operator/pkg/config"
)

const (
	defaultMasterGracefulShutdownTimeout       = 20 * time.Minute
	defaultRegionServerGracefulShutdownTimeout = 60 * time.Minute
	defaultRestServerGracefulShutdownTimeout   = 5 * time.Minute
	defaultSecretLifetime                      = 24 * time.Hour
)

// DefaultFragment returns the operator defaults for role. It is the least
// specific merge tier and sets every required field.
func DefaultFragment(role Role, clusterName, hdfsDiscoveryCMName string) (ConfigFragment, error) {
	base := v1alpha1.HbaseConfigFragment{
		Logging:                 defaultLogging(),
		RequestedSecretLifetime: &metav1.Duration{Duration: defaultSecretLifetime},
		ListenerClass:           pointer.String(config.DefaultListenerClass),
	}

	switch role {
	case Master:
		base.Resources = resources("250m", "1", "1Gi")
		base.GracefulShutdownTimeout = &metav1.Duration{Duration: defaultMasterGracefulShutdownTimeout}
		base.Affinity = affinity.Default(clusterName, string(role), "")
		return &MasterFragment{Config: base}, nil
	case RegionServer:
		base.Resources = resources("250m", "1", "1Gi")
		base.GracefulShutdownTimeout = &metav1.Duration{Duration: defaultRegionServerGracefulShutdownTimeout}
		base.Affinity = affinity.Default(clusterName, string(role), hdfsDiscoveryCMName)
		return &RegionServerFragment{Config: v1alpha1.RegionServerConfigFragment{
			HbaseConfigFragment: base,
			RegionMover: &v1alpha1.RegionMoverFragment{
				RunBeforeShutdown: pointer.Bool(false),
				MaxThreads:        uint16Ptr(1),
				Ack:               pointer.Bool(true),
			},
		}}, nil
	case RestServer:
		base.Resources = resources("100m", "400m", "512Mi")
		base.GracefulShutdownTimeout = &metav1.Duration{Duration: defaultRestServerGracefulShutdownTimeout}
		base.Affinity = affinity.Default(clusterName, string(role), "")
		return &RestServerFragment{Config: base}, nil
	}
	return nil, ErrInvalidRole
}

func resources(cpuMin, cpuMax, memory string) *v1alpha1.ResourcesFragment {
	min := resource.MustParse(cpuMin)
	max := resource.MustParse(cpuMax)
	limit := resource.MustParse(memory)
	return &v1alpha1.ResourcesFragment{
		CPU:     &v1alpha1.CPULimitsFragment{Min: &min, Max: &max},
		Memory:  &v1alpha1.MemoryLimitsFragment{Limit: &limit},
		Storage: &v1alpha1.StorageFragment{},
	}
}

func defaultLogging() *v1alpha1.LoggingFragment {
	automatic := func() v1alpha1.ContainerLogConfigFragment {
		info := v1alpha1.LogLevelInfo
		return v1alpha1.ContainerLogConfigFragment{
			Loggers: map[string]v1alpha1.LoggerConfigFragment{
				config.RootLogger: {Level: &info},
			},
			Console: &v1alpha1.AppenderConfigFragment{Level: &info},
			File:    &v1alpha1.AppenderConfigFragment{Level: &info},
		}
	}
	return &v1alpha1.LoggingFragment{
		EnableVectorAgent: pointer.Bool(false),
		Containers: map[string]v1alpha1.ContainerLogConfigFragment{
			config.HbaseContainer:  automatic(),
			config.VectorContainer: automatic(),
		},
	}
}

func uint16Ptr(v uint16) *uint16 {
	return &v
}
