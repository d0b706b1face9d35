package daemon

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/opencurve/hbase-operator/pkg/config"
	"github.com/opencurve/hbase-operator/pkg/k8sutil"
)

// DaemonVolumes returns the pod volumes used by all HBase pods: the role
// group config, the HDFS client config, the log config, the log directory
// and the listener. logConfigMapName is the ConfigMap with log4j2.properties,
// a custom one or the role group ConfigMap.
func DaemonVolumes(configMapName, hdfsConfigMapName, logConfigMapName, listenerClass string) []corev1.Volume {
	logSize := resource.NewQuantity(int64(config.LogVolumeSizeInMiB)*1024*1024, resource.BinarySI)
	return []corev1.Volume{
		k8sutil.ConfigMapVolume(config.ConfigVolume, configMapName),
		k8sutil.ConfigMapVolume(config.HdfsDiscoveryVolume, hdfsConfigMapName),
		k8sutil.ConfigMapVolume(config.LogConfigVolume, logConfigMapName),
		k8sutil.EmptyDirVolume(config.LogVolume, *logSize),
		k8sutil.ListenerVolume(config.ListenerVolume, listenerClass),
	}
}

// DaemonVolumeMounts returns the hbase container mounts of DaemonVolumes.
// The config directories are copied to writable locations by the start script.
func DaemonVolumeMounts() []corev1.VolumeMount {
	return []corev1.VolumeMount{
		{Name: config.ConfigVolume, MountPath: config.TmpHbaseDir},
		{Name: config.HdfsDiscoveryVolume, MountPath: config.TmpHdfsDir},
		{Name: config.LogConfigVolume, MountPath: config.LogConfigDir},
		{Name: config.LogVolume, MountPath: config.LogDir},
		{Name: config.ListenerVolume, MountPath: config.ListenerDir},
	}
}
