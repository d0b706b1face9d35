package rolegroup

import (
	"strconv"

	"emperror.dev/errors"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/pointer"

	"github.com/opencurve/hbase-operator/pkg/config"
	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/k8sutil"
	"github.com/opencurve/hbase-operator/pkg/kerberos"
	"github.com/opencurve/hbase-operator/pkg/logging"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

// replicas is zero for a stopped cluster. Unset replicas are left to the
// StatefulSet default.
func replicas(c *daemon.Cluster, spec *roles.RoleGroupSpec) *int32 {
	if c.Stopped() {
		return pointer.Int32(0)
	}
	return spec.Replicas
}

// logConfigMapName is the ConfigMap log4j2.properties is read from.
func logConfigMapName(ref daemon.RoleGroupRef, l roles.Logging) string {
	if c, ok := l.Containers[config.HbaseContainer]; ok && c.CustomConfigMap != nil {
		return *c.CustomConfigMap
	}
	return ref.ObjectName()
}

func containerEnv(c *daemon.Cluster, merged roles.MergedConfig, spec *roles.RoleGroupSpec, krb kerberos.PodConfig) []corev1.EnvVar {
	env := []corev1.EnvVar{
		{Name: "HBASE_CONF_DIR", Value: config.ConfigDir},
		{Name: "HADOOP_CONF_DIR", Value: config.HdfsConfigDir},
		{Name: "REGION_MOVER_OPTS", Value: merged.RegionMoverArgs()},
		{Name: "RUN_REGION_MOVER", Value: strconv.FormatBool(merged.RunRegionMover())},
		{Name: "STACKABLE_LOG_DIR", Value: config.LogDir},
	}
	env = k8sutil.MergeEnvVars(env, krb.Env...)
	return k8sutil.MergeEnvVars(env, k8sutil.EnvVars(spec.EnvOverrides)...)
}

// BuildStatefulSet returns the StatefulSet running the pods of a role group.
// The role and role group pod overrides are applied last.
func BuildStatefulSet(c *daemon.Cluster, ref daemon.RoleGroupRef, merged roles.MergedConfig, spec *roles.RoleGroupSpec) (*appsv1.StatefulSet, error) {
	https := kerberos.HTTPSEnabled(c.HbaseCluster)
	logCfg := merged.Logging()
	krb := kerberos.BuildPodConfig(c.HbaseCluster, ref.Role, merged.RequestedSecretLifetime())

	var ports []corev1.ContainerPort
	for _, p := range roles.Ports(ref.Role, c.Image.ProductVersion, https) {
		ports = append(ports, corev1.ContainerPort{Name: p.Name, ContainerPort: p.Port, Protocol: corev1.ProtocolTCP})
	}

	volumes := daemon.DaemonVolumes(ref.ObjectName(), c.HdfsConfigMapName(), logConfigMapName(ref, logCfg), merged.ListenerClass())
	volumes = append(volumes, krb.Volumes...)
	mounts := append(daemon.DaemonVolumeMounts(), krb.VolumeMounts...)

	hbase := corev1.Container{
		Name:            config.HbaseContainer,
		Image:           c.Image.Image,
		ImagePullPolicy: c.Image.PullPolicy,
		Command:         shellCommand,
		Args:            []string{startCommand(c, ref.Role, https, logCfg.EnableVectorAgent)},
		Env:             containerEnv(c, merged, spec, krb),
		Ports:           ports,
		Resources:       merged.Resources().Requirements(),
		VolumeMounts:    mounts,
		StartupProbe:    startupProbe(ref.Role, https),
		LivenessProbe:   livenessProbe(ref.Role, https),
		ReadinessProbe:  readinessProbe(ref.Role, https),
	}
	containers := []corev1.Container{hbase}

	if logCfg.EnableVectorAgent {
		aggregator := c.HbaseCluster.Spec.ClusterConfig.VectorAggregatorConfigMapName
		if aggregator == nil || *aggregator == "" {
			return nil, errors.WithDetails(logging.ErrMissingVectorAggregatorAddress, "roleGroup", ref.ObjectName())
		}
		var vector *roles.ContainerLogConfig
		if vc, ok := logCfg.Containers[config.VectorContainer]; ok {
			vector = &vc
		}
		containers = append(containers, logging.VectorContainer(c.Image.Image, c.Image.PullPolicy, *aggregator, vector))
	}

	labels := daemon.RecommendedLabels(c.Name(), c.Image.AppVersionLabel, string(ref.Role), ref.RoleGroup)
	affinity := merged.Affinity()
	template := corev1.PodTemplateSpec{
		ObjectMeta: metav1.ObjectMeta{
			Labels: labels,
		},
		Spec: corev1.PodSpec{
			Containers:                    containers,
			Volumes:                       volumes,
			Affinity:                      affinity.Kubernetes(),
			NodeSelector:                  affinity.NodeSelector,
			ServiceAccountName:            c.ServiceAccountName(),
			SecurityContext:               k8sutil.PodSecurityContext(),
			ImagePullSecrets:              c.Image.PullSecrets,
			TerminationGracePeriodSeconds: pointer.Int64(int64(merged.GracefulShutdownTimeout().Seconds())),
		},
	}
	if err := k8sutil.ApplyPodOverrides(&template, spec.RolePodOverrides, spec.RoleGroupPodOverrides); err != nil {
		return nil, errors.WrapIfWithDetails(err, "invalid pod overrides", "roleGroup", ref.ObjectName())
	}

	return &appsv1.StatefulSet{
		ObjectMeta: metav1.ObjectMeta{
			Name:      ref.ObjectName(),
			Namespace: c.Namespace,
			Labels:    labels,
		},
		Spec: appsv1.StatefulSetSpec{
			PodManagementPolicy: appsv1.ParallelPodManagement,
			Replicas:            replicas(c, spec),
			Selector: &metav1.LabelSelector{
				MatchLabels: daemon.RoleGroupSelectorLabels(ref),
			},
			ServiceName: ref.ObjectName(),
			Template:    template,
		},
	}, nil
}
