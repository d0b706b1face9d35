package rolegroup

import (
	"emperror.dev/errors"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/logging"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

// BuildConfigMap renders the config files of a role group: the property
// bundle and the logging config.
func BuildConfigMap(c *daemon.Cluster, ref daemon.RoleGroupRef, merged roles.MergedConfig, bundle map[string]map[string]string) (*corev1.ConfigMap, error) {
	data := map[string]string{}
	for file, props := range bundle {
		rendered, err := daemon.RenderFile(file, props)
		if err != nil {
			return nil, errors.WrapIfWithDetails(err, "failed to render config file", "roleGroup", ref.ObjectName(), "file", file)
		}
		data[file] = rendered
	}

	target := logging.Target{
		Namespace: c.Namespace,
		Cluster:   c.Name(),
		Role:      string(ref.Role),
		RoleGroup: ref.RoleGroup,
	}
	logFiles, err := logging.ConfigFiles(target, merged.Logging(), c.HbaseCluster.Spec.ClusterConfig.VectorAggregatorConfigMapName)
	if err != nil {
		return nil, errors.WrapIfWithDetails(err, "failed to build logging config", "roleGroup", ref.ObjectName())
	}
	for file, content := range logFiles {
		data[file] = content
	}

	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      ref.ObjectName(),
			Namespace: c.Namespace,
			Labels:    daemon.RecommendedLabels(c.Name(), c.Image.AppVersionLabel, string(ref.Role), ref.RoleGroup),
		},
		Data: data,
	}, nil
}
