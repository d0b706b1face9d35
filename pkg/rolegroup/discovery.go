package rolegroup

import (
	"emperror.dev/errors"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/opencurve/hbase-operator/pkg/config"
	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/kerberos"
)

// BuildDiscoveryConfigMap returns the ConfigMap clients connect with. It is
// named after the cluster and holds an hbase-site.xml with the ZooKeeper
// quorum and, on a secured cluster, the principals.
func BuildDiscoveryConfigMap(c *daemon.Cluster) (*corev1.ConfigMap, error) {
	site := c.Discovery.Zookeeper.HbaseSettings()
	krb, err := kerberos.DiscoveryConfigProperties(c.HbaseCluster)
	if err != nil {
		return nil, err
	}
	for k, v := range krb {
		site[k] = v
	}
	rendered, err := daemon.ToHadoopXML(site)
	if err != nil {
		return nil, errors.WrapIfWithDetails(err, "failed to build discovery config", "cluster", c.Name())
	}

	labels := daemon.RecommendedLabels(c.Name(), c.Image.AppVersionLabel, "discovery", "")
	return &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      c.Name(),
			Namespace: c.Namespace,
			Labels:    labels,
		},
		Data: map[string]string{
			config.HbaseSiteXML: rendered,
		},
	}, nil
}
