// Package discovery reads the connection details of the ZooKeeper and HDFS
// clusters HBase depends on from their discovery ConfigMaps.
package discovery

import (
	"context"
	"strconv"

	"emperror.dev/errors"
	"github.com/coreos/pkg/capnslog"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/config"
	"github.com/opencurve/hbase-operator/pkg/k8sutil"
)

var logger = capnslog.NewPackageLogger("github.com/opencurve/hbase-operator", "discovery")

const (
	ZookeeperHostsEntry      = "ZOOKEEPER_HOSTS"
	ZookeeperChrootEntry     = "ZOOKEEPER_CHROOT"
	ZookeeperClientPortEntry = "ZOOKEEPER_CLIENT_PORT"
)

var (
	ErrObjectHasNoNamespace  = errors.NewPlain("object defines no namespace")
	ErrMissingConfigMap      = errors.NewPlain("failed to retrieve ConfigMap")
	ErrMissingConfigMapEntry = errors.NewPlain("failed to retrieve the entry of ConfigMap")
	ErrParseZookeeperPort    = errors.NewPlain("failed to parse the zookeeper port")
)

// ZookeeperInfo is the znode HBase keeps its state under.
type ZookeeperInfo struct {
	Hosts  string
	Chroot string
	Port   uint16
}

// HbaseSettings are the hbase-site.xml properties pointing HBase at the znode.
func (z *ZookeeperInfo) HbaseSettings() map[string]string {
	return map[string]string{
		config.HbaseZookeeperQuorum: z.Hosts,
		config.HbaseZookeeperPort:   strconv.Itoa(int(z.Port)),
		config.ZookeeperZnodeParent: z.Chroot,
	}
}

// HdfsInfo is the HDFS client configuration HBase stores its data with.
type HdfsInfo struct {
	// ConfigMapName is mounted into the pods as it is
	ConfigMapName string
	CoreSite      string
	HdfsSite      string
}

// Info is read once per reconcile pass and shared by all role groups.
type Info struct {
	Zookeeper ZookeeperInfo
	Hdfs      HdfsInfo
}

func entry(cm *corev1.ConfigMap, key string) (string, error) {
	v, ok := cm.Data[key]
	if !ok {
		return "", errors.WithDetails(ErrMissingConfigMapEntry, "configMap", cm.Name, "entry", key)
	}
	return v, nil
}

// ZookeeperFromConfigMap parses a ZooKeeper znode discovery ConfigMap.
func ZookeeperFromConfigMap(cm *corev1.ConfigMap) (*ZookeeperInfo, error) {
	hosts, err := entry(cm, ZookeeperHostsEntry)
	if err != nil {
		return nil, err
	}
	chroot, err := entry(cm, ZookeeperChrootEntry)
	if err != nil {
		return nil, err
	}
	rawPort, err := entry(cm, ZookeeperClientPortEntry)
	if err != nil {
		return nil, err
	}
	port, err := strconv.ParseUint(rawPort, 10, 16)
	if err != nil {
		return nil, errors.WrapIfWithDetails(errors.Combine(ErrParseZookeeperPort, err), "invalid zookeeper port",
			"configMap", cm.Name, "entry", ZookeeperClientPortEntry)
	}
	return &ZookeeperInfo{Hosts: hosts, Chroot: chroot, Port: uint16(port)}, nil
}

// HdfsFromConfigMap parses an HDFS discovery ConfigMap.
func HdfsFromConfigMap(cm *corev1.ConfigMap) (*HdfsInfo, error) {
	coreSite, err := entry(cm, config.CoreSiteXML)
	if err != nil {
		return nil, err
	}
	hdfsSite, err := entry(cm, config.HdfsSiteXML)
	if err != nil {
		return nil, err
	}
	return &HdfsInfo{ConfigMapName: cm.Name, CoreSite: coreSite, HdfsSite: hdfsSite}, nil
}

// Fetch reads the discovery ConfigMaps referenced by cluster.
func Fetch(ctx context.Context, clientset kubernetes.Interface, cluster *v1alpha1.HbaseCluster) (*Info, error) {
	if cluster.Namespace == "" {
		return nil, ErrObjectHasNoNamespace
	}

	get := func(name string) (*corev1.ConfigMap, error) {
		cm, err := k8sutil.GetConfigMapByName(ctx, clientset, cluster.Namespace, name)
		if err != nil {
			return nil, errors.WrapIfWithDetails(errors.Combine(ErrMissingConfigMap, err), "failed to read discovery ConfigMap",
				"configMap", name, "namespace", cluster.Namespace)
		}
		return cm, nil
	}

	zkCM, err := get(cluster.Spec.ClusterConfig.ZookeeperConfigMapName)
	if err != nil {
		return nil, err
	}
	zk, err := ZookeeperFromConfigMap(zkCM)
	if err != nil {
		return nil, err
	}

	hdfsCM, err := get(cluster.Spec.ClusterConfig.HdfsConfigMapName)
	if err != nil {
		return nil, err
	}
	hdfs, err := HdfsFromConfigMap(hdfsCM)
	if err != nil {
		return nil, err
	}

	logger.Debugf("cluster %s/%s uses zookeeper %s%s", cluster.Namespace, cluster.Name, zk.Hosts, zk.Chroot)
	return &Info{Zookeeper: *zk, Hdfs: *hdfs}, nil
}
