package rolegroup

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/opencurve/hbase-operator/pkg/daemon"
	"github.com/opencurve/hbase-operator/pkg/kerberos"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

// BuildService returns the headless service that gives the pods of a role
// group stable DNS names. Pods are published before they are ready so the
// masters and region servers can find each other while starting.
func BuildService(c *daemon.Cluster, ref daemon.RoleGroupRef) *corev1.Service {
	labels := daemon.RecommendedLabels(c.Name(), c.Image.AppVersionLabel, string(ref.Role), ref.RoleGroup)
	labels[daemon.PrometheusScrapeLabel] = "true"

	var ports []corev1.ServicePort
	for _, p := range roles.Ports(ref.Role, c.Image.ProductVersion, kerberos.HTTPSEnabled(c.HbaseCluster)) {
		ports = append(ports, corev1.ServicePort{
			Name:     p.Name,
			Port:     p.Port,
			Protocol: corev1.ProtocolTCP,
		})
	}

	return &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:      ref.ObjectName(),
			Namespace: c.Namespace,
			Labels:    labels,
		},
		Spec: corev1.ServiceSpec{
			ClusterIP:                corev1.ClusterIPNone,
			Ports:                    ports,
			Selector:                 daemon.RoleGroupSelectorLabels(ref),
			PublishNotReadyAddresses: true,
		},
	}
}
