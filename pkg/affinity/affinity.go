// Package affinity computes the default placement hints of HBase pods.
package affinity

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/config"
)

const (
	TopologyKeyHostname = "kubernetes.io/hostname"

	// weights of the preferred scheduling terms
	clusterAffinityWeight  = 20
	datanodeAffinityWeight = 50
	roleAntiAffinityWeight = 70

	hdfsAppName           = "hdfs"
	hdfsDatanodeComponent = "datanode"
	labelName             = "app.kubernetes.io/name"
	labelInstance         = "app.kubernetes.io/instance"
	labelComponent        = "app.kubernetes.io/component"
)

// Default returns the affinity of a role: pods of one cluster are preferably
// co-located, pods of one role are preferably spread over nodes. Passing the
// HDFS discovery ConfigMap name also prefers nodes running a datanode of that
// HDFS cluster; region servers do that for short circuit reads.
func Default(clusterName, role, hdfsInstance string) *v1alpha1.AffinityFragment {
	terms := []corev1.WeightedPodAffinityTerm{
		{
			Weight: clusterAffinityWeight,
			PodAffinityTerm: corev1.PodAffinityTerm{
				LabelSelector: &metav1.LabelSelector{MatchLabels: map[string]string{
					labelName:     config.AppName,
					labelInstance: clusterName,
				}},
				TopologyKey: TopologyKeyHostname,
			},
		},
	}
	if hdfsInstance != "" {
		terms = append(terms, corev1.WeightedPodAffinityTerm{
			Weight: datanodeAffinityWeight,
			PodAffinityTerm: corev1.PodAffinityTerm{
				LabelSelector: &metav1.LabelSelector{MatchLabels: map[string]string{
					labelName:      hdfsAppName,
					labelInstance:  hdfsInstance,
					labelComponent: hdfsDatanodeComponent,
				}},
				// HDFS may run in any namespace
				NamespaceSelector: &metav1.LabelSelector{},
				TopologyKey:       TopologyKeyHostname,
			},
		})
	}

	return &v1alpha1.AffinityFragment{
		PodAffinity: &corev1.PodAffinity{
			PreferredDuringSchedulingIgnoredDuringExecution: terms,
		},
		PodAntiAffinity: &corev1.PodAntiAffinity{
			PreferredDuringSchedulingIgnoredDuringExecution: []corev1.WeightedPodAffinityTerm{
				{
					Weight: roleAntiAffinityWeight,
					PodAffinityTerm: corev1.PodAffinityTerm{
						LabelSelector: &metav1.LabelSelector{MatchLabels: map[string]string{
							labelName:      config.AppName,
							labelInstance:  clusterName,
							labelComponent: role,
						}},
						TopologyKey: TopologyKeyHostname,
					},
				},
			},
		},
	}
}

// AddLegacySelector adds the node requirements of a legacy role group
// selector to a. matchLabels extend the node selector and matchExpressions
// are appended as one more required node selector term, so nothing the role
// group already requires is dropped.
func AddLegacySelector(a *v1alpha1.AffinityFragment, selector *metav1.LabelSelector) {
	if selector == nil {
		return
	}
	if len(selector.MatchLabels) > 0 {
		if a.NodeSelector == nil {
			a.NodeSelector = make(map[string]string, len(selector.MatchLabels))
		}
		for k, v := range selector.MatchLabels {
			a.NodeSelector[k] = v
		}
	}
	if len(selector.MatchExpressions) == 0 {
		return
	}

	term := corev1.NodeSelectorTerm{
		MatchExpressions: make([]corev1.NodeSelectorRequirement, 0, len(selector.MatchExpressions)),
	}
	for _, e := range selector.MatchExpressions {
		term.MatchExpressions = append(term.MatchExpressions, corev1.NodeSelectorRequirement{
			Key:      e.Key,
			Operator: corev1.NodeSelectorOperator(e.Operator),
			Values:   append([]string(nil), e.Values...),
		})
	}
	if a.NodeAffinity == nil {
		a.NodeAffinity = &corev1.NodeAffinity{}
	}
	if a.NodeAffinity.RequiredDuringSchedulingIgnoredDuringExecution == nil {
		a.NodeAffinity.RequiredDuringSchedulingIgnoredDuringExecution = &corev1.NodeSelector{}
	}
	required := a.NodeAffinity.RequiredDuringSchedulingIgnoredDuringExecution
	required.NodeSelectorTerms = append(required.NodeSelectorTerms, term)
}
