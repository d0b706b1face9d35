package k8sutil

import (
	"sort"
	"strings"
)

// GetLabelSelector renders labels as a label selector string, sorted by key.
func GetLabelSelector(labels map[string]string) string {
	var labelSelector []string
	for k, v := range labels {
		labelSelector = append(labelSelector, k+"="+v)
	}
	sort.Strings(labelSelector)
	selector := strings.Join(labelSelector, ",")
	return selector
}

// HasLabels reports whether every label of want is set on labels.
func HasLabels(labels, want map[string]string) bool {
	for k, v := range want {
		if labels[k] != v {
			return false
		}
	}
	return true
}
