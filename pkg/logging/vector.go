package logging

import (
	"fmt"
	"strings"

	"emperror.dev/errors"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	"sigs.k8s.io/yaml"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/config"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

const (
	vectorAggregatorAddressEntry = "ADDRESS"
	vectorAggregatorEnv          = "VECTOR_AGGREGATOR_ADDRESS"
	vectorLogEnv                 = "VECTOR_LOG"
	vectorShutdownDir            = config.LogDir + "/_vector"
	vectorShutdownFile           = vectorShutdownDir + "/shutdown"
)

// Target identifies the role group whose logs are shipped.
type Target struct {
	Namespace string
	Cluster   string
	Role      string
	RoleGroup string
}

// vectorLevel maps the level names onto vector's, which has no FATAL.
func vectorLevel(l v1alpha1.LogLevel) string {
	switch l {
	case v1alpha1.LogLevelFatal, v1alpha1.LogLevelError:
		return "error"
	case v1alpha1.LogLevelNone:
		return "off"
	}
	return strings.ToLower(string(l))
}

// VectorConfig renders the vector.yaml of the agent. It collects the XML log
// files of all containers and forwards them with the role group as metadata.
func VectorConfig(target Target, vector *roles.ContainerLogConfig) (string, error) {
	level := v1alpha1.LogLevelInfo
	if vector != nil {
		if root, ok := vector.Loggers[config.RootLogger]; ok {
			level = root
		}
	}

	enrich := fmt.Sprintf(`.namespace = %q
.cluster = %q
.role = %q
.roleGroup = %q
.container = "hbase"
.logger, _ = string(.attributes.logger)
.level, _ = string(.attributes.level)
.message, _ = string(.attributes.message)`, target.Namespace, target.Cluster, target.Role, target.RoleGroup)

	doc := map[string]interface{}{
		"data_dir": "/stackable/vector/var",
		"log_schema": map[string]interface{}{
			"host_key":      "pod",
			"timestamp_key": "timestamp",
		},
		"sources": map[string]interface{}{
			"vector": map[string]interface{}{"type": "internal_logs"},
			"files_log4j2": map[string]interface{}{
				"type":           "file",
				"include":        []string{config.LogDir + "/*/*.log4j2.xml"},
				"line_delimiter": "\r\n",
				"multiline": map[string]interface{}{
					"mode":              "halt_before",
					"start_pattern":     "^<log4j:event",
					"condition_pattern": "^<log4j:event",
					"timeout_ms":        1000,
				},
			},
		},
		"transforms": map[string]interface{}{
			"processed_files_log4j2": map[string]interface{}{
				"type":   "remap",
				"inputs": []string{"files_log4j2"},
				"source": `.attributes = parse_xml!(.message).event
.timestamp = from_unix_timestamp!(to_int!(.attributes.@timestamp), unit: "milliseconds")`,
			},
			"extended_logs": map[string]interface{}{
				"type":   "remap",
				"inputs": []string{"processed_files_log4j2"},
				"source": enrich,
			},
			"filtered_vector": map[string]interface{}{
				"type":      "filter",
				"inputs":    []string{"vector"},
				"condition": fmt.Sprintf(".metadata.level != null && includes(%s, downcase!(.metadata.level))", vectorLevelsFrom(level)),
			},
		},
		"sinks": map[string]interface{}{
			"aggregator": map[string]interface{}{
				"type":    "vector",
				"inputs":  []string{"extended_logs", "filtered_vector"},
				"address": "${" + vectorAggregatorEnv + "}",
			},
		},
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", errors.WrapIf(err, "failed to render vector config")
	}
	return string(out), nil
}

// vectorLevelsFrom lists the vector levels at and above l as a VRL array.
func vectorLevelsFrom(l v1alpha1.LogLevel) string {
	all := []string{"trace", "debug", "info", "warn", "error"}
	start := len(all)
	want := vectorLevel(l)
	for i, name := range all {
		if name == want {
			start = i
			break
		}
	}
	quoted := make([]string, 0, len(all)-start)
	for _, name := range all[start:] {
		quoted = append(quoted, fmt.Sprintf("%q", name))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// VectorContainer is the sidecar shipping the logs. It stops once the hbase
// container has written the shutdown marker.
func VectorContainer(image string, pullPolicy corev1.PullPolicy, vectorAggregatorConfigMap string, vector *roles.ContainerLogConfig) corev1.Container {
	level := v1alpha1.LogLevelInfo
	if vector != nil {
		if root, ok := vector.Loggers[config.RootLogger]; ok {
			level = root
		}
	}
	script := fmt.Sprintf(`# Vector will ignore SIGTERM (as PID != 1) and must be shut down by writing a shutdown trigger file
vector --config %s/%s & vector_pid=$!
if [ ! -f "%s" ]; then
  mkdir -p %s && inotifywait -qq --event create %s
fi
sleep 1
kill $vector_pid`, config.ConfigDir, config.VectorYaml, vectorShutdownFile, vectorShutdownDir, vectorShutdownDir)

	return corev1.Container{
		Name:            config.VectorContainer,
		Image:           image,
		ImagePullPolicy: pullPolicy,
		Command:         []string{"/bin/bash", "-x", "-euo", "pipefail", "-c"},
		Args:            []string{script},
		Env: []corev1.EnvVar{
			{Name: vectorLogEnv, Value: vectorLevel(level)},
			{
				Name: vectorAggregatorEnv,
				ValueFrom: &corev1.EnvVarSource{ConfigMapKeyRef: &corev1.ConfigMapKeySelector{
					LocalObjectReference: corev1.LocalObjectReference{Name: vectorAggregatorConfigMap},
					Key:                  vectorAggregatorAddressEntry,
				}},
			},
		},
		Resources: corev1.ResourceRequirements{
			Requests: corev1.ResourceList{
				corev1.ResourceCPU:    resource.MustParse("250m"),
				corev1.ResourceMemory: resource.MustParse("128Mi"),
			},
			Limits: corev1.ResourceList{
				corev1.ResourceCPU:    resource.MustParse("500m"),
				corev1.ResourceMemory: resource.MustParse("128Mi"),
			},
		},
		VolumeMounts: []corev1.VolumeMount{
			{Name: config.ConfigVolume, MountPath: config.ConfigDir},
			{Name: config.LogVolume, MountPath: config.LogDir},
		},
	}
}

// ShutdownVectorCommand makes the vector sidecar stop.
func ShutdownVectorCommand() string {
	return fmt.Sprintf("mkdir -p %s && touch %s", vectorShutdownDir, vectorShutdownFile)
}
