package logging

import (
	"strings"
	"testing"

	"emperror.dev/errors"
	"k8s.io/utils/pointer"
	"sigs.k8s.io/yaml"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

func levelPtr(l v1alpha1.LogLevel) *v1alpha1.LogLevel {
	return &l
}

func TestLog4j2Config(t *testing.T) {
	cfg := Log4j2Config(roles.ContainerLogConfig{
		Loggers: map[string]v1alpha1.LogLevel{
			"ROOT":                    v1alpha1.LogLevelWarn,
			"org.apache.hadoop.hbase": v1alpha1.LogLevelDebug,
			"org.apache.zookeeper":    v1alpha1.LogLevelNone,
		},
		FileLevel: levelPtr(v1alpha1.LogLevelError),
	})

	for _, want := range []string{
		"appender.CONSOLE.filter.threshold.level = INFO",
		"appender.FILE.filter.threshold.level = ERROR",
		"appender.FILE.fileName = /stackable/log/hbase/hbase.log4j2.xml",
		"appender.FILE.policies.size.size = 5MB",
		"loggers = org.apache.hadoop.hbase, org.apache.zookeeper",
		"logger.org.apache.hadoop.hbase.level = DEBUG",
		"logger.org.apache.zookeeper.level = OFF",
		"rootLogger.level = WARN",
	} {
		if !strings.Contains(cfg, want) {
			t.Errorf("expected %q in\n%s", want, cfg)
		}
	}
}

func TestConfigFiles(t *testing.T) {
	target := Target{Namespace: "default", Cluster: "simple-hbase", Role: "master", RoleGroup: "default"}
	automatic := roles.ContainerLogConfig{Loggers: map[string]v1alpha1.LogLevel{"ROOT": v1alpha1.LogLevelInfo}}

	files, err := ConfigFiles(target, roles.Logging{
		Containers: map[string]roles.ContainerLogConfig{"hbase": automatic},
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := files["log4j2.properties"]; !ok || len(files) != 1 {
		t.Errorf("expected only log4j2.properties, got %v", files)
	}

	files, err = ConfigFiles(target, roles.Logging{
		Containers: map[string]roles.ContainerLogConfig{"hbase": {CustomConfigMap: pointer.String("my-log-config")}},
	}, nil)
	if err != nil || len(files) != 0 {
		t.Errorf("a custom log config renders nothing, got %v, %v", files, err)
	}

	_, err = ConfigFiles(target, roles.Logging{EnableVectorAgent: true}, nil)
	if !errors.Is(err, ErrMissingVectorAggregatorAddress) {
		t.Errorf("expected ErrMissingVectorAggregatorAddress, got %v", err)
	}

	files, err = ConfigFiles(target, roles.Logging{
		EnableVectorAgent: true,
		Containers:        map[string]roles.ContainerLogConfig{"hbase": automatic},
	}, pointer.String("vector-aggregator-discovery"))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := files["vector.yaml"]; !ok {
		t.Errorf("expected vector.yaml, got %v", files)
	}
}

func TestVectorConfig(t *testing.T) {
	target := Target{Namespace: "default", Cluster: "simple-hbase", Role: "regionserver", RoleGroup: "default"}
	doc, err := VectorConfig(target, &roles.ContainerLogConfig{
		Loggers: map[string]v1alpha1.LogLevel{"ROOT": v1alpha1.LogLevelWarn},
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	var parsed struct {
		Sources    map[string]map[string]interface{} `json:"sources"`
		Transforms map[string]map[string]interface{} `json:"transforms"`
		Sinks      map[string]map[string]interface{} `json:"sinks"`
	}
	if err := yaml.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("vector config is not valid yaml: %v", err)
	}
	if parsed.Sinks["aggregator"]["address"] != "${VECTOR_AGGREGATOR_ADDRESS}" {
		t.Errorf("unexpected sink %v", parsed.Sinks["aggregator"])
	}
	enrich, _ := parsed.Transforms["extended_logs"]["source"].(string)
	if !strings.Contains(enrich, `.role = "regionserver"`) {
		t.Errorf("logs are not enriched with the role: %s", enrich)
	}
	cond, _ := parsed.Transforms["filtered_vector"]["condition"].(string)
	if !strings.Contains(cond, `["warn", "error"]`) {
		t.Errorf("unexpected level filter %s", cond)
	}
}

func TestVectorLevel(t *testing.T) {
	tests := map[v1alpha1.LogLevel]string{
		v1alpha1.LogLevelTrace: "trace",
		v1alpha1.LogLevelInfo:  "info",
		v1alpha1.LogLevelFatal: "error",
		v1alpha1.LogLevelNone:  "off",
	}
	for in, want := range tests {
		if got := vectorLevel(in); got != want {
			t.Errorf("%s: expected %s, got %s", in, want, got)
		}
	}
	if vectorLevelsFrom(v1alpha1.LogLevelNone) != "[]" {
		t.Errorf("NONE should not let anything through, got %s", vectorLevelsFrom(v1alpha1.LogLevelNone))
	}
}

func TestVectorContainer(t *testing.T) {
	c := VectorContainer("docker.stackable.tech/stackable/hbase:2.4.17-stackable23.7.0", "IfNotPresent", "vector-aggregator-discovery", nil)
	if c.Name != "vector" {
		t.Errorf("unexpected container name %s", c.Name)
	}
	if c.Env[1].ValueFrom.ConfigMapKeyRef.Name != "vector-aggregator-discovery" {
		t.Errorf("aggregator address not read from the discovery ConfigMap: %+v", c.Env[1])
	}
	if !strings.Contains(c.Args[0], "/stackable/log/_vector/shutdown") {
		t.Errorf("vector does not wait for the shutdown marker: %s", c.Args[0])
	}
	if ShutdownVectorCommand() != "mkdir -p /stackable/log/_vector && touch /stackable/log/_vector/shutdown" {
		t.Errorf("unexpected shutdown command %s", ShutdownVectorCommand())
	}
}
