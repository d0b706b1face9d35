// Package logging renders the product log configuration of HBase and the
// vector agent that ships the logs.
package logging

import (
	"fmt"
	"sort"
	"strings"

	"emperror.dev/errors"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/config"
	"github.com/opencurve/hbase-operator/pkg/roles"
)

const (
	consoleConversionPattern = "%d{ISO8601} %-5p [%t] %c{2}: %.1000m%n"
	hbaseLog4j2File          = "hbase.log4j2.xml"
)

var ErrMissingVectorAggregatorAddress = errors.NewPlain("vectorAggregatorConfigMapName must be set")

// log4jLevel maps the level names onto log4j2's, which calls NONE OFF.
func log4jLevel(l v1alpha1.LogLevel) string {
	if l == v1alpha1.LogLevelNone {
		return "OFF"
	}
	return string(l)
}

func levelOr(l *v1alpha1.LogLevel, fallback v1alpha1.LogLevel) v1alpha1.LogLevel {
	if l == nil {
		return fallback
	}
	return *l
}

// Log4j2Config renders the log4j2.properties of an automatic log config.
// The file appender writes XML so the vector agent can parse it.
func Log4j2Config(c roles.ContainerLogConfig) string {
	rootLevel := v1alpha1.LogLevelInfo
	var names []string
	for name, level := range c.Loggers {
		if name == config.RootLogger {
			rootLevel = level
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	// the active file plus the archived ones share the size budget
	fileSizeMiB := config.MaxLogFilesSizeInMiB / (1 + config.ArchivedLogFilesCount)
	if fileSizeMiB < 1 {
		fileSizeMiB = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, `appenders = FILE, CONSOLE

appender.CONSOLE.type = Console
appender.CONSOLE.name = CONSOLE
appender.CONSOLE.target = SYSTEM_ERR
appender.CONSOLE.layout.type = PatternLayout
appender.CONSOLE.layout.pattern = %s
appender.CONSOLE.filter.threshold.type = ThresholdFilter
appender.CONSOLE.filter.threshold.level = %s

appender.FILE.type = RollingFile
appender.FILE.name = FILE
appender.FILE.fileName = %s/%s
appender.FILE.filePattern = %s/%s.%%i
appender.FILE.layout.type = XMLLayout
appender.FILE.policies.type = Policies
appender.FILE.policies.size.type = SizeBasedTriggeringPolicy
appender.FILE.policies.size.size = %dMB
appender.FILE.strategy.type = DefaultRolloverStrategy
appender.FILE.strategy.max = %d
appender.FILE.filter.threshold.type = ThresholdFilter
appender.FILE.filter.threshold.level = %s
`,
		consoleConversionPattern,
		log4jLevel(levelOr(c.ConsoleLevel, v1alpha1.LogLevelInfo)),
		config.HbaseLogDir, hbaseLog4j2File,
		config.HbaseLogDir, hbaseLog4j2File,
		fileSizeMiB,
		config.ArchivedLogFilesCount,
		log4jLevel(levelOr(c.FileLevel, v1alpha1.LogLevelInfo)),
	)

	if len(names) > 0 {
		fmt.Fprintf(&b, "\nloggers = %s\n", strings.Join(names, ", "))
		for _, name := range names {
			fmt.Fprintf(&b, "logger.%s.name = %s\nlogger.%s.level = %s\n", name, name, name, log4jLevel(c.Loggers[name]))
		}
	}

	fmt.Fprintf(&b, `
rootLogger.level = %s
rootLogger.appenderRefs = CONSOLE, FILE
rootLogger.appenderRef.CONSOLE.ref = CONSOLE
rootLogger.appenderRef.FILE.ref = FILE
`, log4jLevel(rootLevel))
	return b.String()
}

// ConfigFiles returns the logging files of a role group ConfigMap:
// log4j2.properties for an automatic hbase log config and vector.yaml when
// the agent is enabled.
func ConfigFiles(target Target, logging roles.Logging, vectorAggregatorConfigMap *string) (map[string]string, error) {
	files := map[string]string{}
	if c, ok := logging.Containers[config.HbaseContainer]; ok && c.CustomConfigMap == nil {
		files[config.Log4j2Properties] = Log4j2Config(c)
	}
	if logging.EnableVectorAgent {
		if vectorAggregatorConfigMap == nil || *vectorAggregatorConfigMap == "" {
			return nil, ErrMissingVectorAggregatorAddress
		}
		var vector *roles.ContainerLogConfig
		if c, ok := logging.Containers[config.VectorContainer]; ok && c.CustomConfigMap == nil {
			vector = &c
		}
		doc, err := VectorConfig(target, vector)
		if err != nil {
			return nil, err
		}
		files[config.VectorYaml] = doc
	}
	return files, nil
}
