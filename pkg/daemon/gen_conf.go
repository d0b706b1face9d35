package daemon

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"emperror.dev/errors"
	"github.com/coreos/pkg/capnslog"
)

var logger = capnslog.NewPackageLogger("github.com/opencurve/hbase-operator", "daemon")

type hadoopProperty struct {
	Name  string `xml:"name"`
	Value string `xml:"value"`
}

type hadoopConfiguration struct {
	XMLName    xml.Name         `xml:"configuration"`
	Properties []hadoopProperty `xml:"property"`
}

func sortedKeys(props map[string]string) []string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ToHadoopXML renders props as a Hadoop configuration file, sorted by name.
func ToHadoopXML(props map[string]string) (string, error) {
	conf := hadoopConfiguration{}
	for _, k := range sortedKeys(props) {
		conf.Properties = append(conf.Properties, hadoopProperty{Name: k, Value: props[k]})
	}
	out, err := xml.MarshalIndent(conf, "", "  ")
	if err != nil {
		return "", errors.WrapIf(err, "failed to render hadoop xml")
	}
	return xml.Header + string(out) + "\n", nil
}

// ToEnvSh renders props as exported shell variables, sorted by name. Values
// are written as they are so they may reference other variables.
func ToEnvSh(props map[string]string) string {
	var b strings.Builder
	for _, k := range sortedKeys(props) {
		fmt.Fprintf(&b, "export %s=\"%s\"\n", k, props[k])
	}
	return b.String()
}

var javaPropertiesKeyEscaper = strings.NewReplacer(
	`\`, `\\`,
	" ", `\ `,
	":", `\:`,
	"=", `\=`,
	"\n", `\n`,
	"\t", `\t`,
)

var javaPropertiesValueEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\t", `\t`,
)

// ToJavaProperties renders props in the java.util.Properties format, sorted by key.
func ToJavaProperties(props map[string]string) string {
	var b strings.Builder
	for _, k := range sortedKeys(props) {
		v := javaPropertiesValueEscaper.Replace(props[k])
		// a leading space would be dropped by the parser
		if strings.HasPrefix(v, " ") {
			v = `\` + v
		}
		fmt.Fprintf(&b, "%s=%s\n", javaPropertiesKeyEscaper.Replace(k), v)
	}
	return b.String()
}

// RenderFile renders the properties of a config file in the format its name
// implies.
func RenderFile(name string, props map[string]string) (string, error) {
	switch {
	case strings.HasSuffix(name, ".xml"):
		return ToHadoopXML(props)
	case strings.HasSuffix(name, ".sh"):
		return ToEnvSh(props), nil
	case strings.HasSuffix(name, ".properties"):
		return ToJavaProperties(props), nil
	}
	logger.Warningf("unknown format of config file %q", name)
	return "", errors.WithDetails(errors.NewPlain("unknown config file format"), "file", name)
}
