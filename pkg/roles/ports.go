package roles

import (
	"strings"

	"github.com/opencurve/hbase-operator/pkg/config"
)

// Port is a named container port.
type Port struct {
	Name string
	Port int32
}

const (
	uiPortNameHTTP    = "ui-http"
	uiPortNameHTTPS   = "ui-https"
	restPortNameHTTP  = "rest-http"
	restPortNameHTTPS = "rest-https"
	metricsPortName   = "metrics"
)

// UIPortName depends on whether the web UIs are served over TLS.
func UIPortName(https bool) string {
	if https {
		return uiPortNameHTTPS
	}
	return uiPortNameHTTP
}

// Ports lists the ports of a role. HBase 2.4 runs the JMX exporter agent,
// which adds the metrics port.
func Ports(role Role, productVersion string, https bool) []Port {
	var ports []Port
	switch role {
	case Master:
		ports = []Port{
			{Name: string(Master), Port: config.MasterPort},
			{Name: UIPortName(https), Port: config.MasterUIPort},
		}
	case RegionServer:
		ports = []Port{
			{Name: string(RegionServer), Port: config.RegionServerPort},
			{Name: UIPortName(https), Port: config.RegionServerUIPort},
		}
	case RestServer:
		restName := restPortNameHTTP
		if https {
			restName = restPortNameHTTPS
		}
		ports = []Port{
			{Name: restName, Port: config.RestServerPort},
			{Name: UIPortName(https), Port: config.RestServerInfoPort},
		}
	}
	if strings.HasPrefix(productVersion, "2.4") {
		ports = append(ports, Port{Name: metricsPortName, Port: config.MetricsPort})
	}
	return ports
}

// ServicePort is the port the role serves its RPC (or REST) API on.
func ServicePort(role Role) int32 {
	switch role {
	case Master:
		return config.MasterPort
	case RegionServer:
		return config.RegionServerPort
	default:
		return config.RestServerPort
	}
}

// UIPort is the port of the role's web UI.
func UIPort(role Role) int32 {
	switch role {
	case Master:
		return config.MasterUIPort
	case RegionServer:
		return config.RegionServerUIPort
	default:
		return config.RestServerInfoPort
	}
}
