package rolegroup

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	"github.com/opencurve/hbase-operator/pkg/roles"
)

// probeHandler checks the RPC port of masters and region servers. The REST
// server is checked with a GET on its API.
func probeHandler(role roles.Role, https bool) corev1.ProbeHandler {
	port := intstr.FromInt(int(roles.ServicePort(role)))
	if role == roles.RestServer {
		scheme := corev1.URISchemeHTTP
		if https {
			scheme = corev1.URISchemeHTTPS
		}
		return corev1.ProbeHandler{HTTPGet: &corev1.HTTPGetAction{Path: "/", Port: port, Scheme: scheme}}
	}
	return corev1.ProbeHandler{TCPSocket: &corev1.TCPSocketAction{Port: port}}
}

func startupProbe(role roles.Role, https bool) *corev1.Probe {
	return &corev1.Probe{
		ProbeHandler:        probeHandler(role, https),
		FailureThreshold:    120,
		InitialDelaySeconds: 4,
		PeriodSeconds:       5,
		TimeoutSeconds:      3,
	}
}

func livenessProbe(role roles.Role, https bool) *corev1.Probe {
	return &corev1.Probe{
		ProbeHandler:     probeHandler(role, https),
		FailureThreshold: 3,
		PeriodSeconds:    10,
		TimeoutSeconds:   3,
	}
}

func readinessProbe(role roles.Role, https bool) *corev1.Probe {
	return &corev1.Probe{
		ProbeHandler:     probeHandler(role, https),
		FailureThreshold: 1,
		PeriodSeconds:    10,
		TimeoutSeconds:   2,
	}
}
