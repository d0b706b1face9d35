package k8sutil

import (
	"strings"
	"time"

	v1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/pointer"
)

const (
	secretsStorageClass   = "secrets.stackable.tech"
	listenersStorageClass = "listeners.stackable.tech"

	secretClassAnnotation          = "secrets.stackable.tech/class"
	secretScopeAnnotation          = "secrets.stackable.tech/scope"
	secretFormatAnnotation         = "secrets.stackable.tech/format"
	kerberosServiceNamesAnnotation = "secrets.stackable.tech/kerberos.service.names"
	pkcs12PasswordAnnotation       = "secrets.stackable.tech/format.compatibility.tls-pkcs12.password"
	certLifetimeAnnotation         = "secrets.stackable.tech/backend.autotls.cert.lifetime"
	listenerClassAnnotation        = "listeners.stackable.tech/listener-class"

	SecretFormatTLSPkcs12 = "tls-pkcs12"
	SecretScopePod        = "pod"
	SecretScopeNode       = "node"
)

// SecretScopeService scopes a secret to the addresses of a service.
func SecretScopeService(name string) string {
	return "service=" + name
}

// SecretOperatorVolume describes a volume provisioned by the secret operator.
type SecretOperatorVolume struct {
	Class                string
	Scopes               []string
	Format               string
	KerberosServiceNames []string
	Pkcs12Password       string
	// CertLifetime is left to the secret class when zero.
	CertLifetime time.Duration
}

// Volume returns an ephemeral volume requesting the secret.
func (s SecretOperatorVolume) Volume(name string) v1.Volume {
	annotations := map[string]string{secretClassAnnotation: s.Class}
	if len(s.Scopes) > 0 {
		annotations[secretScopeAnnotation] = strings.Join(s.Scopes, ",")
	}
	if s.Format != "" {
		annotations[secretFormatAnnotation] = s.Format
	}
	if len(s.KerberosServiceNames) > 0 {
		annotations[kerberosServiceNamesAnnotation] = strings.Join(s.KerberosServiceNames, ",")
	}
	if s.Pkcs12Password != "" {
		annotations[pkcs12PasswordAnnotation] = s.Pkcs12Password
	}
	if s.CertLifetime > 0 {
		annotations[certLifetimeAnnotation] = s.CertLifetime.String()
	}
	return ephemeralVolume(name, secretsStorageClass, v1.ReadWriteOnce, annotations)
}

// ListenerVolume returns an ephemeral volume requesting a listener of class.
// The listener operator writes the exposed address and ports into it.
func ListenerVolume(name, listenerClass string) v1.Volume {
	return ephemeralVolume(name, listenersStorageClass, v1.ReadWriteMany, map[string]string{
		listenerClassAnnotation: listenerClass,
	})
}

func ephemeralVolume(name, storageClass string, mode v1.PersistentVolumeAccessMode, annotations map[string]string) v1.Volume {
	return v1.Volume{
		Name: name,
		VolumeSource: v1.VolumeSource{
			Ephemeral: &v1.EphemeralVolumeSource{
				VolumeClaimTemplate: &v1.PersistentVolumeClaimTemplate{
					ObjectMeta: metav1.ObjectMeta{Annotations: annotations},
					Spec: v1.PersistentVolumeClaimSpec{
						AccessModes:      []v1.PersistentVolumeAccessMode{mode},
						StorageClassName: pointer.String(storageClass),
						Resources: v1.ResourceRequirements{
							Requests: v1.ResourceList{v1.ResourceStorage: resource.MustParse("1")},
						},
					},
				},
			},
		},
	}
}

// ConfigMapVolume mounts all keys of a ConfigMap.
func ConfigMapVolume(name, configMapName string) v1.Volume {
	return v1.Volume{
		Name: name,
		VolumeSource: v1.VolumeSource{
			ConfigMap: &v1.ConfigMapVolumeSource{
				LocalObjectReference: v1.LocalObjectReference{Name: configMapName},
			},
		},
	}
}

// EmptyDirVolume returns a size limited emptyDir volume.
func EmptyDirVolume(name string, sizeLimit resource.Quantity) v1.Volume {
	return v1.Volume{
		Name: name,
		VolumeSource: v1.VolumeSource{
			EmptyDir: &v1.EmptyDirVolumeSource{SizeLimit: &sizeLimit},
		},
	}
}
