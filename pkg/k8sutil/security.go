package k8sutil

import v1 "k8s.io/api/core/v1"

const (
	stackableUser  = int64(1000)
	stackableGroup = int64(0)
)

// PodSecurityContext runs the product as the image's unprivileged user. The
// group owns the mounted volumes so the process can write its logs.
func PodSecurityContext() *v1.PodSecurityContext {
	user := stackableUser
	group := stackableGroup
	fsGroup := stackableUser

	return &v1.PodSecurityContext{
		RunAsUser:  &user,
		RunAsGroup: &group,
		FSGroup:    &fsGroup,
	}
}
