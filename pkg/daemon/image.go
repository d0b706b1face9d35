package daemon

import (
	"fmt"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/config"
)

// labelValueMaxLength is the longest value a label can carry.
const labelValueMaxLength = 63

// ResolvedProductImage is the image the role groups of a cluster run.
type ResolvedProductImage struct {
	Image string
	// AppVersionLabel is the value of the version label
	AppVersionLabel string
	ProductVersion  string
	PullPolicy      corev1.PullPolicy
	PullSecrets     []corev1.LocalObjectReference
}

// ResolveImage computes the image reference of img. A custom image is taken
// as it is; otherwise the image is built from the repository, the product
// version and the stackable version, which defaults to operatorVersion.
func ResolveImage(img v1alpha1.ProductImage, operatorVersion string) ResolvedProductImage {
	pullPolicy := img.PullPolicy
	if pullPolicy == "" {
		pullPolicy = config.DefaultPullPolicy
	}
	resolved := ResolvedProductImage{
		ProductVersion: img.ProductVersion,
		PullPolicy:     corev1.PullPolicy(pullPolicy),
	}
	for _, s := range img.PullSecrets {
		resolved.PullSecrets = append(resolved.PullSecrets, corev1.LocalObjectReference{Name: s.Name})
	}

	if img.Custom != nil && *img.Custom != "" {
		resolved.Image = *img.Custom
		resolved.AppVersionLabel = labelValue(img.ProductVersion + "-" + imageTag(*img.Custom))
		return resolved
	}

	repo := config.DefaultImageRepo
	if img.Repo != nil && *img.Repo != "" {
		repo = strings.TrimRight(*img.Repo, "/")
	}
	stackableVersion := operatorVersion
	if img.StackableVersion != nil && *img.StackableVersion != "" {
		stackableVersion = *img.StackableVersion
	}
	tag := fmt.Sprintf("%s-stackable%s", img.ProductVersion, stackableVersion)
	resolved.Image = fmt.Sprintf("%s/%s:%s", repo, config.AppName, tag)
	resolved.AppVersionLabel = labelValue(tag)
	return resolved
}

// imageTag returns the tag of an image reference, "latest" when it has none.
// Digests are not valid label values and are cut off.
func imageTag(image string) string {
	if i := strings.Index(image, "@"); i >= 0 {
		image = image[:i]
	}
	name := image
	if i := strings.LastIndex(image, "/"); i >= 0 {
		name = image[i+1:]
	}
	if i := strings.LastIndex(name, ":"); i >= 0 {
		return name[i+1:]
	}
	return "latest"
}

// labelValue replaces the characters a label value cannot hold and cuts it to
// the maximum length.
func labelValue(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_', c == '.':
		default:
			b[i] = '-'
		}
	}
	if len(b) > labelValueMaxLength {
		b = b[:labelValueMaxLength]
	}
	return strings.Trim(string(b), "-_.")
}
