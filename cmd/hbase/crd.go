package hbase

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"sigs.k8s.io/yaml"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
)

var CRDCmd = &cobra.Command{
	Use:   "crd",
	Short: "Print the HbaseCluster CustomResourceDefinition",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := CRD()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// CRD decodes the built in CustomResourceDefinition and renders it as YAML.
func CRD() ([]byte, error) {
	crd := &apiextensionsv1.CustomResourceDefinition{}
	if err := yaml.Unmarshal(v1alpha1.CRDManifest, crd); err != nil {
		return nil, errors.Wrap(err, "failed to decode the HbaseCluster CRD")
	}
	if crd.Spec.Group != v1alpha1.CustomResourceGroup || crd.Spec.Names.Kind != v1alpha1.HbaseClusterKind {
		return nil, errors.Errorf("built in CRD defines %s/%s instead of %s/%s",
			crd.Spec.Group, crd.Spec.Names.Kind, v1alpha1.CustomResourceGroup, v1alpha1.HbaseClusterKind)
	}
	out, err := yaml.Marshal(crd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render the HbaseCluster CRD")
	}
	return out, nil
}
