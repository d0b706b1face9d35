package clusterd

import (
	"k8s.io/client-go/kubernetes"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/opencurve/hbase-operator/pkg/productconfig"
)

// Context is shared by every reconcile pass of the operator process.
type Context struct {
	// Clientset is a connection to the core kubernetes API, used for reads of
	// ConfigMaps owned by other operators
	Clientset kubernetes.Interface

	// Represents the Client provided by the controller-runtime package to interact with Kubernetes objects
	Client client.Client

	// ProductConfig validates the generated product properties
	ProductConfig *productconfig.Schema

	// OperatorVersion is the default stackable version of product images
	OperatorVersion string
}
