/*


Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package hbase

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/opencurve/hbase-operator/api/v1alpha1"
	"github.com/opencurve/hbase-operator/pkg/clusterd"
	"github.com/opencurve/hbase-operator/pkg/config"
	"github.com/opencurve/hbase-operator/pkg/controllers"
	"github.com/opencurve/hbase-operator/pkg/productconfig"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")

	OperatorCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the operator",
		Long: `Runs the controller of HbaseCluster resources. It watches the clusters, the
objects generated for them and the discovery ConfigMaps they read.`,
	}
)

func init() {
	_ = clientgoscheme.AddToScheme(scheme)
	_ = v1alpha1.AddToScheme(scheme)
	// +kubebuilder:scaffold:scheme

	options, err := NewOperatorOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	options.AddFlags(OperatorCmd.Flags())
	OperatorCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return options.Run()
	}
}

type OperatorOptions struct {
	MetricsAddr          string
	ProbeAddr            string
	EnableLeaderElection bool
	// WatchNamespace limits the operator to one namespace, all when empty
	WatchNamespace string
	// ProductConfig replaces the built in product config schema
	ProductConfig string

	ZapOptions zap.Options
}

// NewOperatorOptions creates a new OperatorOptions with a default config
func NewOperatorOptions() (*OperatorOptions, error) {
	return &OperatorOptions{
		MetricsAddr:          ":8080",
		ProbeAddr:            ":8081",
		EnableLeaderElection: false,
		ZapOptions:           zap.Options{Development: false},
	}, nil
}

func (opts *OperatorOptions) Run() error {
	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts.ZapOptions)))

	schema, err := productconfig.LoadFile(opts.ProductConfig)
	if err != nil {
		setupLog.Error(err, "failed to load product config")
		return err
	}

	restConfig := ctrl.GetConfigOrDie()
	clientSet, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		setupLog.Error(err, "create clientset failed")
		return err
	}

	mgr, err := ctrl.NewManager(restConfig, ctrl.Options{
		Scheme:                 scheme,
		MetricsBindAddress:     opts.MetricsAddr,
		HealthProbeBindAddress: opts.ProbeAddr,
		Port:                   9443,
		LeaderElection:         opts.EnableLeaderElection,
		LeaderElectionID:       "3ac1b2f0.hbase.stackable.tech",
		Namespace:              opts.WatchNamespace,
	})
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		return err
	}

	// Create clusterd context
	context := clusterd.Context{
		Clientset:       clientSet,
		Client:          mgr.GetClient(),
		ProductConfig:   schema,
		OperatorVersion: config.OperatorVersion,
	}

	if err = (controllers.NewHbaseClusterReconciler(
		mgr.GetClient(),
		ctrl.Log.WithName("controllers").WithName("HbaseCluster"),
		mgr.GetScheme(),
		context,
	)).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "HbaseCluster")
		return err
	}
	// +kubebuilder:scaffold:builder

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		return err
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		return err
	}

	setupLog.Info("starting manager", "version", config.OperatorVersion, "namespace", opts.WatchNamespace)
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		return err
	}

	return nil
}

// AddFlags adds flags to fs and binds them to options.
func (opts *OperatorOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&opts.MetricsAddr, "metrics-bind-address", opts.MetricsAddr, "The address the metric endpoint binds to.")
	fs.StringVar(&opts.ProbeAddr, "health-probe-bind-address", opts.ProbeAddr, "The address the probe endpoint binds to.")
	fs.BoolVar(&opts.EnableLeaderElection, "leader-elect", opts.EnableLeaderElection,
		"Enable leader election for controller manager. "+
			"Enabling this will ensure there is only one active controller manager.")
	fs.StringVar(&opts.WatchNamespace, "watch-namespace", opts.WatchNamespace, "The namespace to watch, all namespaces when empty.")
	fs.StringVar(&opts.ProductConfig, "product-config", opts.ProductConfig, "Path of a product config schema replacing the built in one.")

	goFlags := flag.NewFlagSet("zap", flag.ContinueOnError)
	opts.ZapOptions.BindFlags(goFlags)
	fs.AddGoFlagSet(goFlags)
}
