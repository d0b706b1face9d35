package hbase

import (
	"github.com/spf13/cobra"
)

// RootCmd is the hbase-operator command, its subcommands are added by main.
var RootCmd = &cobra.Command{
	Use:   "hbase-operator",
	Short: "Operator for Apache HBase clusters on Kubernetes",
	Long: `hbase-operator manages HbaseCluster resources: it turns each cluster into the
StatefulSets, Services and ConfigMaps of its masters, region servers and REST servers.`,
	SilenceUsage: true,
}
