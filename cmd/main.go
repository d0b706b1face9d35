package main

import (
	"fmt"
	"os"

	"github.com/opencurve/hbase-operator/cmd/hbase"
)

func main() {
	addCommands()
	if err := hbase.RootCmd.Execute(); err != nil {
		fmt.Printf("hbase-operator error: %+v\n", err)
		os.Exit(1)
	}
}

func addCommands() {
	hbase.RootCmd.AddCommand(
		hbase.OperatorCmd,
		hbase.CRDCmd,
	)
}
