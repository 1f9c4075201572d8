package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/oarr/cmd/arr"
	"github.com/ValentinKolb/oarr/cmd/demo"
	"github.com/ValentinKolb/oarr/cmd/serve"
	"github.com/ValentinKolb/oarr/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "oarr",
		Short: "overlay arrays with constant time reset",
		Long: fmt.Sprintf(`oarr (v%s)

Fixed length byte arrays whose elements can all be overwritten in
constant time, usable as a Go library or served over the network.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of oarr",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "oarr v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(arr.ArrayCommands)
	RootCmd.AddCommand(demo.DemoCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "binary", util.WrapString("serializer to use (json, gob, binary, protowire)"))
	key = "transport"
	RootCmd.PersistentFlags().String(key, "tcp", util.WrapString("transport to use (http, tcp, unix)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
