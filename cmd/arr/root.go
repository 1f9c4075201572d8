package arr

import (
	"github.com/ValentinKolb/oarr/cmd/util"
	"github.com/ValentinKolb/oarr/lib/store"
	"github.com/ValentinKolb/oarr/rpc/client"
	"github.com/spf13/cobra"
)

var (
	rpcStore store.IStore

	// ArrayCommands represents the arr command group
	ArrayCommands = &cobra.Command{
		Use:               "arr",
		Short:             "Perform overlay array operations on a remote shard",
		PersistentPreRunE: setupArrayClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add common RPC flags to the arr command
	util.SetupRPCClientFlags(ArrayCommands)

	// Set default shard ID
	ArrayCommands.PersistentFlags().Uint64("shard", 100, util.WrapString("ID of the shard to connect to"))

	// Add subcommands
	ArrayCommands.AddCommand(setCmd)
	ArrayCommands.AddCommand(setAllCmd)
	ArrayCommands.AddCommand(getCmd)
	ArrayCommands.AddCommand(infoCmd)
	ArrayCommands.AddCommand(perfTestCmd)
}

// setupArrayClient initializes the RPC store client
func setupArrayClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Get client configuration components
	config := util.GetClientConfig()
	shardId := util.GetShardID()

	// Get serializer and transport
	s, err := util.GetSerializer()
	if err != nil {
		return err
	}

	t, err := util.GetTransport()
	if err != nil {
		return err
	}

	// Create the array client
	rpcStore, err = client.NewRPCStore(
		shardId,
		*config,
		t,
		s,
	)

	return err
}
