package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-tracker/internal/cli/render"
	"github.com/trebuchet-org/treb-tracker/internal/usecase"
)

// NewTrackCmd creates the track command
func NewTrackCmd() *cobra.Command {
	var (
		contract contractFlags
		block    string
		address  string
	)

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Record a contract deployment",
		Long: `Record that a contract was deployed at an address on the chain
identified by its genesis block hash. Tracking the same contract again
replaces the recorded address.

The tracking database is created if it does not exist yet.`,
		Example: `  treb-tracker track \
    --block 0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3 \
    --name Token --bytecode 0x6080... --arg 1000 \
    --address 0x1111111111111111111111111111111111111111`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			blockHash, err := parseBlockHash(block)
			if err != nil {
				return err
			}
			addr, err := parseAddress(address)
			if err != nil {
				return err
			}

			result, err := app.TrackDeployment.Run(cmd.Context(), usecase.TrackDeploymentParams{
				BlockHash:  blockHash,
				Contract:   contract.identity(),
				Address:    addr,
				AutoCreate: true,
			})
			if err != nil {
				return err
			}

			return render.NewTrackingRenderer(cmd.OutOrStdout()).RenderTrack(result)
		},
	}

	contract.register(cmd.Flags())
	cmd.Flags().StringVar(&block, "block", "", "Genesis block hash of the chain")
	cmd.Flags().StringVar(&address, "address", "", "Deployed contract address")
	_ = cmd.MarkFlagRequired("block")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}
