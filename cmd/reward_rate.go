package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// command for updating the staking reward rate as an admin
var rewardRateCmd = &cobra.Command{
	Use:   "reward-rate <actor> <rate>",
	Short: "set the staking reward rate",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		database := provideDatabase()
		defer database.Close()

		rate, err := decimal.NewFromString(args[1])
		if err != nil {
			cmd.PrintErrln("invalid rate:", err)
			return
		}

		previous, err := provideStakingService(database).SetRewardRate(cmd.Context(), args[0], rate)
		if err != nil {
			cmd.PrintErrln("set reward rate error:", err)
			return
		}

		fmt.Printf("reward rate %s -> %s\n", previous, rate)
	},
}

func init() {
	rootCmd.AddCommand(rewardRateCmd)
}
