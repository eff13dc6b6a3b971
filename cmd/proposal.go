package cmd

import (
	"fmt"
	"time"

	"estable/core"
	"estable/store/governance"

	"github.com/spf13/cobra"
)

// command for opening a governance proposal
var proposalCmd = &cobra.Command{
	Use:   "proposal <title>",
	Short: "open a governance proposal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database := provideDatabase()
		defer database.Close()

		days, _ := cmd.Flags().GetInt("days")
		now := time.Now()

		proposal := &core.Proposal{
			Title:     args[0],
			Status:    core.ProposalStatusOpen,
			Deadline:  now.AddDate(0, 0, days),
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := governance.NewProposal(database).Create(cmd.Context(), proposal); err != nil {
			cmd.PrintErrln("create proposal error:", err)
			return
		}

		fmt.Printf("proposal %d open until %s\n", proposal.ID, proposal.Deadline.Format(time.RFC3339))
	},
}

func init() {
	rootCmd.AddCommand(proposalCmd)
	proposalCmd.Flags().IntP("days", "d", 7, "voting period in days")
}
