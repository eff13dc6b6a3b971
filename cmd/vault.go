package cmd

import (
	"fmt"
	"time"

	"estable/core"
	"estable/store/vault"

	"github.com/spf13/cobra"
)

// command for registering a yield vault
var vaultCmd = &cobra.Command{
	Use:   "vault <name>",
	Short: "register a yield vault",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		database := provideDatabase()
		defer database.Close()

		v := &core.Vault{
			Name:      args[0],
			CreatedAt: time.Now(),
		}

		if err := vault.New(database).Save(cmd.Context(), v); err != nil {
			cmd.PrintErrln("create vault error:", err)
			return
		}

		fmt.Printf("vault %d (%s)\n", v.ID, v.Name)
	},
}

func init() {
	rootCmd.AddCommand(vaultCmd)
}
