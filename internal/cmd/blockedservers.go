package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"ely.by/mojang"
)

var blockedServersCmd = &cobra.Command{
	Use:   "blocked-servers <address>",
	Short: "Check whether a server address is blocked by Mojang",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		container := shouldGetContainer()

		var api *mojang.Client
		err := container.Resolve(&api)
		if err != nil {
			log.Fatal(err)
		}

		blocked, err := api.BlockedServers(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}

		pattern, found := blocked.FindBlockedPattern(args[0])
		if !found {
			fmt.Printf("%s is not blocked\n", args[0])
			return
		}

		fmt.Printf("%s is blocked by the pattern %s\n", args[0], pattern)
	},
}

func init() {
	RootCmd.AddCommand(blockedServersCmd)
}
