package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"ely.by/mojang"
)

var statsCmd = &cobra.Command{
	Use:   "stats [metric...]",
	Short: "Print sales statistics for the requested metrics",
	Long: "Print sales statistics for the requested metric keys. " +
		"When no keys are provided, all known metrics are requested.",
	Run: func(cmd *cobra.Command, args []string) {
		container := shouldGetContainer()

		var api *mojang.Client
		err := container.Resolve(&api)
		if err != nil {
			log.Fatal(err)
		}

		keys := mojang.AllMetrics()
		if len(args) > 0 {
			keys = make([]mojang.MetricKey, len(args))
			for i, arg := range args {
				keys[i] = mojang.MetricKey(arg)
			}
		}

		stats, err := api.SalesStats(cmd.Context(), keys)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("total:         %d\n", stats.Total)
		fmt.Printf("last 24h:      %d\n", stats.Last24h)
		fmt.Printf("sale velocity: %g/s\n", stats.SaleVelocityPerSeconds)
	},
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
