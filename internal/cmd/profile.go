package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"ely.by/mojang"
)

var profileCmd = &cobra.Command{
	Use:   "profile <username|uuid>",
	Short: "Resolve an account and print its profile with textures",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		container := shouldGetContainer()

		var api *mojang.Client
		err := container.Resolve(&api)
		if err != nil {
			log.Fatal(err)
		}

		ctx := cmd.Context()
		arg := args[0]

		var profile *mojang.Profile
		// Everything longer than a maximal username is treated as an uuid.
		if len(arg) > 16 {
			profile, err = api.UuidToProfile(ctx, strings.ReplaceAll(arg, "-", ""), true)
		} else {
			var provider *mojang.ProfileProvider
			if err = container.Resolve(&provider); err != nil {
				log.Fatal(err)
			}

			profile, err = provider.GetForUsername(ctx, arg)
		}

		if err != nil {
			log.Fatal(err)
		}

		textures, err := profile.Textures()
		if err != nil {
			log.Fatal(err)
		}

		model := "steve"
		if profile.SlimModel() {
			model = "alex"
		}

		capeUrl := ""
		if textures.Cape != nil {
			capeUrl = textures.Cape.Url
		}

		fmt.Printf("uuid:       %s\n", profile.Id)
		fmt.Printf("name:       %s\n", profile.Name)
		fmt.Printf("skin model: %s\n", model)
		fmt.Printf("skin url:   %s\n", textures.Skin.Url)
		fmt.Printf("cape url:   %s\n", capeUrl)
	},
}

func init() {
	RootCmd.AddCommand(profileCmd)
}
