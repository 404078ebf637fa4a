package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/user/brandforge/internal/suggest"
	"github.com/user/brandforge/internal/types"
)

var (
	suggestType string
	suggestTone string
)

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.Flags().StringVar(&suggestType, "type", "", "asset type for filler selection")
	suggestCmd.Flags().StringVar(&suggestTone, "tone", "", "tone (neutral, confident, friendly)")
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <image-ref>",
	Short: "Print caption suggestions for an image reference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tone, err := types.ParseTone(suggestTone)
		if err != nil {
			return err
		}

		suggestions := suggest.Suggestions(args[0], types.AssetType(suggestType), tone)
		if len(suggestions) == 0 {
			fmt.Println("No suggestions (name is empty or generic).")
			return nil
		}
		for _, s := range suggestions {
			fmt.Println(s)
		}
		return nil
	},
}
