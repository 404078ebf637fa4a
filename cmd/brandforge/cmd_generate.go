package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/user/brandforge/internal/engine"
	"github.com/user/brandforge/internal/types"
)

var (
	generateType    string
	generateMessage string
	generateTone    string
	generateImage   string
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateType, "type", "", "asset type (instagram_post, instagram_story, linkedin_banner, logo_variation)")
	generateCmd.Flags().StringVar(&generateMessage, "message", "", "caption message")
	generateCmd.Flags().StringVar(&generateTone, "tone", "", "tone (neutral, confident, friendly)")
	generateCmd.Flags().StringVar(&generateImage, "image", "", "image reference (optional)")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run one generation from the given draft fields and print the asset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		setupLogging(cfg)

		tone, err := types.ParseTone(generateTone)
		if err != nil {
			return err
		}

		eng := engine.New(cfg)
		if generateType != "" {
			assetType, err := types.ParseAssetType(generateType)
			if err != nil {
				return err
			}
			eng.Draft.SetAssetType(assetType)
		}
		eng.Draft.SetMessage(generateMessage)
		eng.Draft.SetTone(tone)
		eng.Draft.SetImageURI(generateImage)

		assetID, err := eng.GenerateFromDraft(cmd.Context())
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		asset, ok := eng.Library.Get(assetID)
		if !ok {
			return fmt.Errorf("asset %s not in library", assetID)
		}

		fmt.Printf("Asset %s (%s)\n\n", asset.ID, asset.AssetType)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PREVIEW\tCONTEXT")
		for i, p := range asset.Previews {
			fmt.Fprintf(w, "%d\t%s\n", i, p.Context)
		}
		fmt.Fprintln(w, "\nVARIATION\tMESSAGE")
		for i, v := range asset.Variations {
			fmt.Fprintf(w, "%d\t%s\n", i, v.Message)
		}
		return w.Flush()
	},
}
