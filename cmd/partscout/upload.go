// Copyright Inventory Capture Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inventorycapture/partscout/internal/pricing"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file.csv]",
	Short: "Upload a supplier pricing CSV",
	Long: `Upload sends a pricing CSV through the service's presigned-URL flow:
the CLI requests an upload slot for the given contact email, then PUTs the
file directly to storage. Optional column hints tell the ingest pipeline
which CSV columns hold the part number, manufacturer, and requested
quantity.`,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().String("email", "", "contact email for the upload (required)")
	uploadCmd.Flags().String("mpn-column", "", "CSV column holding the part number")
	uploadCmd.Flags().String("mfr-column", "", "CSV column holding the manufacturer")
	uploadCmd.Flags().String("qty-column", "", "CSV column holding the requested quantity")

	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one CSV file")
	}
	cfg := loadConfig(cmd)

	email, _ := cmd.Flags().GetString("email")
	mpnCol, _ := cmd.Flags().GetString("mpn-column")
	mfrCol, _ := cmd.Flags().GetString("mfr-column")
	qtyCol, _ := cmd.Flags().GetString("qty-column")

	client, _, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	req := pricing.Request{
		FilePath:               args[0],
		EmailAddress:           email,
		MPNField:               mpnCol,
		MfrField:               mfrCol,
		QuantityRequestedField: qtyCol,
	}
	if err := pricing.Upload(context.Background(), client, req); err != nil {
		return err
	}
	fmt.Printf("Uploaded %s\n", args[0])
	return nil
}
