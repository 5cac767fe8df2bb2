// Copyright Inventory Capture Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inventorycapture/partscout/pkg/types"
)

var supplierCmd = &cobra.Command{
	Use:   "supplier",
	Short: "Supplier operations (register, show)",
}

var supplierRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new supplier company",
	Long: `Register creates a supplier account. Company name and contact email are
required; everything else is optional and omitted from the request when
blank. Column mappings (--map) tell the ingest pipeline which CSV columns
hold which listing fields, e.g. --map part_number=PART --map qty=STOCK.`,
	RunE: runSupplierRegister,
}

var supplierShowCmd = &cobra.Command{
	Use:   "show [supplier-id]",
	Short: "Show a supplier's profile",
	RunE:  runSupplierShow,
}

func init() {
	supplierRegisterCmd.Flags().String("company", "", "company name (required)")
	supplierRegisterCmd.Flags().String("email", "", "contact email (required)")
	supplierRegisterCmd.Flags().String("password", "", "account password")
	supplierRegisterCmd.Flags().String("phone", "", "phone number")
	supplierRegisterCmd.Flags().String("address", "", "street address")
	supplierRegisterCmd.Flags().String("country", "", "country")
	supplierRegisterCmd.Flags().String("description", "", "company description")
	supplierRegisterCmd.Flags().String("website", "", "website URL")
	supplierRegisterCmd.Flags().String("upload-email", "", "address pricing files will be sent from")
	supplierRegisterCmd.Flags().String("instock-file", "", "expected in-stock file name")
	supplierRegisterCmd.Flags().String("brokered-file", "", "expected brokered file name")
	supplierRegisterCmd.Flags().StringArray("map", nil, "CSV column mapping as field=column (repeatable)")

	supplierCmd.AddCommand(supplierRegisterCmd, supplierShowCmd)
	rootCmd.AddCommand(supplierCmd)
}

func runSupplierRegister(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	str := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}

	reg := types.SupplierRegistration{
		CompanyName:      str("company"),
		ContactEmail:     str("email"),
		Password:         str("password"),
		PhoneNumber:      str("phone"),
		Address:          str("address"),
		Country:          str("country"),
		Description:      str("description"),
		Website:          str("website"),
		EmailForUpload:   str("upload-email"),
		InStockFileName:  str("instock-file"),
		BrokeredFileName: str("brokered-file"),
	}

	mappings, _ := cmd.Flags().GetStringArray("map")
	for _, m := range mappings {
		field, column, ok := strings.Cut(m, "=")
		if !ok || field == "" || column == "" {
			return fmt.Errorf("invalid --map %q: use field=column", m)
		}
		if reg.FieldMappings == nil {
			reg.FieldMappings = make(map[string]string)
		}
		reg.FieldMappings[field] = column
	}

	client, _, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := client.CreateSupplier(context.Background(), reg); err != nil {
		return fmt.Errorf("registering supplier: %w", err)
	}
	fmt.Printf("Registered supplier %s\n", reg.CompanyName)
	return nil
}

func runSupplierShow(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one supplier id")
	}
	cfg := loadConfig(cmd)

	client, _, logger, err := clientFor(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	info, err := client.SupplierDetails(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("loading supplier %s: %w", args[0], err)
	}

	fields := []struct{ label, value string }{
		{"Company", info.CompanyName},
		{"Country", info.Country},
		{"Address", info.Address},
		{"Phone", info.PhoneNumber},
		{"Email", info.ContactEmail},
		{"Website", info.Website},
		{"About", info.Description},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Printf("%-8s  %s\n", f.label, f.value)
	}
	return nil
}
