// Copyright Inventory Capture Inc., 2026. All rights reserved.

// Package pricing drives the two-step pricing-file upload: request a
// presigned URL from the backend, then PUT the CSV directly to storage.
package pricing

import (
	"context"
	"fmt"
	"io"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/inventorycapture/partscout/pkg/types"
)

// Uploader is the subset of the API client the flow needs.
type Uploader interface {
	PresignPricingUpload(ctx context.Context, req types.PricingPresignRequest) (string, error)
	UploadToPresigned(ctx context.Context, url, contentType string, body io.Reader) error
}

// Request describes one upload. The mapping hints are optional and omitted
// from the presign call when blank.
type Request struct {
	FilePath               string
	EmailAddress           string
	MPNField               string
	MfrField               string
	QuantityRequestedField string
}

// Validate checks the request before any network call.
func (r Request) Validate() error {
	if r.EmailAddress == "" {
		return fmt.Errorf("email address is required")
	}
	if _, err := mail.ParseAddress(r.EmailAddress); err != nil {
		return fmt.Errorf("invalid email address %q", r.EmailAddress)
	}
	if r.FilePath == "" {
		return fmt.Errorf("a CSV file is required")
	}
	if !strings.EqualFold(filepath.Ext(r.FilePath), ".csv") {
		return fmt.Errorf("%s: only CSV files are accepted", r.FilePath)
	}
	return nil
}

// Upload validates the request, obtains a presigned URL, and uploads the
// file with a text/csv content type.
func Upload(ctx context.Context, up Uploader, req Request) error {
	if err := req.Validate(); err != nil {
		return err
	}

	f, err := os.Open(req.FilePath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", req.FilePath, err)
	}
	defer f.Close()

	url, err := up.PresignPricingUpload(ctx, types.PricingPresignRequest{
		EmailAddress:           req.EmailAddress,
		MPNField:               req.MPNField,
		MfrField:               req.MfrField,
		QuantityRequestedField: req.QuantityRequestedField,
	})
	if err != nil {
		return fmt.Errorf("requesting upload URL: %w", err)
	}

	if err := up.UploadToPresigned(ctx, url, "text/csv", f); err != nil {
		return fmt.Errorf("uploading %s: %w", filepath.Base(req.FilePath), err)
	}
	return nil
}
