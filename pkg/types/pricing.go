// Copyright Inventory Capture Inc., 2026. All rights reserved.

package types

// PricingPresignRequest asks the backend for a time-limited upload URL.
// The optional column-mapping hints are omitted when blank.
type PricingPresignRequest struct {
	EmailAddress           string `json:"email_address"`
	MPNField               string `json:"mpn_field,omitempty"`
	MfrField               string `json:"mfr_field,omitempty"`
	QuantityRequestedField string `json:"quantity_requested_field,omitempty"`
}

// PricingPresignResponse carries the issued upload URL.
type PricingPresignResponse struct {
	PresignedURL string `json:"presigned_url"`
}
