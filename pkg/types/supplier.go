// Copyright Inventory Capture Inc., 2026. All rights reserved.

package types

// SupplierRegistration is the wire body for POST /supplier/create. Blank
// fields are omitted before send, matching server expectations.
type SupplierRegistration struct {
	CompanyName      string            `json:"companyName"`
	ContactEmail     string            `json:"contactEmail"`
	Password         string            `json:"password,omitempty"`
	PhoneNumber      string            `json:"phoneNumber,omitempty"`
	Address          string            `json:"address,omitempty"`
	Country          string            `json:"country,omitempty"`
	Description      string            `json:"description,omitempty"`
	Website          string            `json:"website,omitempty"`
	EmailForUpload   string            `json:"emailForUpload,omitempty"`
	InStockFileName  string            `json:"inStockFileName,omitempty"`
	BrokeredFileName string            `json:"brokeredFileName,omitempty"`
	FieldMappings    map[string]string `json:"fieldMappings,omitempty"`
}

// SupplierInfo is the profile returned by GET /supplier/details/{id}.
type SupplierInfo struct {
	CompanyName  string `json:"company_name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber"`
	Website      string `json:"website"`
	ContactEmail string `json:"contact_email"`
	Country      string `json:"country"`
}

// SupplierDetailsResponse is the nested envelope for supplier detail lookups.
type SupplierDetailsResponse struct {
	Supplier struct {
		SupplierInfo SupplierInfo `json:"supplier_info"`
	} `json:"supplier"`
}
