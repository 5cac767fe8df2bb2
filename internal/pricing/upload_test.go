// Copyright Inventory Capture Inc., 2026. All rights reserved.

package pricing

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorycapture/partscout/pkg/types"
)

type fakeUploader struct {
	presignReq  types.PricingPresignRequest
	presignURL  string
	presignErr  error
	uploadedURL string
	uploadedCT  string
	uploadedLen int
	uploadErr   error
}

func (f *fakeUploader) PresignPricingUpload(ctx context.Context, req types.PricingPresignRequest) (string, error) {
	f.presignReq = req
	return f.presignURL, f.presignErr
}

func (f *fakeUploader) UploadToPresigned(ctx context.Context, url, contentType string, body io.Reader) error {
	f.uploadedURL = url
	f.uploadedCT = contentType
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.uploadedLen = len(data)
	return f.uploadErr
}

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr bool
	}{
		{"valid", Request{FilePath: "prices.csv", EmailAddress: "buyer@example.com"}, false},
		{"uppercase extension", Request{FilePath: "PRICES.CSV", EmailAddress: "buyer@example.com"}, false},
		{"missing email", Request{FilePath: "prices.csv"}, true},
		{"malformed email", Request{FilePath: "prices.csv", EmailAddress: "not-an-email"}, true},
		{"missing file", Request{EmailAddress: "buyer@example.com"}, true},
		{"wrong extension", Request{FilePath: "prices.xlsx", EmailAddress: "buyer@example.com"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUploadHappyPath(t *testing.T) {
	path := writeCSV(t, "prices.csv", "mpn,price\nABC123,1.23\n")
	up := &fakeUploader{presignURL: "https://bucket.example.com/upload?sig=x"}

	err := Upload(context.Background(), up, Request{
		FilePath:     path,
		EmailAddress: "buyer@example.com",
		MPNField:     "mpn",
	})
	require.NoError(t, err)

	assert.Equal(t, "buyer@example.com", up.presignReq.EmailAddress)
	assert.Equal(t, "mpn", up.presignReq.MPNField)
	assert.Equal(t, "https://bucket.example.com/upload?sig=x", up.uploadedURL)
	assert.Equal(t, "text/csv", up.uploadedCT)
	assert.Equal(t, len("mpn,price\nABC123,1.23\n"), up.uploadedLen)
}

func TestUploadRejectsBeforeNetwork(t *testing.T) {
	up := &fakeUploader{presignURL: "https://bucket.example.com/upload"}

	err := Upload(context.Background(), up, Request{
		FilePath:     "prices.txt",
		EmailAddress: "buyer@example.com",
	})
	require.Error(t, err)
	assert.Empty(t, up.presignReq.EmailAddress, "presign must not be called for invalid input")
}

func TestUploadPresignFailure(t *testing.T) {
	path := writeCSV(t, "prices.csv", "mpn\n")
	up := &fakeUploader{presignErr: assert.AnError}

	err := Upload(context.Background(), up, Request{FilePath: path, EmailAddress: "buyer@example.com"})
	require.Error(t, err)
	assert.Empty(t, up.uploadedURL, "upload must not run when presign fails")
}
