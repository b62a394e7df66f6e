package metadata

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
)

// maxMetadataSize bounds remote metadata downloads.
const maxMetadataSize = 16 << 20

const blobHostSuffix = ".blob.core.windows.net"

// Load builds a Store from source:
//
//   - "" loads the embedded table
//   - https://<account>.blob.core.windows.net/<container>/<blob> downloads from
//     Azure Blob Storage. URLs carrying a SAS query are fetched without
//     credentials; otherwise DefaultAzureCredential is used.
//   - anything else is treated as a local file path
func Load(ctx context.Context, source string) (*Store, error) {
	if source == "" {
		return Default()
	}

	u, err := url.Parse(source)
	if err == nil && len(u.Scheme) > 1 {
		if !isBlobURL(u) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, redact(u))
		}
		data, err := downloadBlob(ctx, source, u)
		if err != nil {
			return nil, err
		}
		return parse(data, formatFor(u.Path), redact(u))
	}

	return LoadFile(source)
}

func isBlobURL(u *url.URL) bool {
	return u.Scheme == "https" && strings.HasSuffix(strings.ToLower(u.Hostname()), blobHostSuffix) &&
		path.Ext(u.Path) != ""
}

// redact drops the query string so SAS tokens never reach logs or errors.
func redact(u *url.URL) string {
	c := *u
	c.RawQuery = ""
	c.User = nil
	return c.String()
}

func downloadBlob(ctx context.Context, rawURL string, u *url.URL) ([]byte, error) {
	var (
		client *blob.Client
		err    error
	)
	if u.RawQuery != "" {
		client, err = blob.NewClientWithNoCredential(rawURL, nil)
	} else {
		var cred azcore.TokenCredential
		cred, err = azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("creating Azure credential: %w", err)
		}
		client, err = blob.NewClient(rawURL, cred, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("creating blob client for %s: %w", redact(u), err)
	}

	resp, err := client.DownloadStream(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("downloading metadata %s: %w", redact(u), err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMetadataSize))
	if err != nil {
		return nil, fmt.Errorf("reading metadata %s: %w", redact(u), err)
	}
	return data, nil
}
