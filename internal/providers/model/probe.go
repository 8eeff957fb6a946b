package model

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	apierrors "github.com/pinglanyi/A2UI/internal/shared/errors"
)

// probeEndpoint issues an authenticated GET against a cheap listing
// endpoint to confirm the provider is reachable and the credential is
// accepted. Runs only at startup when A2UI_STARTUP_PROBE is enabled.
func probeEndpoint(ctx context.Context, provider, url string, header http.Header) error {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.RetryWaitMin = 500 * time.Millisecond
	retry.RetryWaitMax = 5 * time.Second
	retry.Logger = nil

	req, err := retryablehttp.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("probe %s: %w", provider, err)
	}
	req = req.WithContext(ctx)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := retry.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apierrors.NewProviderError(provider, resp.StatusCode, "availability probe rejected", nil)
	}
	return nil
}
