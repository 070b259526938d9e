package attendance_test

import (
	"os"
	"testing"

	"github.com/andeanops/rollcall/pkg/rollsdk"

	"github.com/stretchr/testify/require"
)

const (
	adminUsername  = "admin"
	adminPassword  = "changeme-e2e"
	bootstrapToken = "e2e-bootstrap-token"
)

// setupClient points the SDK at a running service. The target instance
// must be started with BOOTSTRAP_TOKEN=e2e-bootstrap-token and a fresh
// database; the suite is skipped unless ROLLCALL_E2E_URL is set.
func setupClient(t *testing.T) *rollsdk.Client {
	t.Helper()

	baseURL := os.Getenv("ROLLCALL_E2E_URL")
	if baseURL == "" {
		t.Skip("ROLLCALL_E2E_URL not set; skipping end-to-end suite")
	}
	return rollsdk.NewClient(baseURL)
}

// bootstrapService creates the first administrator, tolerating a suite
// re-run against an already-bootstrapped instance.
func bootstrapService(t *testing.T, client *rollsdk.Client) {
	t.Helper()

	err := client.Bootstrap(t.Context(), rollsdk.BootstrapRequest{
		Token:    bootstrapToken,
		Username: adminUsername,
		Password: adminPassword,
	})
	if err != nil {
		var apiErr *rollsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 409, apiErr.StatusCode, "bootstrap failed: %v", err)
	}
}
