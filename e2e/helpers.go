//go:build e2e

// Package e2e contains integration tests that run against the live service.
// They are excluded from normal test runs by the e2e build tag and skip
// themselves unless BOX_E2E_ACCESS_TOKEN is set:
//
//	BOX_E2E_ACCESS_TOKEN=... go test -tags e2e ./e2e/
package e2e

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/boxtools/box-client/internal/logger"
	"github.com/boxtools/box-client/pkg/box"
)

const testFolderPrefix = "box-client-e2e-"

// newE2EClient builds a client from the environment, skipping the test when
// no credentials are configured.
func newE2EClient(t *testing.T) *box.Client {
	t.Helper()

	accessToken := os.Getenv("BOX_E2E_ACCESS_TOKEN")
	if accessToken == "" {
		t.Skip("BOX_E2E_ACCESS_TOKEN not set, skipping live test")
	}

	token := &box.Token{AccessToken: accessToken}
	return box.NewClient(context.Background(), token, nil, logger.NewDefaultLogger(os.Getenv("BOX_E2E_DEBUG") != ""))
}

// newTestFolder creates a uniquely named folder under the root and registers
// its recursive removal as cleanup.
func newTestFolder(t *testing.T, client *box.Client) *box.Folder {
	t.Helper()

	name := fmt.Sprintf("%s%d", testFolderPrefix, time.Now().UnixNano())
	folder, err := client.CreateFolder(context.Background(), "0", name)
	if err != nil {
		t.Fatalf("creating test folder: %v", err)
	}
	t.Cleanup(func() {
		if err := client.DeleteFolder(context.Background(), folder.ID, true, ""); err != nil {
			t.Logf("cleanup of folder %s failed: %v", folder.ID, err)
		}
	})
	return folder
}
