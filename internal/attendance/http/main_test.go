package http

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andeanops/rollcall/pkg/cryptox"
)

func TestMain(m *testing.M) {
	// Set up a temporary pepper file for password hashing in tests
	pepperPath := filepath.Join(os.TempDir(), "rollcall-http-test-pepper")
	cryptox.SetPepperPath(pepperPath)
	os.Remove(pepperPath)

	code := m.Run()

	os.Remove(pepperPath)
	os.Exit(code)
}
