package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSessionKeys(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)

	t.Run("generates and persists on first run, reloads after", func(t *testing.T) {
		t.Parallel()

		keyFile := filepath.Join(t.TempDir(), "session.pem")
		cfg := Config{Issuer: "rollcall-test", SigningKeyFile: keyFile}

		signer, _, _, err := initSessionKeys(cfg, logger)
		require.NoError(t, err)
		require.NotEmpty(t, signer.KID())

		pemKey, err := os.ReadFile(keyFile)
		require.NoError(t, err)
		require.Contains(t, string(pemKey), "PRIVATE KEY")

		info, err := os.Stat(keyFile)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0600), info.Mode().Perm())

		// A second startup must load the persisted key, not mint a new one.
		reloaded, _, _, err := initSessionKeys(cfg, logger)
		require.NoError(t, err)
		require.Equal(t, signer.KID(), reloaded.KID())
	})

	t.Run("ephemeral key when no file is configured", func(t *testing.T) {
		t.Parallel()

		cfg := Config{Issuer: "rollcall-test"}

		first, _, _, err := initSessionKeys(cfg, logger)
		require.NoError(t, err)
		require.NotEmpty(t, first.KID())

		second, _, _, err := initSessionKeys(cfg, logger)
		require.NoError(t, err)
		require.NotEqual(t, first.KID(), second.KID())
	})

	t.Run("corrupt key file fails loudly", func(t *testing.T) {
		t.Parallel()

		keyFile := filepath.Join(t.TempDir(), "session.pem")
		require.NoError(t, os.WriteFile(keyFile, []byte("not a pem key"), 0600))

		cfg := Config{Issuer: "rollcall-test", SigningKeyFile: keyFile}

		_, _, _, err := initSessionKeys(cfg, logger)
		require.Error(t, err)
	})
}
