package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/andeanops/rollcall/pkg/jwtx"
)

// initSessionKeys loads the configured Ed25519 signing key. When the
// configured file does not exist yet the key is generated and persisted
// there, so sessions survive restarts. With no file configured the key is
// ephemeral: every restart invalidates outstanding sessions, which is
// acceptable for dev and for the short TTLs involved.
func initSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.EdDSASigner, *jwtx.KeySet, jwtx.Verifier, error) {
	var (
		signer *jwtx.EdDSASigner
		err    error
	)

	switch {
	case cfg.SigningKeyFile == "":
		signer, err = jwtx.GenerateSignerEdDSA("")
		if err != nil {
			return nil, nil, nil, fmt.Errorf("generate signing key: %w", err)
		}
		logger.Info("ephemeral session signing key generated", "kid", signer.KID())

	default:
		pemKey, readErr := os.ReadFile(cfg.SigningKeyFile)
		switch {
		case readErr == nil:
			signer, err = jwtx.NewSignerEdDSA("", pemKey)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("load signing key: %w", err)
			}
			logger.Info("session signing key loaded", "kid", signer.KID(), "file", cfg.SigningKeyFile)

		case os.IsNotExist(readErr):
			// First run: generate and persist so later restarts reuse it.
			signer, err = jwtx.GenerateSignerEdDSA("")
			if err != nil {
				return nil, nil, nil, fmt.Errorf("generate signing key: %w", err)
			}
			pemKey, err = jwtx.MarshalPKCS8PEM(signer.PrivateKey())
			if err != nil {
				return nil, nil, nil, fmt.Errorf("encode signing key: %w", err)
			}
			if err := os.WriteFile(cfg.SigningKeyFile, pemKey, 0600); err != nil {
				return nil, nil, nil, fmt.Errorf("persist signing key: %w", err)
			}
			logger.Info("session signing key generated and persisted",
				"kid", signer.KID(), "file", cfg.SigningKeyFile)

		default:
			return nil, nil, nil, fmt.Errorf("read signing key: %w", readErr)
		}
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return nil, nil, nil, fmt.Errorf("register signing key: %w", err)
	}

	return signer, keys, jwtx.NewVerifierEdDSA(keys, cfg.Issuer), nil
}
