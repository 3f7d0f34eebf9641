package zoomauth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The library itself never persists tokens; storage is the caller's
// responsibility. The file store below exists for the zoomctl CLI so that
// `authorize --save` and later commands can share a token pair.

const tokenFileName = "zoom.token"

// TokenFilePath returns the location of the CLI token file inside the
// user cache directory.
func TokenFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "zoomctl", tokenFileName), nil
}

// HasTokens checks whether a saved token file exists.
func HasTokens() bool {
	path, err := TokenFilePath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// SaveTokens writes the access and refresh token to the CLI token file,
// replacing any previous pair. Call this after every refresh: the old
// refresh token is already invalid.
func SaveTokens(set *TokenSet) error {
	path, err := TokenFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data := set.AccessToken + " " + set.RefreshToken
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// LoadTokens reads the token pair saved by SaveTokens. Expiry is not
// tracked; an expired access token simply fails with a 401 and the user
// runs `zoomctl refresh`.
func LoadTokens() (*TokenSet, error) {
	path, err := TokenFilePath()
	if err != nil {
		return nil, err
	}

	slurp, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no saved Zoom tokens found: %w", err)
	}

	fields := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(fields) != 2 {
		return nil, fmt.Errorf("invalid token file format in %s: expected two fields, got %d", path, len(fields))
	}

	return &TokenSet{
		AccessToken:  fields[0],
		RefreshToken: fields[1],
		TokenType:    "bearer",
	}, nil
}
