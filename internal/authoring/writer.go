package authoring

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// WritePack stores the generated pack in the packs directory and returns
// the written path. The filename carries a fresh uuid so repeated
// authoring runs for the same slot never clobber each other.
func WritePack(dir string, pack *GeneratedPack) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create packs directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s-%s-%s.json", pack.Subject, pack.Topic, pack.Level, uuid.NewString()[:8])
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, pack.JSON, 0o644); err != nil {
		return "", fmt.Errorf("write pack: %w", err)
	}
	return path, nil
}
