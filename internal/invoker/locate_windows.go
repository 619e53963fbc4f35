//go:build windows

package invoker

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// locateBinary resolves the model runtime executable: PATH first, then the
// default per-user Ollama install location.
func locateBinary(name string) (string, error) {
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		p := filepath.Join(localAppData, "Programs", "Ollama", name+".exe")
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	return "", fmt.Errorf("'%s' not found in PATH or default install directory", name)
}
