//go:build !windows

package invoker

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// locateBinary resolves the model runtime executable: PATH first, then the
// common install locations Ollama uses on Unix and macOS.
func locateBinary(name string) (string, error) {
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	candidates := []string{
		filepath.Join("/usr/local/bin", name),
		filepath.Join("/usr/bin", name),
		filepath.Join("/opt/ollama", name),
	}
	if home := os.Getenv("HOME"); home != "" {
		candidates = append(candidates,
			filepath.Join(home, ".local", "bin", name),
			filepath.Join(home, "bin", name),
		)
	}
	candidates = append(candidates, "/Applications/Ollama.app/Contents/Resources/"+name)

	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	return "", fmt.Errorf("'%s' not found in PATH or common install directories", name)
}
