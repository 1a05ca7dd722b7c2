package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveRoot returns the project root for a tool installed two levels
// below it, e.g. <root>/bin/validate-icons. An explicit override wins.
func ResolveRoot(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}

	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}

	return RootFromTool(execPath), nil
}

// RootFromTool returns the directory two levels above toolPath.
func RootFromTool(toolPath string) string {
	return filepath.Dir(filepath.Dir(toolPath))
}
