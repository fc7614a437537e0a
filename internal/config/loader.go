package config

import (
	"os"
	"path/filepath"
)

// defaultConfigFiles are probed in order inside the base directory. A ".local"
// file wins over its shared counterpart.
var defaultConfigFiles = []string{
	"config.json" + LocalConfigSuffix,
	"config.json",
	"config.yaml" + LocalConfigSuffix,
	"config.yaml",
}

// GetConfigPath determines the configuration file path.
// Priority:
// 1. PAGEWATCH_CONFIG_PATH environment variable
// 2. config.json.local in baseDir
// 3. config.json in baseDir
// 4. config.yaml.local in baseDir
// 5. config.yaml in baseDir
// Returns "" when nothing is found.
func GetConfigPath(baseDir string) string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
	}

	for _, file := range defaultConfigFiles {
		path := filepath.Join(baseDir, file)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// GetBaseDir returns the directory all relative state lives in: the
// PAGEWATCH_BASE_DIR environment variable when set, otherwise the directory
// of the running executable, otherwise the working directory.
func GetBaseDir() (string, error) {
	if envDir := os.Getenv(BaseDirEnvVar); envDir != "" {
		return filepath.Abs(envDir)
	}

	exePath, err := os.Executable()
	if err == nil {
		if resolved, errEval := filepath.EvalSymlinks(exePath); errEval == nil {
			exePath = resolved
		}
		return filepath.Dir(exePath), nil
	}

	return os.Getwd()
}

// ResolvePath anchors a relative path at baseDir. Empty paths resolve to baseDir.
func ResolvePath(baseDir, path string) string {
	if path == "" {
		return baseDir
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// Helper function to check if a file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
