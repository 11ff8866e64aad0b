package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// File names
const (
	AppDirName      = "homescreen"
	ConfigFileName  = "config.toml"
	SessionFileName = "session.yaml"

	// AndroidConfigDir is used when the user config dir cannot be resolved on Android
	AndroidConfigDir = "/sdcard/Android/data/com.ytget.homescreen/files"
)

// IsAndroid reports whether the process runs as an Android app
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// ConfigDir returns the directory holding config.toml and the session deck.
// XDG_CONFIG_HOME is honoured through os.UserConfigDir.
func ConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	if IsAndroid() {
		return AndroidConfigDir
	}
	return filepath.Join(os.TempDir(), AppDirName)
}

// DefaultConfigPath returns the default config.toml location
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// DefaultSessionPath returns the default session deck location
func DefaultSessionPath() string {
	return filepath.Join(ConfigDir(), SessionFileName)
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
