// Package platform maps an operating system to the file names and labels
// distman uses for it. Everything except Current is a pure function of the
// Platform value so callers can inject one in tests.
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform is an abstract operating system family.
type Platform int

const (
	Unknown Platform = iota
	Windows
	Mac
	Linux
	Solaris
)

func (p Platform) String() string {
	switch p {
	case Windows:
		return "windows"
	case Mac:
		return "mac"
	case Linux:
		return "linux"
	case Solaris:
		return "solaris"
	default:
		return "unknown"
	}
}

// FromOS classifies an OS name such as a GOOS value or "Windows 10".
func FromOS(name string) Platform {
	n := strings.ToLower(name)
	switch {
	// "darwin" contains "win", so it has to be matched first.
	case strings.Contains(n, "darwin"), strings.Contains(n, "mac"):
		return Mac
	case strings.Contains(n, "win"):
		return Windows
	case strings.Contains(n, "sunos"), strings.Contains(n, "solaris"), strings.Contains(n, "illumos"):
		return Solaris
	case strings.Contains(n, "nix"), strings.Contains(n, "nux"), strings.Contains(n, "aix"), strings.Contains(n, "bsd"):
		return Linux
	default:
		return Unknown
	}
}

// Current returns the platform of the running process.
func Current() Platform {
	return FromOS(runtime.GOOS)
}

func (p Platform) pick(windows, other string) string {
	if p == Windows {
		return windows
	}
	return other
}

// ExecutableName is the launcher file name inside a distribution's bin directory.
func ExecutableName(p Platform) string {
	return p.pick("distman.bat", "distman")
}

// InstallScriptName is the name of the tool self-install script.
func InstallScriptName(p Platform) string {
	return p.pick("install.bat", "install")
}

// DebugAdapterName is the debug adapter launcher script name.
func DebugAdapterName(p Platform) string {
	return p.pick("debug-adapter-launcher.bat", "debug-adapter-launcher.sh")
}

// LangServerLauncherName is the language server launcher script name.
func LangServerLauncherName(p Platform) string {
	return p.pick("language-server-launcher.bat", "language-server-launcher.sh")
}

// Label is the short platform tag used in user agents, e.g. "linux-64".
func Label(p Platform) string {
	switch p {
	case Windows:
		return "win-64"
	case Linux, Solaris:
		return "linux-64"
	case Mac:
		return "macos-64"
	default:
		return "none"
	}
}

// UserAgent formats the identification string sent alongside distribution
// metadata: "<type>/<version> (<label>) Updater/<toolVersion>".
func UserAgent(distType, distVersion, toolVersion string, p Platform) string {
	return fmt.Sprintf("%s/%s (%s) Updater/%s", distType, distVersion, Label(p), toolVersion)
}
