package output

import (
	"fmt"
	"runtime"
	"strings"
	"unicode"
)

// moduleSuffix is the shared-library file suffix of the host platform.
// The target process loads platform-native modules, so the suffix is fixed
// at build time.
func moduleSuffix() string {
	switch runtime.GOOS {
	case "linux":
		return ".so"
	case "windows":
		return ".dll"
	default:
		panic("unsupported os: " + runtime.GOOS)
	}
}

// FormatModuleName strips the platform shared-library suffix from a module
// file name. Callers must only pass names known to carry the suffix; a
// missing suffix is a programming error.
func FormatModuleName(moduleName string) string {
	bare, ok := strings.CutSuffix(moduleName, moduleSuffix())
	if !ok {
		panic(fmt.Sprintf("module name %q does not end in %s", moduleName, moduleSuffix()))
	}
	return bare
}

// SanitizeName replaces every non-alphanumeric character with an underscore
// so arbitrary runtime names become valid source identifiers. Every source
// encoder applies this before writing an identifier.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
}
