package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePackageName validates a package name for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, backslash)
//   - Maximum length of 256 characters
//
// Both "group:artifact" coordinates and simple names pass.
func ValidatePackageName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..", // Parent directory
		"//", // Double slash
		"\\", // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateMavenCoordinate validates a "groupId:artifactId" coordinate.
func ValidateMavenCoordinate(coord string) error {
	if err := ValidatePackageName(coord); err != nil {
		return err
	}
	group, artifact, ok := strings.Cut(coord, ":")
	if !ok || group == "" || artifact == "" {
		return New(ErrCodeInvalidPackage, "invalid maven coordinate %q (expected groupId:artifactId)", coord)
	}
	return nil
}

// versionRegex matches the characters allowed in a package version.
var versionRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidateVersion validates a package version string.
// An empty version is accepted and means "not specified".
func ValidateVersion(version string) error {
	if version == "" {
		return nil
	}
	if !versionRegex.MatchString(version) {
		return New(ErrCodeInvalidVersion, "invalid version format: %q", version)
	}
	return nil
}

// ValidateMaxDepth validates an explicitly set depth limit. The root is
// level 1, so a limit below 1 would expand nothing.
func ValidateMaxDepth(depth int) error {
	if depth < 1 {
		return New(ErrCodeInvalidInput, "max depth must be a positive integer, got %d", depth)
	}
	return nil
}

// forbiddenFilenameChars may not appear in output filenames.
const forbiddenFilenameChars = `<>:"|?*\/`

// ValidateOutputFilename validates a plain output filename.
// Paths are rejected; the file is always written to the working directory.
func ValidateOutputFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "output filename cannot be empty")
	}
	if i := strings.IndexAny(name, forbiddenFilenameChars); i >= 0 {
		return New(ErrCodeInvalidInput, "output filename contains forbidden character %q", name[i])
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output filename contains invalid control characters")
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
