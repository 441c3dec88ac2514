package config

// GetPlatformDefaultConfig gets the defaults for the platform. Snapd only runs
// on Linux so we don't bother with per-platform files here.
func GetPlatformDefaultConfig() OSConfig {
	return OSConfig{
		OpenCommand:     `sh -c "xdg-open {{filename}} >/dev/null"`,
		OpenLinkCommand: `sh -c "xdg-open {{link}} >/dev/null"`,
	}
}
