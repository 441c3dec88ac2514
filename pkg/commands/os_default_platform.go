package commands

// snapd only exists on Linux so there is no per-platform split here
func getPlatform() *Platform {
	return &Platform{
		shell:    "bash",
		shellArg: "-c",
	}
}
