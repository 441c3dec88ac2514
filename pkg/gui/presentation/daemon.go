package presentation

import (
	"github.com/fatih/color"

	"github.com/yeager/snap-l10n/pkg/commands"
	"github.com/yeager/snap-l10n/pkg/utils"
)

func GetDaemonDisplayStrings(daemon *commands.Daemon) []string {
	info := daemon.CurrentInfo()

	if info == nil {
		return []string{utils.ColoredString(daemon.Name, color.FgRed), ""}
	}

	return []string{
		utils.ColoredString(daemon.Name, color.FgGreen),
		utils.ColoredString("v"+info.Version, color.FgYellow),
	}
}
