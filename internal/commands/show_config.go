package commands

import (
	"github.com/mwiater/autodetect/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overriden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		fallback := appconfig.Config{
			Debug:    viper.GetBool("debug"),
			JSONMode: viper.GetBool("jsonMode"),
			LogFile:  viper.GetString("logFile"),
		}
		cfg := GetConfig()
		file := ""
		if cfg != nil && len(cfg.Models) > 0 {
			file = viper.ConfigFileUsed()
		} else {
			cfg = nil
		}
		appconfig.ShowConfig(cmd.OutOrStdout(), file, cfg, fallback)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
