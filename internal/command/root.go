package command

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const AppName = "embedg"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "embedg - local editor for rich message embeds",
		Long:          "embedg edits a rich message (content, embeds, fields, buttons, select menus) and keeps it in a local project store.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().String("project", "", "project directory (defaults to the nearest .embedg)")
	cmd.PersistentFlags().Bool("json", false, "output in JSON format")
	cmd.PersistentFlags().String("backend", "", "slot backend: sqlite or pebble")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(
		NewInitCmd(),
		NewShowCmd(),
		NewExportCmd(),
		NewImportCmd(),
		NewClearCmd(),
		NewResetCmd(),
		NewContentCmd(),
		NewUsernameCmd(),
		NewAvatarCmd(),
		NewTTSCmd(),
		NewEmbedCmd(),
		NewFieldCmd(),
		NewRowCmd(),
		NewButtonCmd(),
		NewSelectCmd(),
		NewSavedCmd(),
		NewConfigCmd(),
		NewInfoCmd(),
		NewEditCmd(),
	)

	return cmd
}

func Execute() error {
	return NewRootCmd(Version).Execute()
}
