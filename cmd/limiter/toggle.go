package limiter

import (
	"github.com/markusressel/fps2go/internal/ui"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Enable or disable the limiter",
	Long:  `Flips the limiter between enabled and disabled. Disabling it resets the limit to the configured maximum.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().Toggle(cmd.Context())
		if err != nil {
			return err
		}
		ui.Success("%s", result.Message)
		return nil
	},
}

func init() {
	Command.AddCommand(toggleCmd)
}
