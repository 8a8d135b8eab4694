package limiter

import (
	"bytes"
	"strconv"

	"github.com/markusressel/fps2go/cmd/global"
	"github.com/markusressel/fps2go/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current state of the limiter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := newClient().Status(cmd.Context())
		if err != nil {
			return err
		}

		value := "-"
		if status.CurrentValue != nil {
			value = strconv.Itoa(*status.CurrentValue)
		}
		tab := table.Table{
			Headers: []string{"", ""},
			Rows: [][]string{
				{"State", status.State.String()},
				{"Enabled", strconv.FormatBool(status.Enabled)},
				{"Limit", value},
				{"Load", strconv.Itoa(status.CurrentLoad)},
			},
		}
		var buf bytes.Buffer
		err = tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if err != nil {
			return err
		}
		ui.Printfln("%s", buf.String())
		ui.Printfln("%s", status.Message)
		return nil
	},
}

func init() {
	Command.AddCommand(statusCmd)
}
