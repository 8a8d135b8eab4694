package policy

import (
	"fmt"
	"strconv"

	"github.com/markusressel/fps2go/internal/policy"
	"github.com/markusressel/fps2go/internal/ui"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <load>",
	Short: "Print the limit computed for the given load",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		load, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid load '%s': %w", args[0], err)
		}

		config := loadLimiterConfig()
		ui.Printfln("%d", policy.ComputeTarget(load, config))
		return nil
	},
}

func init() {
	Command.AddCommand(evalCmd)
}
