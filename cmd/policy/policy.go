package policy

import (
	"bytes"
	"strconv"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/fps2go/cmd/global"
	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/policy"
	"github.com/markusressel/fps2go/internal/ui"
	"github.com/markusressel/fps2go/internal/util"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var (
	fromLoad int
	toLoad   int
)

var Command = &cobra.Command{
	Use:   "policy",
	Short: "Print the limit computed for a range of loads",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := loadLimiterConfig()

		if toLoad < 0 {
			toLoad = defaultToLoad(config)
		}
		if fromLoad > toLoad {
			fromLoad, toLoad = toLoad, fromLoad
		}

		ui.Printfln("Policy (idle: %d, base: %d, max: %d, increment: %v)",
			config.IdleValue, config.BaseValue, config.MaxValue, config.IncrementPerUnit)

		values := policy.Table(config, fromLoad, toLoad)
		tableString, err := renderTable(values)
		if err != nil {
			return err
		}
		ui.Printfln("%s", tableString)

		ui.Printfln("%s", renderGraph(values))
		return nil
	},
}

func init() {
	Command.Flags().IntVar(&fromLoad, "from", 0, "First load to evaluate")
	Command.Flags().IntVar(&toLoad, "to", -1, "Last load to evaluate (default: the load at which the limit saturates)")
}

func loadLimiterConfig() configuration.LimiterConfig {
	configuration.DetectAndReadConfigFile()
	configuration.LoadConfig()
	return configuration.CurrentConfig.Limiter
}

// defaultToLoad shows a few loads past the saturation point
func defaultToLoad(config configuration.LimiterConfig) int {
	saturation := policy.SaturationLoad(config)
	if saturation < 0 {
		return 20
	}
	return util.Coerce(saturation+5, 10, 200)
}

func renderTable(values map[int]int) (string, error) {
	tab := table.Table{
		Headers: []string{"Load", "Limit"},
	}
	for _, load := range util.SortedKeys(values) {
		tab.Rows = append(tab.Rows, []string{strconv.Itoa(load), strconv.Itoa(values[load])})
	}

	var buf bytes.Buffer
	err := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	return buf.String(), err
}

func renderGraph(values map[int]int) string {
	keys := util.SortedKeys(values)
	data := make([]float64, 0, len(keys))
	for _, k := range keys {
		data = append(data, float64(values[k]))
	}

	caption := "Limit / Load"
	return asciigraph.Plot(data, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
}
