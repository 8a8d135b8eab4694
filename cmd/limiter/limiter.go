package limiter

import (
	"fmt"

	"github.com/markusressel/fps2go/internal/api"
	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/spf13/cobra"
)

var (
	apiUrl   string
	token    string
	language string
)

var Command = &cobra.Command{
	Use:   "limiter",
	Short: "Inspect and control the limiter of a running daemon",
	Long:  ``,
}

func init() {
	Command.PersistentFlags().StringVar(&apiUrl, "api", "", "Base url of the daemon api (default: derived from the api configuration)")
	Command.PersistentFlags().StringVar(&token, "token", "", "Api token (default: the first configured token)")
	Command.PersistentFlags().StringVar(&language, "lang", "", "Language of the returned messages")
}

func newClient() *api.Client {
	configuration.DetectAndReadConfigFile()
	configuration.LoadConfig()
	config := configuration.CurrentConfig

	baseUrl := apiUrl
	if baseUrl == "" {
		baseUrl = fmt.Sprintf("http://%s:%d", config.Api.Host, config.Api.Port)
	}
	apiToken := token
	if apiToken == "" && len(config.Api.Tokens) > 0 {
		apiToken = config.Api.Tokens[0]
	}
	lang := language
	if lang == "" {
		lang = config.Notification.Language
	}
	return api.NewClient(baseUrl, apiToken, lang)
}
