package configuration

import (
	"errors"
	"github.com/markusressel/fps2go/internal/ui"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"time"
)

type Configuration struct {
	DbPath string `json:"dbPath"`

	// Limiter is read field by field, see readLimiterConfig
	Limiter LimiterConfig `json:"limiter" mapstructure:"-"`

	Load         LoadSourceConfig   `json:"load"`
	Actuator     ActuatorConfig     `json:"actuator"`
	Notification NotificationConfig `json:"notification"`
	Api          ApiConfig          `json:"api"`
	Statistics   StatisticsConfig   `json:"statistics"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName("fps2go")

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Warning("Couldn't detect home directory: %v", err)
		} else {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath("/etc/fps2go/")
	}

	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues(viper.GetViper())
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("dbPath", "/etc/fps2go/fps2go.db")

	v.SetDefault("load.pollingRate", 1*time.Second)

	v.SetDefault("notification.language", DefaultLanguage)
	v.SetDefault("notification.desktop", false)

	v.SetDefault("api.enabled", true)
	v.SetDefault("api.host", "localhost")
	v.SetDefault("api.port", 9001)

	v.SetDefault("statistics.enabled", false)
	v.SetDefault("statistics.port", 9000)
}

// DetectAndReadConfigFile reads the config file and returns its path.
// A missing or unreadable file is not fatal, compiled-in defaults are used instead.
func DetectAndReadConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			ui.Warning("No configuration file found, using defaults")
		} else {
			ui.Warning("Error reading config file, using defaults: %v", err)
		}
		return ""
	}
	return viper.ConfigFileUsed()
}

func LoadConfig() {
	config, err := loadConfig(viper.GetViper())
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
	CurrentConfig = config
}

func loadConfig(v *viper.Viper) (config Configuration, err error) {
	err = v.Unmarshal(&config, viper.DecodeHook(decodeHooks()))
	if err != nil {
		return config, err
	}
	config.Limiter = readLimiterConfig(v)

	if config.Load.Sessions == nil && config.Load.File == nil && config.Load.Cmd == nil {
		config.Load.Sessions = &SessionsLoadConfig{}
	}
	return config, nil
}

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		messageTableHookFunc(),
	)
}
