package configuration

import (
	"errors"
	"fmt"
	"github.com/markusressel/fps2go/internal/ui"
	"github.com/markusressel/fps2go/internal/util"
)

func Validate(configPath string) error {
	return validateConfig(&CurrentConfig, configPath)
}

func validateConfig(config *Configuration, path string) error {
	validateLimiter(&config.Limiter)

	if err := validateLoadSource(&config.Load); err != nil {
		return err
	}
	if err := validateActuator(&config.Actuator); err != nil {
		return err
	}
	if err := validateNotification(&config.Notification); err != nil {
		return err
	}
	if err := validateApi(&config.Api); err != nil {
		return err
	}
	if err := validateStatistics(&config.Statistics); err != nil {
		return err
	}

	if containsCmdConfig(config) && path != "" {
		if _, err := util.CheckFilePermissionsForExecution(path); err != nil {
			return fmt.Errorf("config file '%s' has invalid permissions: %w", path, err)
		}
	}

	return nil
}

func containsCmdConfig(config *Configuration) bool {
	return config.Load.Cmd != nil || config.Actuator.Cmd != nil
}

// validateLimiter only warns, invalid numbers were already replaced while loading
func validateLimiter(config *LimiterConfig) {
	if config.MaxValue < config.BaseValue {
		ui.Warning("limiter: maxValue (%d) is lower than baseValue (%d), every connected load will be clamped to maxValue", config.MaxValue, config.BaseValue)
	}
	if config.IdleValue > config.MaxValue {
		ui.Warning("limiter: idleValue (%d) is higher than maxValue (%d)", config.IdleValue, config.MaxValue)
	}
}

func validateLoadSource(config *LoadSourceConfig) error {
	subConfigs := 0
	if config.Sessions != nil {
		subConfigs++
	}
	if config.File != nil {
		subConfigs++
		if config.File.Path == "" {
			return errors.New("load: missing file path")
		}
	}
	if config.Cmd != nil {
		subConfigs++
		if config.Cmd.Exec == "" {
			return errors.New("load: missing cmd executable")
		}
	}
	if subConfigs > 1 {
		return errors.New("load: only one load source type can be used, use one of: sessions | file | cmd")
	}
	if subConfigs <= 0 {
		return errors.New("load: sub-configuration for load source is missing, use one of: sessions | file | cmd")
	}
	if config.File != nil || config.Cmd != nil {
		if config.PollingRate <= 0 {
			return fmt.Errorf("load: invalid pollingRate %s, must be > 0", config.PollingRate)
		}
	}
	return nil
}

func validateActuator(config *ActuatorConfig) error {
	if config.File != nil && config.Cmd != nil {
		return errors.New("actuator: only one actuator type can be used, use one of: file | cmd")
	}
	if config.File != nil && config.File.Path == "" {
		return errors.New("actuator: missing file path")
	}
	if config.Cmd != nil && config.Cmd.Exec == "" {
		return errors.New("actuator: missing cmd executable")
	}
	if config.File == nil && config.Cmd == nil {
		ui.Warning("No actuator configured, limits will only be logged")
	}
	return nil
}

func validateNotification(config *NotificationConfig) error {
	if config.Language == "" {
		return errors.New("notification: missing language")
	}
	for language, table := range config.Messages {
		for key, template := range table {
			if template == "" {
				return fmt.Errorf("notification: empty message template for key '%s' in language '%s'", key, language)
			}
		}
	}
	return nil
}

func validateApi(config *ApiConfig) error {
	if !config.Enabled {
		return nil
	}
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("api: invalid port %d", config.Port)
	}
	if len(config.Tokens) <= 0 {
		ui.Warning("api: no tokens configured, every guarded endpoint will deny access")
	}
	return nil
}

func validateStatistics(config *StatisticsConfig) error {
	if !config.Enabled {
		return nil
	}
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("statistics: invalid port %d", config.Port)
	}
	return nil
}
