package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func createValidConfig() Configuration {
	return Configuration{
		Limiter: DefaultLimiterConfig(),
		Load: LoadSourceConfig{
			PollingRate: time.Second,
			Sessions:    &SessionsLoadConfig{},
		},
		Notification: NotificationConfig{
			Language: DefaultLanguage,
		},
		Api: ApiConfig{
			Enabled: true,
			Port:    9001,
			Tokens:  []string{"secret"},
		},
	}
}

func TestValidateValidConfig(t *testing.T) {
	// GIVEN
	config := createValidConfig()

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}

func TestValidateMaxBelowBaseIsOnlyAWarning(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Limiter.BaseValue = 80
	config.Limiter.MaxValue = 60

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}

func TestValidateMultipleLoadSources(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Load.File = &FileLoadConfig{Path: "/tmp/players"}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "load: only one load source type can be used, use one of: sessions | file | cmd")
}

func TestValidateMissingLoadSource(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Load.Sessions = nil

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "load: sub-configuration for load source is missing, use one of: sessions | file | cmd")
}

func TestValidateFileLoadSourceWithoutPath(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Load.Sessions = nil
	config.Load.File = &FileLoadConfig{}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "load: missing file path")
}

func TestValidatePollingRate(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Load.Sessions = nil
	config.Load.File = &FileLoadConfig{Path: "/tmp/players"}
	config.Load.PollingRate = 0

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "load: invalid pollingRate 0s, must be > 0")
}

func TestValidateMultipleActuators(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Actuator.File = &FileActuatorConfig{Path: "/tmp/fps"}
	config.Actuator.Cmd = &CmdActuatorConfig{Exec: "/usr/bin/true"}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "actuator: only one actuator type can be used, use one of: file | cmd")
}

func TestValidateCmdActuatorWithoutExec(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Actuator.Cmd = &CmdActuatorConfig{}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "actuator: missing cmd executable")
}

func TestValidateEmptyMessageTemplate(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Notification.Messages = map[string]MessageTable{
		"de": {"limit.changed": ""},
	}

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "notification: empty message template for key 'limit.changed' in language 'de'")
}

func TestValidateApiPort(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Api.Port = 70000

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "api: invalid port 70000")
}

func TestValidateDisabledApiIgnoresPort(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Api.Enabled = false
	config.Api.Port = -1

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.NoError(t, err)
}

func TestValidateStatisticsPort(t *testing.T) {
	// GIVEN
	config := createValidConfig()
	config.Statistics.Enabled = true

	// WHEN
	err := validateConfig(&config, "")

	// THEN
	assert.EqualError(t, err, "statistics: invalid port 0")
}
