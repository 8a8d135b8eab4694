package configuration

import "time"

// ActuatorValuePlaceholder is replaced with the limit in cmd actuator arguments
const ActuatorValuePlaceholder = "%value%"

type ActuatorConfig struct {
	File *FileActuatorConfig `json:"file,omitempty"`
	Cmd  *CmdActuatorConfig  `json:"cmd,omitempty"`
}

type FileActuatorConfig struct {
	Path string `json:"path"`
}

type CmdActuatorConfig struct {
	Exec    string        `json:"exec"`
	Args    []string      `json:"args"`
	Timeout time.Duration `json:"timeout"`
}
