package configuration

import "time"

type LoadSourceConfig struct {
	// PollingRate is the rate at which file and cmd sources are checked for changes
	PollingRate time.Duration `json:"pollingRate"`

	Sessions *SessionsLoadConfig `json:"sessions,omitempty"`
	File     *FileLoadConfig     `json:"file,omitempty"`
	Cmd      *CmdLoadConfig      `json:"cmd,omitempty"`
}

// SessionsLoadConfig counts the sessions registered through the api
type SessionsLoadConfig struct {
	// IgnorePrivileged excludes privileged sessions from the load
	IgnorePrivileged bool `json:"ignorePrivileged"`
}

type FileLoadConfig struct {
	Path string `json:"path"`
}

type CmdLoadConfig struct {
	Exec    string        `json:"exec"`
	Args    []string      `json:"args"`
	Timeout time.Duration `json:"timeout"`
}
