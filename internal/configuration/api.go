package configuration

type ApiConfig struct {
	Enabled bool   `json:"enabled"`
	Host    string `json:"host"`
	Port    int    `json:"port"`
	// Tokens grant access to the endpoints that change state
	Tokens []string `json:"tokens"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}
