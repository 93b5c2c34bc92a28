package config

// DefaultConfigDir is where the config file and cache live.
const DefaultConfigDir = "~/.config/taskchute"

// DefaultCachePath is the default location of the SQLite task cache.
const DefaultCachePath = "~/.config/taskchute/tasks.db"

// DefaultAPIBaseURL is the TaskChute Cloud API endpoint.
const DefaultAPIBaseURL = "https://taskchute.cloud/api/v1"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 100,
}
