// Package config manages tagbot settings.
//
// Settings are persisted as JSON. Loading a missing file yields the
// defaults, so the bot runs with zero configuration:
//
//	settings, err := config.Load("/etc/tagbot/config.json")
//	if err != nil {
//	    // malformed file, not a missing one
//	}
//
// Individual fields can be overridden by command line flags in cmd/tagbot
// before the settings are handed to the rest of the application.
package config
