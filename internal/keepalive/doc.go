// Package keepalive exposes the liveness HTTP endpoint.
//
// It is a sidecar concern: the core never depends on it, and its
// failure never affects the bot.
package keepalive
