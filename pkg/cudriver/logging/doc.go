// Package logging provides the small slog-backed logging surface used by
// the driver wrapper. Nothing in the wrapper logs on a forwarder hot path;
// the only consumer is the optional launch-configuration diagnostic, which
// checks Enabled before rendering anything.
package logging
