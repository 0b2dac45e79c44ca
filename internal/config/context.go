package config

import "context"

type ctxKey struct{}

// NewContext returns a context carrying cfg, for a root command's
// PersistentPreRunE to stash the loaded Config where subcommands can
// reach it without each one re-running Load.
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the Config stashed by NewContext, or nil if
// none was stashed.
func FromContext(ctx context.Context) *Config {
	c, _ := ctx.Value(ctxKey{}).(*Config)
	return c
}
