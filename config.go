package docsite

import "github.com/goliatone/go-docsite/internal/runtimeconfig"

var (
	ErrContentDirRequired      = runtimeconfig.ErrContentDirRequired
	ErrBasePathInvalid         = runtimeconfig.ErrBasePathInvalid
	ErrBaseURLRequired         = runtimeconfig.ErrBaseURLRequired
	ErrOutputDirRequired       = runtimeconfig.ErrOutputDirRequired
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	SiteConfig      = runtimeconfig.SiteConfig
	DocsConfig      = runtimeconfig.DocsConfig
	GeneratorConfig = runtimeconfig.GeneratorConfig
	LinksConfig     = runtimeconfig.LinksConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the configuration used when hosts supply nothing.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
