// Package constants holds string values shared between configuration and infrastructure.
package constants

// EnvDevelop is the runtime environment assumed when none is configured.
const EnvDevelop = "develop"

// Event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
