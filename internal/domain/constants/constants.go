// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider types
const (
	// PubSubProviderLocal simulates Pub/Sub push over plain HTTP for development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
