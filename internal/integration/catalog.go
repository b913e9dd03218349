package integration

// Requirements describes what an integration needs before it counts as
// configured. The rules are fixed policy per integration, kept as an
// explicit table so they can be tested integration by integration.
type Requirements struct {
	// DisplayName is the human-readable service name.
	DisplayName string
	// NeedsAPIKey requires a non-empty api key.
	NeedsAPIKey bool
	// NeedsEndpoint requires a non-empty base URL, for services that
	// can point at a self-hosted or regional mirror.
	NeedsEndpoint bool
	// AdditionalKeys lists additionalConfig entries that must be
	// present and non-empty.
	AdditionalKeys []string
}

// Integration names. The catalog is a fixed set.
const (
	Stripe          = "stripe"
	SendGrid        = "sendgrid"
	Sketchfab       = "sketchfab"
	DeepL           = "deepl"
	GoogleAnalytics = "google-analytics"
	Sentry          = "sentry"
)

// Catalog maps every supported integration to its requirements.
var Catalog = map[string]Requirements{
	Stripe: {
		DisplayName: "Stripe",
		NeedsAPIKey: true,
	},
	SendGrid: {
		DisplayName: "SendGrid",
		NeedsAPIKey: true,
	},
	Sketchfab: {
		DisplayName:   "Sketchfab",
		NeedsAPIKey:   true,
		NeedsEndpoint: true,
	},
	DeepL: {
		DisplayName:   "DeepL",
		NeedsAPIKey:   true,
		NeedsEndpoint: true,
	},
	GoogleAnalytics: {
		DisplayName:    "Google Analytics",
		AdditionalKeys: []string{"measurementId"},
	},
	Sentry: {
		DisplayName:    "Sentry",
		AdditionalKeys: []string{"dsn"},
	},
}

// Known reports whether the name is part of the catalog.
func Known(name string) bool {
	_, ok := Catalog[name]
	return ok
}
