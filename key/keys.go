// Package key names every configuration field. Each key is registered in config/default.go.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 12

// Playback engine selection and status polling.
const (
	PlayerEngine           = "player.engine"
	PlayerStatusIntervalMs = "player.status_interval_ms"
	PlayerSimulatedLoadMs  = "player.simulated_load_ms"
)

// TV mode hands transport controls to the engine and lays the home screen out in rows.
const (
	TVMode = "tv.mode"
)

// Home and detail screen composition.
const (
	HomeFeaturedCount  = "home.featured_count"
	DetailSimilarLimit = "detail.similar_limit"
)

// Search screen.
const (
	SearchQuerySuggestions = "search.query_suggestions"
)

const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored = "cli.colored"
)
