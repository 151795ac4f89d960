package config

const (
	// Configuration file paths
	ConfigPathHeroNames       = "configs/hero_names.json"
	ConfigPathHeroNamesSchema = "configs/hero_names.schema.json"

	// Default data locations
	DefaultBuildsDir = "res/builds"

	// Default public CDN bases
	DefaultImageBaseURL = "https://assets.deadlock-api.com/images"
	DefaultVideoBaseURL = "https://assets.deadlock-api.com/videos"
)
