package config

// Target is one web page to watch. ShortName names the target's storage files
// and must be unique across the configuration.
type Target struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	ShortName string `json:"short_name" yaml:"short_name" validate:"required"`
	URL       string `json:"url" yaml:"url" validate:"required,url"`
}
