package config

// Config is the top-level bibli configuration.
type Config struct {
	Library LibraryConfig `mapstructure:"library" yaml:"library"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
}

// LibraryConfig locates the dataset and sizes the grids.
type LibraryConfig struct {
	Dataset        string `mapstructure:"dataset" yaml:"dataset"`
	PageSize       int    `mapstructure:"page_size" yaml:"page_size"`
	QuotesPageSize int    `mapstructure:"quotes_page_size" yaml:"quotes_page_size"`
}

// DisplayConfig holds cosmetic defaults.
type DisplayConfig struct {
	NoColor bool   `mapstructure:"no_color" yaml:"no_color"`
	Covers  string `mapstructure:"covers" yaml:"covers"` // directory holding cover images
}
