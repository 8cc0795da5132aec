package types

// ReadConfig holds settings for record reading.
type ReadConfig struct {
	// LegacySort keeps records in emission order instead of sorting by
	// location, header, author, and description.
	LegacySort bool `json:"legacy_sort" yaml:"legacy_sort" mapstructure:"legacy_sort"`

	// Brief limits record output to header, author, location, and description.
	Brief bool `json:"brief" yaml:"brief" mapstructure:"brief"`
}

// ExportConfig holds settings for file export.
type ExportConfig struct {
	// Format selects the export format: csv, xlsx, yaml, or json (default csv).
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Out is the output path. Empty means the input name with the format's
	// extension.
	Out string `json:"out" yaml:"out" mapstructure:"out"`
}

// Config groups all circ-reader settings. Fields map to the keys of
// circ-reader.yaml; command-line flags take precedence over all of them.
type Config struct {
	ReadConfig `yaml:",inline" mapstructure:",squash"`

	Export ExportConfig `json:"export" yaml:"export" mapstructure:"export"`
}
