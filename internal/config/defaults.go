package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"skip_confirmations": false, // Overwrite prompt enabled by default
		"no_color":           false,
		"ascii":              false,
		"id_scheme":          "uuid7", // Time-sortable IDs
	}
}
