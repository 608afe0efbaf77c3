package config

// RuntimeOverrides holds configuration values that can be overridden at runtime
// via CLI flags
type RuntimeOverrides struct {
	LogLevel *string
	LogFile  *string
	DBPath   *string
}

func (o *RuntimeOverrides) apply(cfg *ConfigSchema) {
	if o == nil {
		return
	}
	if o.LogLevel != nil {
		cfg.Log.LogLevel = *o.LogLevel
	}
	if o.LogFile != nil {
		cfg.Log.LogFile = *o.LogFile
	}
	if o.DBPath != nil {
		cfg.DBPath = *o.DBPath
	}
}
