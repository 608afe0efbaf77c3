package config

type Log struct {
	LogLevel string `mapstructure:"logLevel" json:"logLevel" yaml:"logLevel" validate:"omitempty,oneof=DEBUG INFO WARN ERROR" jsonschema:"enum=DEBUG,enum=INFO,enum=WARN,enum=ERROR,default=INFO"`
	LogFile  string `mapstructure:"logFile" json:"logFile" yaml:"logFile" jsonschema:"description=Log file path. Logs are discarded when empty"`
}

type Layout struct {
	ChannelsPercent int `mapstructure:"channelsPercent" json:"channelsPercent" yaml:"channelsPercent" validate:"min=1,max=99" jsonschema:"minimum=1,maximum=99,default=25,description=Width share of the channel list"`
	MessagesPercent int `mapstructure:"messagesPercent" json:"messagesPercent" yaml:"messagesPercent" validate:"min=1,max=99" jsonschema:"minimum=1,maximum=99,default=95,description=Height share of the message view in the right column"`
	MinInputHeight  int `mapstructure:"minInputHeight" json:"minInputHeight" yaml:"minInputHeight" validate:"min=0" jsonschema:"minimum=0,default=3,description=Minimum rows of the input pane. 0 keeps the raw percentage"`
}

type Session struct {
	Channels []string `mapstructure:"channels" json:"channels" yaml:"channels" validate:"min=1,dive,required,startswith=#|startswith=&" jsonschema:"description=Channels joined at startup. The first one is active"`
}

// Theme holds lipgloss colors: ANSI numbers or #rrggbb.
type Theme struct {
	Border     string `mapstructure:"border" json:"border" yaml:"border" validate:"required"`
	Emphasis   string `mapstructure:"emphasis" json:"emphasis" yaml:"emphasis" validate:"required"`
	Text       string `mapstructure:"text" json:"text" yaml:"text" validate:"required"`
	Muted      string `mapstructure:"muted" json:"muted" yaml:"muted" validate:"required"`
	Timestamp  string `mapstructure:"timestamp" json:"timestamp" yaml:"timestamp" validate:"required"`
	Author     string `mapstructure:"author" json:"author" yaml:"author" validate:"required"`
	Background string `mapstructure:"background" json:"background" yaml:"background" validate:"required"`
}

type ConfigSchema struct {
	ClientName string  `mapstructure:"clientName" json:"clientName" yaml:"clientName" validate:"required" jsonschema:"description=Name shown in the message pane title"`
	DBPath     string  `mapstructure:"dbPath" json:"dbPath" yaml:"dbPath" jsonschema:"description=SQLite profile store. Defaults to $XDG_DATA_HOME/tirc/tirc.db"`
	Log        Log     `mapstructure:"log" json:"log" yaml:"log"`
	Layout     Layout  `mapstructure:"layout" json:"layout" yaml:"layout"`
	Session    Session `mapstructure:"session" json:"session" yaml:"session"`
	KeyMap     KeyMap  `mapstructure:"keyMap" json:"keyMap" yaml:"keyMap"`
	Theme      Theme   `mapstructure:"theme" json:"theme" yaml:"theme"`
}
