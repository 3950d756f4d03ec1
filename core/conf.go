package core

type Conf struct {
	Version            string `long:"version" description:"version of sfbridge" env:"SFBRIDGE_VERSION"`
	DevMode            bool   `long:"dev-mode" description:"run in dev mode" env:"SFBRIDGE_DEV_MODE"`
	DisableStdoutLog   bool   `long:"disable-stdout-log" description:"do not log in standard output" env:"SFBRIDGE_DISABLE_STDOUT_LOG"`
	EnableFileLog      bool   `long:"enable-file-log" description:"enable log in file" env:"SFBRIDGE_ENABLE_FILE_LOG"`
	LogDir             string `long:"log-dir" description:"rotating log file dir" default:"./shares/logs" env:"SFBRIDGE_LOG_DIR"`
	LogLevel           string `long:"log-level" description:"log level" default:"info" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"SFBRIDGE_LOG_LEVEL"`
	LogRotationMaxDays int    `long:"log-rotation-max-days" description:"max days of log rotation" default:"7" env:"SFBRIDGE_LOG_ROTATION_MAX_DAYS"`
	DeviceSettingPath  string `long:"device-setting-path" description:"local simulator setting file path" default:"./device_setting.toml" env:"SFBRIDGE_DEVICE_SETTING_PATH"`
	SettingPath        string `long:"setting-path" description:"setting file path" default:"./setting/setting.toml" env:"SFBRIDGE_SETTING_PATH"`
	Strict             bool   `long:"strict" description:"fail translation on unknown operations instead of skipping them" env:"SFBRIDGE_STRICT"`
	Seed               int64  `long:"seed" description:"seed of the local simulator, 0 means time based" env:"SFBRIDGE_SEED"`

	Host        string `long:"host" description:"remote hardware endpoint" env:"SFBRIDGE_HOST"`
	User        string `long:"user" description:"remote hardware user" env:"SFBRIDGE_USER"`
	AccessToken string `long:"access-token" description:"remote hardware access token" env:"SFBRIDGE_ACCESS_TOKEN"`
	ProjectID   string `long:"project-id" description:"remote hardware project id" env:"SFBRIDGE_PROJECT_ID"`
}
