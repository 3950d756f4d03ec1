package core

// NonSecretConf is the part of Conf that is safe to log.
type NonSecretConf struct {
	DevMode            bool
	DisableStdoutLog   bool
	EnableFileLog      bool
	LogDir             string
	LogLevel           string
	LogRotationMaxDays int
	DeviceSettingPath  string
	SettingPath        string
	Strict             bool
	Seed               int64
	Host               string
	User               string
	ProjectID          string
	Remote             bool
}

type Info struct {
	Conf *NonSecretConf
}

func NewInfo(c *Conf) *Info {
	conf := &NonSecretConf{
		DevMode:            c.DevMode,
		DisableStdoutLog:   c.DisableStdoutLog,
		EnableFileLog:      c.EnableFileLog,
		LogDir:             c.LogDir,
		LogLevel:           c.LogLevel,
		LogRotationMaxDays: c.LogRotationMaxDays,
		DeviceSettingPath:  c.DeviceSettingPath,
		SettingPath:        c.SettingPath,
		Strict:             c.Strict,
		Seed:               c.Seed,
		Host:               c.Host,
		User:               c.User,
		ProjectID:          c.ProjectID,
		Remote:             ExecutionContextFromConf(c).IsComplete(),
	}
	return &Info{
		Conf: conf,
	}
}
