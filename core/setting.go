package core

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/common"
	"go.uber.org/zap"
)

type TranslationSetting struct {
	Strict bool `toml:"strict"`
}

type Setting struct {
	Remote      ExecutionContext       `toml:"remote"`
	Poller      map[string]interface{} `toml:"poller,omitempty"`
	Translation TranslationSetting     `toml:"translation"`
}

func NewSetting() *Setting {
	return &Setting{
		Poller: make(map[string]interface{}),
	}
}

// LoadSetting reads the setting file. A missing file is not an error and
// yields the default setting.
func LoadSetting(settingsPath string) (*Setting, error) {
	tomlString, err := common.ReadSettingsFile(settingsPath)
	if err != nil {
		zap.L().Info(fmt.Sprintf("use default setting/path:%s/reason:%s", settingsPath, err))
		return NewSetting(), nil
	}
	s := NewSetting()
	if err := s.parseSetting(tomlString); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Setting) parseSetting(tomlString string) error {
	md, err := toml.Decode(tomlString, s)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse setting/reason:%s", err))
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		zap.L().Warn(fmt.Sprintf("unknown setting keys:%v", undecoded))
	}
	zap.L().Debug(fmt.Sprintf("Setting is remote-host:%s/poller:%v/translation:%+v",
		s.Remote.Host, s.Poller, s.Translation))
	return nil
}
