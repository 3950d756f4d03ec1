//go:build unit
// +build unit

package core

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/common"
	"github.com/stretchr/testify/assert"
)

func TestParseSetting(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantError bool
		want      *Setting
	}{
		{
			name: "empty",
			in:   "",
			want: &Setting{
				Poller: map[string]interface{}{},
			},
		},
		{
			name: "remote and translation",
			in: heredoc.Doc(`
				[remote]
				host = "https://api.example.com"
				user = "alice"

				[translation]
				strict = true
			`),
			want: &Setting{
				Remote: ExecutionContext{
					Host: "https://api.example.com",
					User: "alice",
				},
				Poller:      map[string]interface{}{},
				Translation: TranslationSetting{Strict: true},
			},
		},
		{
			name:      "broken toml",
			in:        "[remote",
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSetting()
			err := s.parseSetting(tt.in)
			if tt.wantError {
				assert.NotNil(t, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestLoadSetting(t *testing.T) {
	path, err := common.GetAssetAbsPath("unit_test_setting.toml")
	assert.Nil(t, err)

	s, err := LoadSetting(path)
	assert.Nil(t, err)
	assert.True(t, s.Remote.IsComplete())
	assert.Equal(t, "project-1", s.Remote.ProjectID)
	assert.Equal(t, "500ms", s.Poller["interval"])
	assert.Equal(t, int64(5), s.Poller["max_retry"])
	assert.True(t, s.Translation.Strict)
}

func TestLoadSettingMissingFile(t *testing.T) {
	s, err := LoadSetting("./no_such_setting.toml")
	assert.Nil(t, err)
	assert.Equal(t, NewSetting(), s)
}
