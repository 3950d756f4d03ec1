//go:build unit
// +build unit

package common

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAsset(t *testing.T) {
	blob, err := GetAsset("bell_pair.json")
	assert.Nil(t, err)
	assert.Contains(t, blob, "\"Hadamard\"")
	assert.Contains(t, blob, "\"shots\": 1000")
}

func TestGetAssetNotFound(t *testing.T) {
	_, err := GetAsset("no_such_asset.json")
	assert.NotNil(t, err)
}

func TestValidEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      string
		wantError bool
	}{
		{
			name: "https",
			in:   "https://api.example.com",
			want: "https://api.example.com",
		},
		{
			name: "trailing slash is trimmed",
			in:   "http://localhost:8080/",
			want: "http://localhost:8080",
		},
		{
			name:      "unsupported scheme",
			in:        "ftp://api.example.com",
			wantError: true,
		},
		{
			name:      "no scheme",
			in:        "api.example.com",
			wantError: true,
		},
		{
			name:      "invalid host",
			in:        "https://hogehoge^^^-server.com",
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidEndpoint(tt.in)
			if tt.wantError {
				assert.NotNil(t, err)
				assert.Equal(t, "", got)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDirWritable(t *testing.T) {
	dir := t.TempDir()
	assert.Nil(t, IsDirWritable(dir))

	f, err := os.CreateTemp(dir, "file-*.txt")
	assert.Nil(t, err)
	f.Close()
	assert.NotNil(t, IsDirWritable(f.Name()))
	assert.NotNil(t, IsDirWritable(dir+"/missing"))
}

func TestReadSettingsFile(t *testing.T) {
	path, err := GetAssetAbsPath("unit_test_setting.toml")
	assert.Nil(t, err)
	s, err := ReadSettingsFile(path)
	assert.Nil(t, err)
	assert.Contains(t, s, "[remote]")

	_, err = ReadSettingsFile("./not_found.toml")
	assert.NotNil(t, err)
}
