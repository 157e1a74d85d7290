// Package config tests configuration layering for reqt.
// Related: internal/config/config.go, internal/config/validate.go
// Tags: config, koanf, env

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearReqtEnv unsets REQT_* variables for the duration of the test.
func clearReqtEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"REQT_YES", "REQT_SKIP_CONFIRMATIONS", "REQT_NO_COLOR", "REQT_ASCII", "REQT_ID_SCHEME"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeUserConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWithOptions_Defaults(t *testing.T) {
	clearReqtEnv(t)

	cfg, err := LoadWithOptions(LoadOptions{UserConfigPath: filepath.Join(t.TempDir(), "missing.yml")})
	require.NoError(t, err)
	assert.False(t, cfg.SkipConfirmations)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.ASCII)
	assert.Equal(t, "uuid7", cfg.IDScheme)
}

func TestLoadWithOptions_Priority(t *testing.T) {
	tests := map[string]struct {
		userConfig string
		env        map[string]string
		validate   func(t *testing.T, cfg *Configuration)
	}{
		"user config overrides defaults": {
			userConfig: "id_scheme: uuid4\nascii: true\n",
			validate: func(t *testing.T, cfg *Configuration) {
				t.Helper()
				assert.Equal(t, "uuid4", cfg.IDScheme)
				assert.True(t, cfg.ASCII)
			},
		},
		"env overrides user config": {
			userConfig: "id_scheme: uuid4\n",
			env:        map[string]string{"REQT_ID_SCHEME": "uuid7"},
			validate: func(t *testing.T, cfg *Configuration) {
				t.Helper()
				assert.Equal(t, "uuid7", cfg.IDScheme)
			},
		},
		"REQT_YES forces skip confirmations": {
			userConfig: "skip_confirmations: false\n",
			env:        map[string]string{"REQT_YES": "1"},
			validate: func(t *testing.T, cfg *Configuration) {
				t.Helper()
				assert.True(t, cfg.SkipConfirmations)
			},
		},
		"empty user config uses defaults": {
			userConfig: "   \n",
			validate: func(t *testing.T, cfg *Configuration) {
				t.Helper()
				assert.Equal(t, "uuid7", cfg.IDScheme)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clearReqtEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadWithOptions(LoadOptions{UserConfigPath: writeUserConfig(t, tt.userConfig)})
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadWithOptions_Errors(t *testing.T) {
	tests := map[string]struct {
		userConfig  string
		errContains string
	}{
		"invalid yaml": {
			userConfig:  "id_scheme: [\n",
			errContains: "validating user config",
		},
		"unknown id scheme": {
			userConfig:  "id_scheme: ulid\n",
			errContains: "field 'id_scheme'",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clearReqtEnv(t)
			_, err := LoadWithOptions(LoadOptions{UserConfigPath: writeUserConfig(t, tt.userConfig)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidateYAMLSyntax(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateYAMLSyntax(filepath.Join(t.TempDir(), "missing.yml")))

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("a: b\nc: [\n"), 0o644))

	err := ValidateYAMLSyntax(path)
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, path, vErr.FilePath)
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"IDScheme":          "id_scheme",
		"SkipConfirmations": "skip_confirmations",
		"ASCII":             "ascii",
		"NoColor":           "no_color",
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, toSnakeCase(in))
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "c.yml:3:0: bad", (&ValidationError{FilePath: "c.yml", Line: 3, Message: "bad"}).Error())
	assert.Equal(t, "c.yml: field 'id_scheme': bad", (&ValidationError{FilePath: "c.yml", Field: "id_scheme", Message: "bad"}).Error())
	assert.Equal(t, "c.yml: bad", (&ValidationError{FilePath: "c.yml", Message: "bad"}).Error())
}
