package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testYAML = `
weibo:
  client_id: file-id
  client_secret: file-secret
  callback_url: https://example.com/auth/weibo/callback
  scopes: [email, follow_app_official_microblog]
  user_agent: example.com
  custom_headers:
    X-Trace: "1"
log:
  level: debug
server:
  addr: ":9090"
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weibo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))
	return path
}

func TestLoadConfig_File(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t))
	require.NoError(t, err)
	require.Equal(t, "file-id", cfg.Weibo.ClientID)
	require.Equal(t, "file-secret", cfg.Weibo.ClientSecret)
	require.Equal(t, []string{"email", "follow_app_official_microblog"}, cfg.Weibo.Scopes)
	require.Equal(t, map[string]string{"X-Trace": "1"}, cfg.Weibo.CustomHeaders)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, ":9090", cfg.Server.Addr)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("WEIBO_CLIENT_ID", "env-id")
	t.Setenv("WEIBO_SCOPES", "email,statuses_to_me_read")
	t.Setenv("WEIBO_SERVER_ADDR", ":7070")

	cfg, err := loadConfig(writeConfig(t))
	require.NoError(t, err)
	require.Equal(t, "env-id", cfg.Weibo.ClientID)
	require.Equal(t, "file-secret", cfg.Weibo.ClientSecret)
	require.Equal(t, []string{"email", "statuses_to_me_read"}, cfg.Weibo.Scopes)
	require.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestAuthorizeURLCommand(t *testing.T) {
	t.Setenv("WEIBO_CLIENT_ID", "ABC123")
	t.Setenv("WEIBO_CLIENT_SECRET", "secret")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"authorize-url", "--state", "xyz"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		authState = ""
	})

	require.NoError(t, rootCmd.Execute())

	u := strings.TrimSpace(out.String())
	require.True(t, strings.HasPrefix(u, "https://api.weibo.com/oauth2/authorize?"))
	require.Contains(t, u, "client_id=ABC123")
	require.Contains(t, u, "state=xyz")
}

func TestProfileCommand_RequiresToken(t *testing.T) {
	t.Setenv("WEIBO_ACCESS_TOKEN", "")
	rootCmd.SetArgs([]string{"profile"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.ErrorContains(t, err, "access token is required")
}
