package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/pagewindow/internal/config"
	"github.com/rshade/pagewindow/internal/logging"
	"github.com/rshade/pagewindow/internal/pagination"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())

	cmd := NewRootCmd("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd("1.2.3")
	assert.Equal(t, "pagewindow", cmd.Use)
	assert.Equal(t, "1.2.3", cmd.Version)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"window", "browse", "config"})
}

func TestWindowCmd_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "both ellipses",
			args: []string{"window", "--total-pages", "10", "--page", "6", "--neighbors", "2"},
			want: "1 ... 4 5 [6] 7 8 ... 10\n",
		},
		{
			name: "right spill from first page",
			args: []string{"window", "--total-pages", "10", "--page", "1"},
			want: "[1] 2 3 4 5 ... 10\n",
		},
		{
			name: "from record count",
			args: []string{"window", "--total-records", "95", "--page-limit", "10", "--page", "10"},
			want: "1 ... 6 7 8 9 [10]\n",
		},
		{
			name: "page limit above ten thousand",
			args: []string{"window", "--total-pages", "3", "--page-limit", "20000", "--page", "2"},
			want: "1 [2] 3\n",
		},
		{
			name: "zero page limit uses default",
			args: []string{"window", "--total-records", "95", "--page-limit", "0", "--page", "10"},
			want: "1 ... 6 7 8 9 [10]\n",
		},
		{
			name: "page clamped",
			args: []string{"window", "--total-pages", "3", "--page", "99"},
			want: "1 2 [3]\n",
		},
		{
			name: "no pages",
			args: []string{"window"},
			want: "No pages\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestWindowCmd_Labels(t *testing.T) {
	out, err := execute(t, "", "window", "--total-pages", "10", "--page", "5", "--labels")
	require.NoError(t, err)

	assert.Contains(t, out, "Previous page")
	assert.Contains(t, out, "Next page")
	assert.Contains(t, out, "Go to page 5")
}

func TestWindowCmd_JSON(t *testing.T) {
	out, err := execute(t, "", "window", "--total-pages", "10", "--page", "6", "--neighbors", "2", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Info  pagination.PageInfo `json:"info"`
		Items []struct {
			Kind    string `json:"kind"`
			Page    int    `json:"page"`
			Label   string `json:"label"`
			Current bool   `json:"current"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, pagination.PageInfo{CurrentPage: 6, TotalPages: 10, PageLimit: 10, TotalRecords: 100}, got.Info)
	require.Len(t, got.Items, 9)
	assert.Equal(t, "left_ellipsis", got.Items[1].Kind)
	assert.Equal(t, "Previous page", got.Items[1].Label)
	assert.True(t, got.Items[4].Current)
	assert.Equal(t, 6, got.Items[4].Page)
}

func TestWindowCmd_YAML(t *testing.T) {
	out, err := execute(t, "", "window", "--total-pages", "2", "-o", "yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Contains(t, got, "info")
	assert.Contains(t, got, "items")
}

func TestWindowCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "negative total pages", args: []string{"window", "--total-pages", "-1"}, wantErr: ErrInvalidTotalPages},
		{
			name:    "total pages overflow",
			args:    []string{"window", "--total-pages", "1000000000000000000"},
			wantErr: ErrInvalidTotalPages,
		},
		{name: "negative records", args: []string{"window", "--total-records", "-5"}, wantErr: pagination.ErrInvalidTotalRecords},
		{name: "bad output", args: []string{"window", "-o", "xml"}, wantErr: config.ErrInvalidOutputFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWindowCmd_UsesConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pagination:\n  page_limit: 5\n  page_neighbors: 0\n"), 0o600))

	out, err := execute(t, "", "--config", path, "window", "--total-records", "30", "--page", "3")
	require.NoError(t, err)
	assert.Equal(t, "1 ... [3] ... 6\n", out)
}

func TestBrowseCmd_PlainFromStdin(t *testing.T) {
	var input strings.Builder
	for i := 1; i <= 25; i++ {
		input.WriteString("line ")
		input.WriteString(strings.Repeat("x", i%3))
		input.WriteString("\n")
	}

	out, err := execute(t, input.String(), "browse", "--plain", "--page", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "stdin  Page 3 of 3 · records 21-25 of 25")
	assert.Contains(t, out, "21  line")
	assert.Contains(t, out, "25  line")
	assert.NotContains(t, out, "20  line")
	assert.Contains(t, out, "1 2 [3]")
}

func TestBrowseCmd_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\ngamma\r\ndelta\n"), 0o600))

	out, err := execute(t, "", "browse", path, "--plain", "--page-limit", "2", "--page", "2", "--title", "Songs")
	require.NoError(t, err)

	assert.Contains(t, out, "Songs  Page 2 of 2 · records 3-4 of 4")
	assert.Contains(t, out, "3  gamma\n")
	assert.Contains(t, out, "4  delta\n")
	assert.NotContains(t, out, "alpha")
}

func TestBrowseCmd_NoInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\ngamma\n"), 0o600))

	out, err := execute(t, "", "browse", path, "--no-interactive", "--page-limit", "2", "--page", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "3  gamma")
	assert.NotContains(t, out, "alpha")
}

func TestBrowseCmd_JSON(t *testing.T) {
	out, err := execute(t, "a\nb\nc\n", "browse", "-", "--page-limit", "2", "-o", "json")
	require.NoError(t, err)

	var decoded struct {
		Info    pagination.PageInfo `json:"info"`
		Records []string            `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1, decoded.Info.CurrentPage)
	assert.Equal(t, 2, decoded.Info.TotalPages)
	assert.Equal(t, []string{"a", "b"}, decoded.Records)
}

func TestBrowseCmd_Empty(t *testing.T) {
	out, err := execute(t, "", "browse", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "stdin  No records")
}

func TestBrowseCmd_MissingFile(t *testing.T) {
	_, err := execute(t, "", "browse", filepath.Join(t.TempDir(), "missing.txt"), "--plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening records")
}

func TestConfigShowCmd(t *testing.T) {
	out, err := execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "page_limit: 10")
	assert.Contains(t, out, "page_neighbors: 1")

	out, err = execute(t, "", "config", "show", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"page_limit": 10`)
}

func TestConfigValidateCmd(t *testing.T) {
	cmd := NewRootCmd("test")
	t.Setenv(config.EnvHome, t.TempDir())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"config", "validate"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Configuration is valid")
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pagination:\n  page_limit: -4\n"), 0o600))

	_, err := execute(t, "", "--config", path, "window")
	require.ErrorIs(t, err, pagination.ErrInvalidPageLimit)
}

func TestInteractiveLogger(t *testing.T) {
	t.Run("stderr output is discarded", func(t *testing.T) {
		assert.Equal(t, zerolog.Disabled, interactiveLogger(nil).GetLevel())

		result := &logging.LogPathResult{Logger: zerolog.New(os.Stderr)}
		assert.Equal(t, zerolog.Disabled, interactiveLogger(result).GetLevel())
	})

	t.Run("file output is kept", func(t *testing.T) {
		var buf bytes.Buffer
		result := &logging.LogPathResult{Logger: zerolog.New(&buf), UsingFile: true}

		logger := interactiveLogger(result)
		logger.Info().Msg("page changed")
		assert.Contains(t, buf.String(), `"component":"tui"`)
	})
}
