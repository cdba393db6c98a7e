package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomasbasham/paramstyle"
	"github.com/tomasbasham/paramstyle/cmd/paramstyle/commands"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := &cobra.Command{Use: "paramstyle", SilenceUsage: true, SilenceErrors: true}
	commands.Apply(root)

	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(t.Context())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEncodeCommand_Success(t *testing.T) {
	t.Parallel()

	valueFile := writeFile(t, "value.yaml", "id: a b\nnext: /a?b\n")

	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "form explodes by default",
			stdin:    "[blue, black]",
			args:     []string{"encode", "--name", "color"},
			expected: "color=blue&color=black\n",
		},
		{
			name:     "form without explode",
			stdin:    "[blue, black]",
			args:     []string{"encode", "-n", "color", "--explode=false"},
			expected: "color=blue,black\n",
		},
		{
			name:     "deepObject",
			stdin:    "{R: 100, G: 200}",
			args:     []string{"encode", "-n", "color", "-s", "deepObject"},
			expected: "color[R]=100&color[G]=200\n",
		},
		{
			name:     "simple does not explode by default",
			stdin:    "{R: 100, G: 200}",
			args:     []string{"encode", "-s", "simple"},
			expected: "R,100,G,200\n",
		},
		{
			name:     "simple exploded",
			stdin:    "{R: 100, G: 200}",
			args:     []string{"encode", "-s", "simple", "-e"},
			expected: "R=100,G=200\n",
		},
		{
			name:     "deepform",
			stdin:    "{id: 5, filter: {status: open}}",
			args:     []string{"encode", "-s", "deepform"},
			expected: "id=5&filter[status]=open\n",
		},
		{
			name:     "select from file",
			args:     []string{"encode", "-s", "simple", "--select", "$.id", valueFile},
			expected: "a%20b\n",
		},
		{
			name:     "stdin indicator",
			stdin:    "a:b/c",
			args:     []string{"encode", "-s", "simple", "--path", "-"},
			expected: "a:b%2Fc\n",
		},
		{
			name:     "allow reserved",
			args:     []string{"encode", "-n", "next", "--allow-reserved", "--select", "$.next", valueFile},
			expected: "next=/a?b\n",
		},
		{
			name:     "plus and space",
			stdin:    `"a+b c"`,
			args:     []string{"encode", "-n", "q"},
			expected: "q=a%2Bb%20c\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestEncodeCommand_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		stdin       string
		args        []string
		expectedErr string
	}{
		{
			name:        "missing name",
			stdin:       "blue",
			args:        []string{"encode"},
			expectedErr: "--name is required",
		},
		{
			name:        "unsupported style",
			stdin:       "blue",
			args:        []string{"encode", "-s", "matrix"},
			expectedErr: paramstyle.ErrUnsupportedStyle.Error(),
		},
		{
			name:        "shape mismatch",
			stdin:       "blue",
			args:        []string{"encode", "-n", "color", "-s", "deepObject"},
			expectedErr: "value must be a mapping",
		},
		{
			name:        "selector matches nothing",
			stdin:       "{a: 1}",
			args:        []string{"encode", "-n", "x", "--select", "$.b"},
			expectedErr: "selector matched nothing",
		},
		{
			name:        "invalid selector",
			stdin:       "{a: 1}",
			args:        []string{"encode", "-n", "x", "--select", "$[?"},
			expectedErr: "invalid selector",
		},
		{
			name:        "invalid input",
			stdin:       "a: [b",
			args:        []string{"encode", "-n", "x"},
			expectedErr: "failed to parse input",
		},
		{
			name:        "missing file",
			args:        []string{"encode", "-n", "x", filepath.Join(t.TempDir(), "missing.yaml")},
			expectedErr: "failed to read file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestBodyCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t,
		"{id: 5, tags: [a, b], filter: {status: open}}",
		"body", "--no-explode", "tags")
	require.NoError(t, err)
	assert.Equal(t, "id=5&tags=a,b&filter[status]=open\n", stdout)

	_, _, err = execute(t, "[a, b]", "body")
	require.ErrorIs(t, err, paramstyle.ErrShapeMismatch)

	stdout, _, err = execute(t, "request: {body: {q: x y}}", "body", "--select", "$.request.body")
	require.NoError(t, err)
	assert.Equal(t, "q=x%20y\n", stdout)

	stdout, _, err = execute(t, `{q: "a*b~c"}`, "body", "--whatwg")
	require.NoError(t, err)
	assert.Equal(t, "q=a*b%7Ec\n", stdout)

	_, _, err = execute(t, "{id: 5, filter: {}}", "body")
	require.ErrorIs(t, err, paramstyle.ErrShapeMismatch)
}

const examplesDocument = `
openapi: 3.1.0
info:
  title: Pets
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      parameters:
        - name: color
          in: query
          schema:
            type: array
            items:
              type: string
          example: [blue, black]
        - name: filter
          in: query
          style: deepObject
          explode: true
          schema:
            type: object
          example:
            status: open
      responses:
        "200":
          description: ok
    post:
      operationId: createPet
      requestBody:
        content:
          application/x-www-form-urlencoded:
            schema:
              type: object
            example:
              name: Rex
      responses:
        "200":
          description: ok
`

func TestExamplesCommand(t *testing.T) {
	t.Parallel()

	file := writeFile(t, "openapi.yaml", examplesDocument)

	stdout, stderr, err := execute(t, "", "examples", file)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, strings.Join([]string{
		"get /pets color (query): color=blue&color=black",
		"get /pets filter (query): filter[status]=open",
		"post /pets body (body): name=Rex",
		"",
	}, "\n"), stdout)
}

func TestExamplesCommand_EncodingFailure(t *testing.T) {
	t.Parallel()

	doc := strings.Replace(examplesDocument, "style: deepObject", "style: pipeDelimited", 1)
	file := writeFile(t, "openapi.yaml", doc)

	stdout, stderr, err := execute(t, "", "examples", file)
	require.Error(t, err)
	assert.Contains(t, stdout, "get /pets color (query): color=blue&color=black")
	assert.Contains(t, stderr, "get /pets filter (query):")
	assert.Contains(t, stderr, "unsupported style")
}

func TestExamplesCommand_MissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "", "examples", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
