package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/justify/core"
	"github.com/gaurav-prasanna/justify/core/render"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunFromFile(t *testing.T) {
	expected := `This  is  a   sample
text      but      a
complicated  problem
to be solved, so  we
are adding more text
to   see   that   it
actually      works.
`
	code, out, errOut := run(t, "20", "file", "testdata/sample.txt")
	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, expected, out)
	assert.Contains(t, errOut, "Init done.")
}

func TestRunFromStdin(t *testing.T) {
	code, out, _ := run(t, "7", "stdin", "hi it is vlad")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "hi   it\nis vlad\n", out)
}

func TestRunNewlines(t *testing.T) {
	code, out, _ := run(t, "7", "stdin", "hi\nit\nis\nvlad")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "hi   it\nis vlad\n", out)
}

func TestRunExitCodes(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"insufficient args", nil, ExitUsage},
		{"too many args", []string{"5", "stdin", "a", "b"}, ExitUsage},
		{"negative width", []string{"-1", "stdin", "text"}, ExitInvalidWidth},
		{"zero width", []string{"0", "stdin", "text"}, ExitInvalidWidth},
		{"nontext width", []string{"blabla", "stdin", "text"}, ExitInvalidWidth},
		{"signed width", []string{"+5", "stdin", "text"}, ExitInvalidWidth},
		{"huge width", []string{"1000000000000000", "stdin", "a b"}, ExitInvalidWidth},
		{"invalid source", []string{"5", "somestuff", "text"}, ExitInvalidSource},
		{"nonexistent path", []string{"5", "file", "text"}, ExitNotFound},
		{"empty input", []string{"5", "stdin", ""}, ExitEmptyInput},
		{"unjustifiable input", []string{"5", "stdin", "toolongforme"}, ExitWordTooLong},
		{"unknown flag", []string{"--nope", "5", "stdin", "text"}, ExitUsage},
		{"unknown format", []string{"--format", "doc", "5", "stdin", "text"}, ExitUsage},
		{"bad log level", []string{"--loglevel", "loud", "5", "stdin", "text"}, ExitUsage},
		{"bad delimiters", []string{"--delimiters", "(", "5", "stdin", "text"}, ExitUsage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, _ := run(t, tc.args...)
			assert.Equal(t, tc.code, code)
			if tc.code != ExitOK {
				assert.Empty(t, out)
			}
		})
	}
}

func TestRunNegativeFlagValueIsNotWidth(t *testing.T) {
	code, out, _ := run(t, "--workers", "-1", "7", "stdin", "hi it is vlad")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "hi   it\nis vlad\n", out)
}

func TestRunDebugTrace(t *testing.T) {
	code, _, errOut := run(t, "--loglevel", "debug", "20", "stdin", "This is a sample")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, errOut, "justified line")
	assert.Contains(t, errOut, "available=7")
}

func TestRunQuiet(t *testing.T) {
	code, _, errOut := run(t, "-L", "none", "5", "stdin", "toolongforme")
	assert.Equal(t, ExitWordTooLong, code)
	assert.Empty(t, errOut)
}

func TestRunJSONToOutputDir(t *testing.T) {
	dir := t.TempDir()
	code, out, errOut := run(t, "--format", "json", "--output_dir", dir, "12", "file", "testdata/sample.txt")
	require.Equal(t, ExitOK, code, errOut)
	assert.Empty(t, out)

	data, err := os.ReadFile(filepath.Join(dir, "sample.json"))
	require.NoError(t, err)
	var doc render.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 12, doc.Metadata.Width)
	assert.Equal(t, "file", doc.Metadata.Source)
	assert.Len(t, doc.Lines, doc.Metadata.Lines)
	assert.Len(t, doc.Trace, len(doc.Lines))
}

func TestRunPDF(t *testing.T) {
	dir := t.TempDir()
	code, _, errOut := run(t, "-f", "pdf", "-o", dir, "7", "stdin", "hi it is vlad")
	require.Equal(t, ExitOK, code, errOut)

	data, err := os.ReadFile(filepath.Join(dir, "stdin.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRunHTMLInline(t *testing.T) {
	code, out, _ := run(t, "--html", "7", "stdin", "<nav>menu</nav><p>hi <b>it</b> is vlad</p>")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, "hi   it\nis vlad\n", out)
}

func TestRunFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><header>Site</header><main><p>hi it is vlad</p></main></body></html>`))
	}))
	defer srv.Close()

	code, out, errOut := run(t, "7", "url", srv.URL+"/post")
	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, "hi   it\nis vlad\n", out)
}

func TestRunURLFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	code, out, _ := run(t, "7", "url", srv.URL)
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, out)
}

func TestRunWorkers(t *testing.T) {
	_, serial, _ := run(t, "20", "file", "testdata/sample.txt")
	code, parallel, _ := run(t, "-w", "4", "20", "file", "testdata/sample.txt")
	require.Equal(t, ExitOK, code)
	assert.Equal(t, serial, parallel)
}

func TestRunDashLeadingText(t *testing.T) {
	code, out, errOut := run(t, "7", "stdin", "-x hello")
	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, "-x\nhello\n", out)

	code, out, errOut = run(t, "11", "stdin", "--dash text")
	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, "--dash text\n", out)

	code, out, errOut = run(t, "7", "stdin", "-x hello", "--format", "json")
	require.Equal(t, ExitOK, code, errOut)
	assert.Contains(t, out, `"-x"`)
}

func TestSeparatePositionals(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{}, nil)
	cmd.InitDefaultHelpFlag()
	fs := cmd.Flags()
	for _, tc := range []struct {
		name string
		in   []string
		want []string
	}{
		{"negative width", []string{"-1", "stdin", "x"}, []string{"--", "-1", "stdin", "x"}},
		{"after bool flag", []string{"--html", "-3", "stdin", "x"}, []string{"--html", "--", "-3", "stdin", "x"}},
		{"negative flag value", []string{"-w", "-2", "5", "stdin", "x"}, []string{"-w", "-2", "5", "stdin", "x"}},
		{"lone dash", []string{"5", "stdin", "-"}, []string{"5", "stdin", "-"}},
		{"dash text", []string{"7", "stdin", "-x hello"}, []string{"--", "7", "stdin", "-x hello"}},
		{"double dash text", []string{"11", "stdin", "--dash text"}, []string{"--", "11", "stdin", "--dash text"}},
		{"trailing flags", []string{"7", "stdin", "-x", "-f", "json"}, []string{"-f", "json", "--", "7", "stdin", "-x"}},
		{"known flag in text slot", []string{"7", "stdin", "-f", "json", "x"}, []string{"7", "stdin", "-f", "json", "x"}},
		{"help in text slot", []string{"7", "stdin", "--help"}, []string{"7", "stdin", "--help"}},
		{"explicit separator", []string{"-w", "2", "--", "-1", "stdin", "x"}, []string{"-w", "2", "--", "-1", "stdin", "x"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, separatePositionals(fs, tc.in))
		})
	}
}

func TestParseWidth(t *testing.T) {
	w, err := parseWidth("20")
	require.NoError(t, err)
	assert.Equal(t, 20, w)

	w, err = parseWidth(strconv.Itoa(core.MaxWidth))
	require.NoError(t, err)
	assert.Equal(t, core.MaxWidth, w)

	for _, s := range []string{"", "0", "-1", "1.5", "abc", "99999999999999999999999", "1000000000000000", strconv.Itoa(core.MaxWidth + 1)} {
		_, err := parseWidth(s)
		assert.ErrorIs(t, err, core.ErrInvalidWidth, s)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 5))
	assert.Equal(t, "héll... (2 more characters)", truncate("héllo!", 4))
}

func TestRunURLContentsLogIsTruncated(t *testing.T) {
	filler := strings.Repeat("<!-- padding -->", 1000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><main><p>hi it is vlad</p></main>` + filler + `<p>tail</p></body></html>`))
	}))
	defer srv.Close()

	code, out, errOut := run(t, "-L", "debug", "7", "url", srv.URL)
	require.Equal(t, ExitOK, code, errOut)
	assert.Equal(t, "hi   it\nis vlad\n", out)
	assert.Contains(t, errOut, "more characters)")
	assert.NotContains(t, errOut, "tail")
}
