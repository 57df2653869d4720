package section_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hamed-Ayodeji/devopsfmt"
	"github.com/Hamed-Ayodeji/devopsfmt/internal/section"
)

func lookup(t *testing.T, name string) *section.Section {
	t.Helper()
	s, err := section.Default().Lookup(name)
	require.NoError(t, err)
	return s
}

func format(t *testing.T, name, data string, opts section.Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, lookup(t, name).Format(&buf, data, opts))
	return buf.String()
}

// dataLines returns the table lines that hold cells, header included.
func dataLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "|") {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{
		"ports", "port_info", "docker_images", "docker_containers",
		"docker_info", "nginx", "users",
	}, section.Default().Names())
}

func TestLookupUnknown(t *testing.T) {
	t.Parallel()
	_, err := section.Default().Lookup("disks")
	require.ErrorIs(t, err, section.ErrUnknownSection)
	assert.Contains(t, err.Error(), "choose from ports, port_info")
}

func TestLookupReturnsCopy(t *testing.T) {
	t.Parallel()
	s := lookup(t, "ports")
	s.Header[0] = "CHANGED"
	assert.Equal(t, "PORT", lookup(t, "ports").Header[0])
}

func TestFormatPorts(t *testing.T) {
	t.Parallel()
	want := "" +
		"+------+----------+---------+\n" +
		"| PORT | PROTOCOL | SERVICE |\n" +
		"+======+==========+=========+\n" +
		"| 8080 | tcp      | nginx   |\n" +
		"+------+----------+---------+\n" +
		"| 22   | tcp      | sshd    |\n" +
		"+------+----------+---------+\n"
	assert.Equal(t, want, format(t, "ports", "8080 tcp nginx\n22 tcp sshd", section.Options{}))
}

func TestFormatPortInfoEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "No service is using the specified port.\n", format(t, "port_info", "", section.Options{}))
}

func TestFormatDockerInfo(t *testing.T) {
	t.Parallel()
	want := "" +
		"+-----------+---------+\n" +
		"| ATTRIBUTE | VALUE   |\n" +
		"+===========+=========+\n" +
		"| Status    | Running |\n" +
		"+-----------+---------+\n"
	assert.Equal(t, want, format(t, "docker_info", "Status\tRunning", section.Options{}))
}

func TestFormatEmptyMessages(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"ports":             "No open ports found.",
		"port_info":         "No service is using the specified port.",
		"docker_images":     "No Docker images found.",
		"docker_containers": "No running Docker containers found.",
		"docker_info":       "No details found for the specified Docker container.",
		"nginx":             "No Nginx domains found.",
		"users":             "No users with login records found.",
	}
	for name, msg := range tests {
		name, msg := name, msg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, input := range []string{"", "   ", " \n\t\n  \r\n"} {
				assert.Equal(t, msg+"\n", format(t, name, input, section.Options{}))
			}
		})
	}
}

// Well-formed input yields one table row per line, plus the header.
func TestFormatRowCounts(t *testing.T) {
	t.Parallel()
	for _, s := range section.Default().Sections() {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			t.Parallel()
			sep := " "
			if s.Split.Delimiter == section.Tab {
				sep = "\t"
			}
			var lines []string
			for i := 0; i < 3; i++ {
				fields := make([]string, len(s.Header))
				for j := range fields {
					fields[j] = strings.Repeat(string(rune('a'+j)), i+1)
				}
				lines = append(lines, strings.Join(fields, sep))
			}
			out := format(t, s.Name, strings.Join(lines, "\n")+"\n", section.Options{})
			got := dataLines(out)
			require.Len(t, got, 4)
			for _, h := range s.Header {
				assert.Contains(t, got[0], h)
			}
		})
	}
}

func TestParseNginxDropsMalformedRows(t *testing.T) {
	t.Parallel()
	s := lookup(t, "nginx")
	data := "" +
		"example.com\thttp://localhost:3000\t/etc/nginx/sites-enabled/example\n" +
		"broken.com\t/etc/nginx/sites-enabled/broken\n" +
		"no tabs here\n"
	rows := s.Parse(data)
	assert.Equal(t, [][]string{
		{"example.com", "http://localhost:3000", "/etc/nginx/sites-enabled/example"},
	}, rows)
}

func TestParseKeepsEdgeDelimiters(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		section string
		data    string
		want    [][]string
	}{
		"nginx empty fields": {
			section: "nginx",
			data:    "a.com\tp\t/f\n\tproxy\t/etc/nginx/x\nb.com\thttp://x\t\nc.com\thttp://y\t/f",
			want: [][]string{
				{"a.com", "p", "/f"},
				{"", "proxy", "/etc/nginx/x"},
				{"b.com", "http://x", ""},
				{"c.com", "http://y", "/f"},
			},
		},
		"nginx crlf": {
			section: "nginx",
			data:    "b.com\thttp://x\t\r\n",
			want:    [][]string{{"b.com", "http://x", ""}},
		},
		"containers without ports": {
			section: "docker_containers",
			data:    "web\tnginx\tUp 2 hours\t",
			want:    [][]string{{"web", "nginx", "Up 2 hours", ""}},
		},
		"ports leading blanks": {
			section: "ports",
			data:    "   22 tcp sshd  \n",
			want:    [][]string{{"22", "tcp", "sshd"}},
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lookup(t, tt.section).Parse(tt.data))
		})
	}
}

func TestFormatNginxAllMalformed(t *testing.T) {
	t.Parallel()
	out := format(t, "nginx", "a\tb\nc\n", section.Options{})
	assert.Equal(t, "No Nginx domains found.\n", out)
}

func TestParseDockerContainersKeepsRemainder(t *testing.T) {
	t.Parallel()
	rows := lookup(t, "docker_containers").Parse("web\tnginx:1.25\tUp 3 hours\t80/tcp\textra")
	assert.Equal(t, [][]string{{"web", "nginx:1.25", "Up 3 hours", "80/tcp\textra"}}, rows)
}

func TestParseUsers(t *testing.T) {
	t.Parallel()
	rows := lookup(t, "users").Parse("root\tMon Oct 19 10:00:01 2026\nalice\tnever logged in\n")
	assert.Equal(t, [][]string{
		{"root", "Mon Oct 19 10:00:01 2026"},
		{"alice", "never logged in"},
	}, rows)
}

func TestParseSkipsBlankLinesAndCarriageReturns(t *testing.T) {
	t.Parallel()
	rows := lookup(t, "ports").Parse("\r\n80 tcp nginx\r\n\r\n  \n443 tcp nginx\r\n")
	assert.Equal(t, [][]string{{"80", "tcp", "nginx"}, {"443", "tcp", "nginx"}}, rows)
}

func TestRenderTitle(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format devopsfmt.Format
		want   string
	}{
		"table": {format: devopsfmt.Table, want: "|        Open ports         |\n"},
		"html":  {format: devopsfmt.HTML, want: "<caption>Open ports</caption>"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out := format(t, "ports", "8080 tcp nginx\n22 tcp sshd\n", section.Options{Format: tt.format, Title: "Open ports"})
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestFormatShortRowIsPadded(t *testing.T) {
	t.Parallel()
	out := format(t, "ports", "8080 tcp", section.Options{})
	assert.Contains(t, out, "| 8080 | tcp      |         |\n")
}

func TestRenderStructuredEmpty(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format devopsfmt.Format
		want   string
	}{
		"json":     {format: devopsfmt.JSON, want: "[]\n"},
		"yaml":     {format: devopsfmt.YAML, want: "[]\n"},
		"csv":      {format: devopsfmt.CSV, want: "REPOSITORY,TAG,IMAGE ID,SIZE\n"},
		"jsonl":    {format: devopsfmt.JSONL, want: ""},
		"markdown": {format: devopsfmt.Markdown, want: "No Docker images found.\n"},
		"plain":    {format: devopsfmt.Plain, want: "No Docker images found.\n"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out := format(t, "docker_images", "\n", section.Options{Format: tt.format})
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()
	out := format(t, "docker_images", "nginx\tlatest\ta1b2c3\t187MB\n", section.Options{Format: devopsfmt.JSONL})
	assert.Equal(t, `{"repository":"nginx","tag":"latest","image_id":"a1b2c3","size":"187MB"}`+"\n", out)
}

func TestRenderOptions(t *testing.T) {
	t.Parallel()
	out := format(t, "ports", "22 tcp sshd", section.Options{
		Border:      devopsfmt.BorderNone,
		HeaderStyle: strings.ToLower,
	})
	assert.Equal(t, "port  protocol  service\n----  --------  -------\n22    tcp       sshd\n", out)
}

func TestRenderWriteError(t *testing.T) {
	t.Parallel()
	s := lookup(t, "ports")
	assert.Error(t, s.Render(&errWriter{}, nil, section.Options{}))
	assert.Error(t, s.Render(&errWriter{}, [][]string{{"22", "tcp", "sshd"}}, section.Options{}))
}

func TestApply(t *testing.T) {
	t.Parallel()
	ws := section.Whitespace
	three := 3
	exact := true
	empty := "Nobody home."
	base := section.Default()

	reg, err := base.Apply(map[string]section.Override{
		"users": {
			Delimiter: &ws,
			Fields:    &three,
			Exact:     &exact,
			Header:    []string{"USERNAME", "PORT", "LAST LOGIN"},
			Empty:     &empty,
		},
	})
	require.NoError(t, err)

	s, err := reg.Lookup("users")
	require.NoError(t, err)
	assert.Equal(t, section.SplitRule{Delimiter: section.Whitespace, Fields: 3}, s.Split)
	assert.True(t, s.Exact)
	assert.Equal(t, []string{"USERNAME", "PORT", "LAST LOGIN"}, s.Header)
	assert.Equal(t, [][]string{{"root", "pts/0", "Mon Oct 19 10:00"}}, s.Parse("root pts/0 Mon Oct 19 10:00\nshort line"))

	var buf bytes.Buffer
	require.NoError(t, s.Format(&buf, "", section.Options{}))
	assert.Equal(t, "Nobody home.\n", buf.String())

	// The base registry is untouched.
	orig, err := base.Lookup("users")
	require.NoError(t, err)
	assert.Equal(t, section.SplitRule{Delimiter: section.Tab, Fields: 2}, orig.Split)
	assert.Equal(t, []string{"USERNAME", "LAST LOGIN"}, orig.Header)
}

func TestApplyErrors(t *testing.T) {
	t.Parallel()
	neg := -1
	_, err := section.Default().Apply(map[string]section.Override{"disks": {}})
	assert.ErrorIs(t, err, section.ErrUnknownSection)

	_, err = section.Default().Apply(map[string]section.Override{"ports": {Fields: &neg}})
	assert.ErrorIs(t, err, section.ErrInvalidSplitRule)
}

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
