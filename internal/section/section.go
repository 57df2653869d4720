// Package section turns devopsfetch.sh output into tables.
//
// Each kind of report the script prints (open ports, Docker images, nginx
// hosts, ...) is a [Section]: a fixed header, a [SplitRule] that turns one
// line into one row, and the message printed when nothing is left to show.
package section

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Hamed-Ayodeji/devopsfmt"
)

// ErrUnknownSection is returned when a section name is not registered.
var ErrUnknownSection = errors.New("unknown section")

// Section is one named text-to-table transformation.
type Section struct {
	Name   string
	Header []string
	Split  SplitRule
	// Exact drops rows whose field count differs from the header's.
	Exact bool
	// Empty is printed instead of a table when no rows remain.
	Empty string
}

// Override replaces parts of a built-in section. Nil and empty fields keep
// the built-in value.
type Override struct {
	Delimiter *string  `mapstructure:"delimiter"`
	Fields    *int     `mapstructure:"fields"`
	Exact     *bool    `mapstructure:"exact"`
	Header    []string `mapstructure:"header"`
	Empty     *string  `mapstructure:"empty"`
}

// Options control how rows are rendered.
type Options struct {
	// Format defaults to devopsfmt.Table.
	Format      devopsfmt.Format
	Border      devopsfmt.BorderStyle
	HeaderStyle func(string) string
	Title       string
}

var builtin = []Section{
	{
		Name:   "ports",
		Header: []string{"PORT", "PROTOCOL", "SERVICE"},
		Split:  SplitRule{Delimiter: Whitespace},
		Empty:  "No open ports found.",
	},
	{
		Name:   "port_info",
		Header: []string{"PROTOCOL", "PORT", "IP", "PID", "SERVICE"},
		Split:  SplitRule{Delimiter: Whitespace},
		Empty:  "No service is using the specified port.",
	},
	{
		Name:   "docker_images",
		Header: []string{"REPOSITORY", "TAG", "IMAGE ID", "SIZE"},
		Split:  SplitRule{Delimiter: Tab},
		Empty:  "No Docker images found.",
	},
	{
		Name:   "docker_containers",
		Header: []string{"NAMES", "IMAGE", "STATUS", "PORTS"},
		Split:  SplitRule{Delimiter: Tab, Fields: 4},
		Empty:  "No running Docker containers found.",
	},
	{
		Name:   "docker_info",
		Header: []string{"ATTRIBUTE", "VALUE"},
		Split:  SplitRule{Delimiter: Tab},
		Empty:  "No details found for the specified Docker container.",
	},
	{
		Name:   "nginx",
		Header: []string{"DOMAIN", "PROXY", "CONFIGURATION FILE"},
		Split:  SplitRule{Delimiter: Tab, Fields: 3},
		Exact:  true,
		Empty:  "No Nginx domains found.",
	},
	{
		Name:   "users",
		Header: []string{"USERNAME", "LAST LOGIN"},
		Split:  SplitRule{Delimiter: Tab, Fields: 2},
		Empty:  "No users with login records found.",
	},
}

// Registry is an ordered set of sections.
type Registry struct {
	sections []Section
}

// Default returns a registry holding the built-in sections.
func Default() *Registry {
	return &Registry{sections: cloneSections(builtin)}
}

// Names returns the section names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.sections))
	for i, s := range r.sections {
		names[i] = s.Name
	}
	return names
}

// Sections returns a copy of the registered sections.
func (r *Registry) Sections() []Section {
	return cloneSections(r.sections)
}

// Lookup returns the section called name.
func (r *Registry) Lookup(name string) (*Section, error) {
	for i := range r.sections {
		if r.sections[i].Name == name {
			s := cloneSection(r.sections[i])
			return &s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (choose from %s)", ErrUnknownSection, name, strings.Join(r.Names(), ", "))
}

// Apply returns a new registry with overrides applied by section name.
// The receiver is not modified.
func (r *Registry) Apply(overrides map[string]Override) (*Registry, error) {
	out := &Registry{sections: cloneSections(r.sections)}
	for name, o := range overrides {
		idx := slices.IndexFunc(out.sections, func(s Section) bool { return s.Name == name })
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
		s := &out.sections[idx]
		if o.Delimiter != nil {
			s.Split.Delimiter = *o.Delimiter
		}
		if o.Fields != nil {
			s.Split.Fields = *o.Fields
		}
		if o.Exact != nil {
			s.Exact = *o.Exact
		}
		if len(o.Header) > 0 {
			s.Header = slices.Clone(o.Header)
		}
		if o.Empty != nil {
			s.Empty = *o.Empty
		}
		if err := s.Split.Validate(); err != nil {
			return nil, fmt.Errorf("section %q: %w", name, err)
		}
	}
	return out, nil
}

// Parse splits data into rows. Each non-blank line, minus a trailing "\r",
// is split by the section's rule. Leading and trailing delimiters count, so
// "\tproxy\tfile" has an empty first field. With Exact set, rows whose field
// count differs from the header are dropped.
func (s *Section) Parse(data string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := s.Split.Split(strings.TrimSuffix(line, "\r"))
		if s.Exact && len(row) != len(s.Header) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// Table wraps rows in a renderable table with the section's header.
func (s *Section) Table(rows [][]string, opts Options) *devopsfmt.Data {
	return &devopsfmt.Data{
		Title:       opts.Title,
		Header:      s.Header,
		Rows:        rows,
		Border:      opts.Border,
		HeaderStyle: opts.HeaderStyle,
	}
}

// Render writes rows in the requested format. With no rows, human formats
// get the section's Empty message; structured formats get an empty document
// so that they stay parseable.
func (s *Section) Render(w io.Writer, rows [][]string, opts Options) error {
	f := opts.Format
	if f == "" {
		f = devopsfmt.Table
	}
	if len(rows) == 0 && !f.Structured() {
		_, err := fmt.Fprintln(w, s.Empty)
		return err
	}
	return devopsfmt.Write(w, f, s.Table(rows, opts))
}

// Format parses data and renders it. It is Parse followed by Render.
func (s *Section) Format(w io.Writer, data string, opts Options) error {
	return s.Render(w, s.Parse(data), opts)
}

func cloneSection(s Section) Section {
	s.Header = slices.Clone(s.Header)
	return s
}

func cloneSections(in []Section) []Section {
	out := make([]Section, len(in))
	for i, s := range in {
		out[i] = cloneSection(s)
	}
	return out
}
