package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var sectionHeader = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// EncodeTOML writes cfg as TOML with top-level keys first and sections sorted.
func EncodeTOML(w io.Writer, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if _, err := io.WriteString(w, sortTOMLSections(buf.String())); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// WriteConfigOrdered writes the configuration to path with deterministic ordering.
func WriteConfigOrdered(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := EncodeTOML(&buf, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections keeps the preamble (top-level keys) in place and sorts
// [section] blocks alphabetically by header.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var (
		sections []section
		current  *section
		preamble []string
	)

	for _, line := range strings.Split(content, "\n") {
		if match := sectionHeader.FindStringSubmatch(line); match != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: match[2], lines: []string{line}}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var result strings.Builder
	for _, line := range preamble {
		result.WriteString(line)
		result.WriteString("\n")
	}
	for _, sec := range sections {
		if s := result.String(); s != "" && !strings.HasSuffix(s, "\n\n") {
			result.WriteString("\n")
		}
		for _, line := range sec.lines {
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	output := strings.TrimRight(result.String(), "\n")
	if output != "" {
		output += "\n"
	}
	return output
}
