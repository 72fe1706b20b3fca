package docs

import (
	"regexp"
	"strings"
)

var sectionHeaders = map[string]SectionKind{
	"parameters": SectionParameters,
	"args":       SectionParameters,
	"arguments":  SectionParameters,
	"attributes": SectionAttributes,
	"returns":    SectionReturns,
	"examples":   SectionExamples,
}

// entryPattern matches `name (type): description` and `name: description`.
var entryPattern = regexp.MustCompile(`^(\*{0,2}\w+)\s*(?:\(([^)]*)\))?:\s?(.*)$`)

// ParseSections parses a docstring into its ordered section list. Free text
// becomes text sections; recognised headers (Parameters/Args, Attributes,
// Returns, Examples) open typed blocks that run until the next line at the
// margin.
func ParseSections(doc string) []*Section {
	doc = Cleandoc(doc)
	if doc == "" {
		return nil
	}
	lines := strings.Split(doc, "\n")

	var sections []*Section
	var text []string
	flushText := func() {
		t := strings.TrimSpace(strings.Join(text, "\n"))
		text = nil
		if t != "" {
			sections = append(sections, &Section{Kind: SectionText, Text: t})
		}
	}

	i := 0
	for i < len(lines) {
		kind, ok := headerKind(lines[i])
		if !ok {
			text = append(text, lines[i])
			i++
			continue
		}
		flushText()
		block, next := collectBlock(lines, i+1)
		i = next
		switch kind {
		case SectionParameters, SectionAttributes:
			sections = append(sections, &Section{Kind: kind, Fields: parseEntries(block)})
		default:
			sections = append(sections, &Section{Kind: kind, Text: strings.TrimSpace(strings.Join(dedent(block), "\n"))})
		}
	}
	flushText()
	return sections
}

func headerKind(line string) (SectionKind, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasSuffix(trimmed, ":") || strings.HasPrefix(line, " ") {
		return "", false
	}
	kind, ok := sectionHeaders[strings.ToLower(strings.TrimSuffix(trimmed, ":"))]
	return kind, ok
}

// collectBlock gathers the indented body following a section header. The
// block ends at the first non-blank line back at the margin.
func collectBlock(lines []string, start int) ([]string, int) {
	i := start
	var block []string
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) != "" && !strings.HasPrefix(line, " ") {
			break
		}
		block = append(block, line)
		i++
	}
	// Trailing blank lines belong to the enclosing docstring, not the block.
	for len(block) > 0 && strings.TrimSpace(block[len(block)-1]) == "" {
		block = block[:len(block)-1]
	}
	return block, i
}

func dedent(block []string) []string {
	margin := -1
	for _, line := range block {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}
		if indent := len(line) - len(trimmed); margin < 0 || indent < margin {
			margin = indent
		}
	}
	out := make([]string, 0, len(block))
	for _, line := range block {
		if margin > 0 && len(line) >= margin {
			line = line[margin:]
		}
		out = append(out, line)
	}
	return out
}

// parseEntries parses the body of a parameters or attributes block. Entries
// sit at the block's base indentation; deeper lines continue the previous
// entry's description.
func parseEntries(block []string) []*FieldEntry {
	block = dedent(block)
	var entries []*FieldEntry
	for _, line := range block {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, " ") {
			// continuation of the previous entry
			if n := len(entries); n > 0 {
				prev := entries[n-1]
				if prev.Description != "" {
					prev.Description += " "
				}
				prev.Description += strings.TrimSpace(line)
			}
			continue
		}
		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entry := &FieldEntry{Name: m[1], Description: m[3]}
		if m[2] != "" {
			entry.Annotation = &Annotation{Source: m[2]}
		}
		entries = append(entries, entry)
	}
	return entries
}
