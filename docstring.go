package tooldoc

import (
	"regexp"
	"strings"
)

// paramDoc is one documented parameter from an Args block.
type paramDoc struct {
	Name string
	Type string // documented type token, e.g. "str" or "Optional[int]"
	Desc string
}

// splitDocstring splits a raw docstring on the first blank line. Text before
// the blank line is the summary (trimmed, used verbatim as the tool
// description); text after is the parameter block. With no blank line the
// whole docstring is summary and the block is absent. Multiple blank lines
// before the Args section act as the single separator (split on the first).
func splitDocstring(doc string) (summary, block string, hasBlock bool) {
	lines := strings.Split(doc, "\n")
	split := -1
	seenText := false
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			if seenText {
				split = i
				break
			}
			continue
		}
		seenText = true
	}
	if split < 0 {
		return strings.TrimSpace(doc), "", false
	}
	summary = strings.TrimSpace(strings.Join(lines[:split], "\n"))
	block = strings.Join(lines[split+1:], "\n")
	if strings.TrimSpace(block) == "" {
		return summary, "", false
	}
	return summary, block, true
}

// paramLineRe matches the start of a documented parameter: name(type): desc.
var paramLineRe = regexp.MustCompile(`^\s*(\w+)\(([^)]*)\)\s*:\s*(.*)$`)

// sectionRe matches a labeled section header that ends the Args block
// (Returns:, Raises:, Example:, ...).
var sectionRe = regexp.MustCompile(`^\s*(Returns|Raises|Yields|Example|Examples|Note|Notes)\s*:`)

// argsLabelRe matches the Args: (or equivalent) label opening the block.
var argsLabelRe = regexp.MustCompile(`^\s*(Args|Arguments|Parameters)\s*:\s*$`)

// parseParamDocs parses an Args block into documented parameters in
// first-seen order. A description continues across following lines until the
// next parameter line, a section header, or block end; continuation lines are
// joined with a single space. A section header (Returns:, Raises:, ...) ends
// parameter parsing. A block with no parseable entries at all is a hard
// error: the block must be fixed, a retry cannot succeed. Duplicate names
// keep the first entry.
func parseParamDocs(toolName, block string) ([]paramDoc, error) {
	lines := strings.Split(block, "\n")
	var docs []paramDoc
	seen := make(map[string]bool)
	cur := -1
	for _, line := range lines {
		if argsLabelRe.MatchString(line) {
			cur = -1
			continue
		}
		if sectionRe.MatchString(line) {
			break
		}
		if m := paramLineRe.FindStringSubmatch(line); m != nil {
			if seen[m[1]] {
				cur = -1
				continue
			}
			seen[m[1]] = true
			docs = append(docs, paramDoc{Name: m[1], Type: m[2], Desc: strings.TrimSpace(m[3])})
			cur = len(docs) - 1
			continue
		}
		if cur >= 0 && strings.TrimSpace(line) != "" {
			d := &docs[cur]
			if d.Desc == "" {
				d.Desc = strings.TrimSpace(line)
			} else {
				d.Desc += " " + strings.TrimSpace(line)
			}
		}
	}
	if len(docs) == 0 {
		return nil, &DocstringError{Tool: toolName, Reason: "no name(type): description entries found after summary"}
	}
	return docs, nil
}
