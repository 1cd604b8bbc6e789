package bot

import (
	"sort"
	"strings"

	"preizo/internal/label"
)

// ParseFields reads one "feld: wert" pair per line. Keys may be contract
// names or German aliases; lines whose key is not recognized are returned in
// unknown. An empty value clears the field.
func ParseFields(text string) (fields map[string]string, unknown []string) {
	fields = make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := cutField(line)
		if !ok {
			unknown = append(unknown, line)
			continue
		}
		field, ok := label.CanonicalField(key)
		if !ok {
			unknown = append(unknown, strings.TrimSpace(key))
			continue
		}
		fields[field] = strings.TrimSpace(value)
	}
	return fields, unknown
}

// cutField splits at the first ':' or '='.
func cutField(line string) (key, value string, ok bool) {
	i := strings.IndexAny(line, ":=")
	if i <= 0 {
		return "", "", false
	}
	return line[:i], line[i+1:], true
}

// Draft is the field map collected for one chat.
type Draft map[string]string

// Merge applies fields on top of the draft; empty values remove a field.
func (d Draft) Merge(fields map[string]string) {
	for k, v := range fields {
		if v == "" {
			delete(d, k)
			continue
		}
		d[k] = v
	}
}

// Lines renders the draft as sorted "feld: wert" lines.
func (d Draft) Lines() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+": "+d[k])
	}
	return lines
}
