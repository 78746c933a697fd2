package format

import (
	"bufio"
	"os"
	"strings"
)

// PropertiesParser reads Java .properties files: one key=value pair per
// line, "#" and "!" comment lines. A comment line directly above a pair is
// attached to the entry as its translator comment.
type PropertiesParser struct{}

func NewPropertiesParser() *PropertiesParser { return &PropertiesParser{} }

func (p *PropertiesParser) Format() string { return "properties" }

func (p *PropertiesParser) Extensions() []string { return []string{"properties"} }

func (p *PropertiesParser) Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	var comment string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			comment = ""
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			comment = strings.TrimSpace(line[1:])
			continue
		}
		sep := strings.IndexAny(line, "=:")
		if sep <= 0 {
			comment = ""
			continue
		}
		key := strings.TrimSpace(line[:sep])
		value := strings.TrimSpace(line[sep+1:])
		entries = append(entries, Entry{
			Context:  key,
			Singular: unescapeProperties(value),
			Comment:  comment,
		})
		comment = ""
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func unescapeProperties(s string) string {
	replacer := strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\:`, ":", `\=`, "=", `\\`, `\`)
	return replacer.Replace(s)
}
