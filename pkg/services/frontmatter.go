package services

import (
	"bytes"
	"fmt"
	"strings"

	fm "github.com/adrg/frontmatter"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var (
	yamlFormat = fm.NewFormat("---", "---", yaml.Unmarshal)
	tomlFormat = fm.NewFormat("+++", "+++", toml.Unmarshal)
)

// DecodeFrontMatter splits a content blob into its frontmatter map and body.
// A blob without a leading delimiter is returned whole as the body with a nil
// map. A blob whose envelope is present but unparseable fails with
// ErrBadFrontmatter so callers can tell corruption apart from absence.
func DecodeFrontMatter(content []byte) (map[string]interface{}, string, string, error) {
	str := string(content)

	var format string
	switch {
	case strings.HasPrefix(str, "---\n") || strings.HasPrefix(str, "---\r\n"):
		format = FormatYAML
	case strings.HasPrefix(str, "+++\n") || strings.HasPrefix(str, "+++\r\n"):
		format = FormatTOML
	default:
		return nil, strings.TrimSpace(str), "", nil
	}

	var matter map[string]interface{}
	f := yamlFormat
	if format == FormatTOML {
		f = tomlFormat
	}
	body, err := fm.Parse(strings.NewReader(str), &matter, f)
	if err != nil {
		return nil, "", format, fmt.Errorf("%w: %v", ErrBadFrontmatter, err)
	}
	return matter, strings.TrimSpace(string(body)), format, nil
}

// EncodeFrontMatter serializes a frontmatter map and body back into the
// delimited envelope. Round-trips are semantically equivalent, not
// byte-identical: key order and quoting normalize.
func EncodeFrontMatter(matter map[string]interface{}, body string, format string) ([]byte, error) {
	if matter == nil {
		matter = map[string]interface{}{}
	}

	var buf bytes.Buffer
	switch format {
	case FormatYAML, "":
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(matter); err != nil {
			return nil, err
		}
		buf.WriteString("---\n")
	case FormatTOML:
		buf.WriteString("+++\n")
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(matter); err != nil {
			return nil, err
		}
		buf.WriteString("+++\n")
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(strings.TrimSpace(body))
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// positionFrom reads the sort key, preferring position over sidebar_position.
func positionFrom(matter map[string]interface{}, fallback int) int {
	for _, key := range []string{"position", "sidebar_position"} {
		if v, ok := matter[key]; ok {
			switch n := v.(type) {
			case int:
				return n
			case int64:
				return int(n)
			case uint64:
				return int(n)
			case float64:
				return int(n)
			}
		}
	}
	return fallback
}
