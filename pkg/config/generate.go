package config

import (
	"strings"

	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// starter is the shape written by Generate
type starter struct {
	Source   string            `toml:"source" yaml:"source"`
	Output   string            `toml:"output" yaml:"output"`
	Dest     string            `toml:"dest" yaml:"dest"`
	Shell    string            `toml:"shell" yaml:"shell"`
	Data     map[string]string `toml:"data" yaml:"data"`
	Commands map[string]string `toml:"commands" yaml:"commands"`
}

const generatedHeader = `# splice project configuration
#
# [data] values are available to @@show(name) and can be passed to
# includes. [commands] run through the shell once per build, when a
# file first shows them, and their output is substituted.
`

// Generate renders a starter project file in the given format, "toml" or
// "yaml"
func Generate(format string) ([]byte, error) {
	s := starter{
		Source:   "./src",
		Output:   ".",
		Dest:     ".",
		Shell:    "/bin/sh",
		Data:     map[string]string{"title": "My site"},
		Commands: map[string]string{"year": "date +%Y"},
	}

	var (
		body []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "toml", "":
		body, err = toml.Marshal(s)
	case "yaml", "yml":
		body, err = yaml.Marshal(s)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown config format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render config")
	}

	return append([]byte(generatedHeader+"\n"), body...), nil
}

// FileName returns the default project file name for format
func FileName(format string) string {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return "splice.yaml"
	default:
		return "splice.toml"
	}
}
