package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	panelerrors "github.com/alexisbeaulieu97/gridpanel/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// decodeFile reads path and unmarshals it into out. out keeps any values the
// document does not mention.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return panelerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return panelerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
