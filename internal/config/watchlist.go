package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type watchListFile struct {
	WatchWords []string `yaml:"watch_words"`
}

// LoadWatchList reads a YAML watch-list. The file holds either a plain
// sequence of phrases or a mapping with a watch_words sequence.
func LoadWatchList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read watch list: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse watch list %s: %w", path, err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	var words []string
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&words); err != nil {
			return nil, fmt.Errorf("parse watch list %s: %w", path, err)
		}
	case yaml.MappingNode:
		var file watchListFile
		if err := root.Decode(&file); err != nil {
			return nil, fmt.Errorf("parse watch list %s: %w", path, err)
		}
		words = file.WatchWords
	default:
		return nil, fmt.Errorf("parse watch list %s: %w", path, errors.New("expected a sequence or a watch_words mapping"))
	}
	return dedupeWords(words), nil
}
