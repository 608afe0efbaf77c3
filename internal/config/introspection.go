package config

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetKnownKeys returns all valid configuration keys based on the schema
func GetKnownKeys() map[string]bool {
	known := make(map[string]bool)
	addKnownKeys("", reflect.TypeOf(ConfigSchema{}), known)
	return known
}

// addKnownKeys recursively adds the mapstructure paths of t
func addKnownKeys(prefix string, t reflect.Type, known map[string]bool) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		// viper lowercases all keys
		key := strings.ToLower(tag)
		if prefix != "" {
			key = prefix + "." + key
		}
		known[key] = true

		switch field.Type.Kind() {
		case reflect.Struct:
			addKnownKeys(key, field.Type, known)
		case reflect.Map:
			known[key+".*"] = true
		}
	}
}

// matchesWildcard checks if a key matches a wildcard pattern
func matchesWildcard(pattern, key string) bool {
	patternParts := strings.Split(strings.ToLower(pattern), ".")
	keyParts := strings.Split(strings.ToLower(key), ".")

	if len(patternParts) != len(keyParts) {
		return false
	}
	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != keyParts[i] {
			return false
		}
	}
	return true
}

// IsKnownKey checks if a key is known, including wildcard matches
func IsKnownKey(known map[string]bool, key string) bool {
	if known[strings.ToLower(key)] {
		return true
	}
	for pattern := range known {
		if strings.Contains(pattern, "*") && matchesWildcard(pattern, key) {
			return true
		}
	}
	return false
}

// PrintConfig writes the merged configuration as YAML. With includeSources
// every leaf carries a comment naming the file or variable it came from.
func (c *Config) PrintConfig(w io.Writer, includeSources bool) error {
	node := c.toNode(c.AllSettings(), "", includeSources)
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{node}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return enc.Close()
}

func (c *Config) toNode(value interface{}, key string, includeSources bool) *yaml.Node {
	switch v := value.(type) {
	case map[string]interface{}:
		node := &yaml.Node{Kind: yaml.MappingNode}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			childKey := k
			if key != "" {
				childKey = key + "." + k
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: k},
				c.toNode(v[k], childKey, includeSources),
			)
		}
		return node
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			node = &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(v)}
		}
		if node.Kind == yaml.SequenceNode {
			node.Style = yaml.FlowStyle
		}
		if includeSources {
			node.LineComment = "# " + c.Source(key)
		}
		return node
	}
}
