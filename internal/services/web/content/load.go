package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"sigs.k8s.io/yaml"
)

// LoadFile reads and decodes a catalog file. The format follows the file
// extension: .yaml/.yml, .toml, or .json.
func LoadFile(path string) (Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Catalog{}, fmt.Errorf("content path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read content %s: %w", path, err)
	}
	catalog, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return Catalog{}, fmt.Errorf("decode content %s: %w", path, err)
	}
	return catalog, nil
}

// Decode parses catalog data in the format named by ext. Every format is
// normalized to JSON first so a single set of field names applies. Unknown
// fields are rejected.
func Decode(ext string, data []byte) (Catalog, error) {
	var (
		jsonData []byte
		err      error
	)
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), ".")) {
	case "yaml", "yml":
		jsonData, err = yaml.YAMLToJSON(data)
	case "toml":
		jsonData, err = tomlToJSON(data)
	case "json":
		jsonData = data
	default:
		return Catalog{}, fmt.Errorf("unsupported content format %q", ext)
	}
	if err != nil {
		return Catalog{}, err
	}

	var catalog Catalog
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&catalog); err != nil {
		return Catalog{}, err
	}
	return catalog.Normalize(), nil
}

func tomlToJSON(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
