package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hogwarts-cloud/qcft/internal/models"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigLoad   = errors.New("failed to load chassis config")
	ErrDuplicateKey = errors.New("field is set under two spellings")
)

// tierKeyAliases maps the CloudFormation spelling of EBS properties onto the
// tier spec keys, so configs written against either shape load the same.
var tierKeyAliases = map[string]string{
	"VolumeType": "volume_type",
	"VolumeSize": "size_gib",
	"Iops":       "iops",
	"Throughput": "throughput",
}

var tierKeys = []string{"working_spec", "backing_spec"}

// Parse reads a chassis configuration file. Files ending in .yaml or .yml
// are read as YAML, anything else as JSON.
func Parse(path string) (models.ChassisConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.ChassisConfig{}, fmt.Errorf("%w: failed to read file: %w", ErrConfigLoad, err)
	}

	raw, err := decodeRaw(content, filepath.Ext(path))
	if err != nil {
		return models.ChassisConfig{}, fmt.Errorf("%w: failed to unmarshal %s: %w", ErrConfigLoad, path, err)
	}

	for _, key := range tierKeys {
		if tier, ok := raw[key].(map[string]any); ok {
			normalized, err := normalizeTierKeys(tier)
			if err != nil {
				return models.ChassisConfig{}, fmt.Errorf("%w: %s: %w", ErrConfigLoad, key, err)
			}
			raw[key] = normalized
		}
	}

	cfg := models.ChassisConfig{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  models.StringToVolumeTypeHookFunc(),
		ErrorUnused: true,
		Result:      &cfg,
	})
	if err != nil {
		return models.ChassisConfig{}, fmt.Errorf("%w: failed to create decoder: %w", ErrConfigLoad, err)
	}

	if err := decoder.Decode(raw); err != nil {
		return models.ChassisConfig{}, fmt.Errorf("%w: failed to decode %s: %w", ErrConfigLoad, path, err)
	}

	return cfg, nil
}

func decodeRaw(content []byte, ext string) (map[string]any, error) {
	raw := make(map[string]any)

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, err
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(content))
		decoder.UseNumber()
		if err := decoder.Decode(&raw); err != nil {
			return nil, err
		}
	}

	return raw, nil
}

// normalizeTierKeys rewrites CloudFormation spellings to the tier keys. A
// field given under both spellings is rejected.
func normalizeTierKeys(tier map[string]any) (map[string]any, error) {
	normalized := make(map[string]any, len(tier))

	for key, value := range tier {
		if canonical, ok := tierKeyAliases[key]; ok {
			if _, clash := tier[canonical]; clash {
				return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateKey, key, canonical)
			}
			key = canonical
		}
		normalized[key] = value
	}

	return normalized, nil
}
