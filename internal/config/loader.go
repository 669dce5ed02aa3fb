package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/muhammadmuzzammil1998/jsonc"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/mouse-blink/uft/internal/logger"
	m "github.com/mouse-blink/uft/internal/model"
)

const languageSchemaURL = "mem://schemas/language.schema.json"

//go:embed language.schema.json
var languageSchemaJSON []byte

var (
	compileOnce    sync.Once
	languageSchema *jsonschema.Schema
	compileErr     error
)

var validate = validator.New()

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(languageSchemaJSON))
		if err != nil {
			compileErr = errors.Wrap(err, "decode language schema")

			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(languageSchemaURL, doc); err != nil {
			compileErr = errors.Wrap(err, "register language schema")

			return
		}

		languageSchema, compileErr = c.Compile(languageSchemaURL)
	})

	return languageSchema, compileErr
}

// LoadLanguageConfigs reads every .json and .jsonc file in dir, in name
// order. A missing directory yields no configs. Invalid files are logged
// and skipped so the remaining languages still load.
func LoadLanguageConfigs(dir string) ([]m.LanguageConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Logger.Debugw("language config directory not found", "dir", dir)

			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to read language config directory %s", dir)
	}

	var configs []m.LanguageConfig

	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".json" && ext != ".jsonc") {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		cfg, err := LoadLanguageConfig(path)
		if err != nil {
			logger.Logger.Warnw("skipping language config",
				"path", path,
				"error", err,
			)

			continue
		}

		logger.Logger.Infow("loaded language config",
			"language", cfg.Name,
			"path", path,
		)

		configs = append(configs, cfg)
	}

	return configs, nil
}

// LoadLanguageConfig reads and validates a single language config file.
func LoadLanguageConfig(path string) (m.LanguageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return m.LanguageConfig{}, errors.Wrapf(err, "failed to read %s", path)
	}

	return ParseLanguageConfig(data, path)
}

// ParseLanguageConfig decodes a JSON or JSONC document and validates it
// against the schema, the struct rules and the regex syntax, in that order.
// Every failure is an ErrInvalidLanguageConfig.
func ParseLanguageConfig(data []byte, origin string) (m.LanguageConfig, error) {
	clean := jsonc.ToJSON(data)

	schema, err := compiledSchema()
	if err != nil {
		return m.LanguageConfig{}, err
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(clean))
	if err != nil {
		return m.LanguageConfig{}, invalid(origin, "decode", err)
	}

	if err := schema.Validate(instance); err != nil {
		return m.LanguageConfig{}, invalid(origin, "schema", err)
	}

	var cfg m.LanguageConfig
	if err := json.Unmarshal(clean, &cfg); err != nil {
		return m.LanguageConfig{}, invalid(origin, "decode", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return m.LanguageConfig{}, invalid(origin, "rules", err)
	}

	for _, p := range cfg.Patterns {
		if _, err := regexp.Compile(p.Regex); err != nil {
			return m.LanguageConfig{}, errors.Mark(
				errors.Wrapf(m.ErrInvalidRegex, "%s: pattern %q: %v", origin, p.Name, err),
				m.ErrInvalidLanguageConfig,
			)
		}
	}

	cfg.Origin = origin

	return cfg, nil
}

func invalid(origin, stage string, cause error) error {
	return errors.WithHint(
		errors.Wrapf(m.ErrInvalidLanguageConfig, "%s (%s)", origin, stage),
		cause.Error(),
	)
}
