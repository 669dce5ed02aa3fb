package model

import "encoding/json"

// ParameterFormat tells how a parameter token is reduced to its name.
type ParameterFormat string

const (
	// ParamNameType keeps the first word ("a int", "a: i32").
	ParamNameType ParameterFormat = "name_type"
	// ParamTypeName keeps the last word ("int a").
	ParamTypeName ParameterFormat = "type_name"
	// ParamNameOnly keeps the trimmed token.
	ParamNameOnly ParameterFormat = "name_only"
)

// LanguageConfig describes a language whose detection rules and templates
// are loaded from data at run time.
type LanguageConfig struct {
	Name         string          `json:"name" validate:"required"`
	Extensions   []string        `json:"extensions" validate:"min=1,dive,required"`
	Framework    string          `json:"framework"`
	Patterns     []PatternConfig `json:"patterns" validate:"min=1,dive"`
	TestTemplate TestTemplate    `json:"test_template"`
	Imports      []string        `json:"imports"`

	// Origin is the file the config was loaded from.
	Origin string `json:"-"`
}

// PatternConfig is one detection rule of a LanguageConfig.
type PatternConfig struct {
	Name          string        `json:"name"`
	PatternType   string        `json:"pattern_type" validate:"required"`
	Regex         string        `json:"regex" validate:"required"`
	CaptureGroups CaptureGroups `json:"capture_groups"`
	Confidence    float64       `json:"confidence" validate:"gte=0,lte=1"`
}

// CaptureGroups maps regex submatch indexes to pattern fields. A nil index
// means the field is not captured.
type CaptureGroups struct {
	Name               *int            `json:"name" validate:"omitempty,gte=0"`
	ReturnType         *int            `json:"return_type" validate:"omitempty,gte=0"`
	Parameters         *int            `json:"parameters" validate:"omitempty,gte=0"`
	ParameterSeparator string          `json:"parameter_separator"`
	ParameterFormat    ParameterFormat `json:"parameter_format" validate:"omitempty,oneof=name_type type_name name_only"`
}

// UnmarshalJSON accepts both the short keys and the *_index spellings.
func (c *CaptureGroups) UnmarshalJSON(data []byte) error {
	type plain CaptureGroups

	var aux struct {
		plain
		NameIndex       *int `json:"name_index"`
		ReturnTypeIndex *int `json:"return_type_index"`
		ParametersIndex *int `json:"parameters_index"`
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*c = CaptureGroups(aux.plain)

	if c.Name == nil {
		c.Name = aux.NameIndex
	}

	if c.ReturnType == nil {
		c.ReturnType = aux.ReturnTypeIndex
	}

	if c.Parameters == nil {
		c.Parameters = aux.ParametersIndex
	}

	return nil
}

// TestTemplate holds the text used to render a dynamic language suite.
// Placeholders are written as {{KEY}}.
type TestTemplate struct {
	Setup         string            `json:"setup"`
	TestFunction  string            `json:"test_function"`
	Teardown      string            `json:"teardown"`
	FileExtension string            `json:"file_extension"`
	Placeholders  map[string]string `json:"placeholders"`
}

// LanguageInfo summarises a registered language for listings.
type LanguageInfo struct {
	Name       string   `json:"name" yaml:"name"`
	Dynamic    bool     `json:"dynamic" yaml:"dynamic"`
	Extensions []string `json:"extensions" yaml:"extensions"`
	Frameworks []string `json:"frameworks" yaml:"frameworks"`
	TestFormat string   `json:"test_format" yaml:"test_format"`
	Coverage   float64  `json:"coverage_target" yaml:"coverage_target"`
}
