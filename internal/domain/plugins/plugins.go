// Package plugins renders editor extension scaffolds that invoke the uft
// binary for the registered languages.
package plugins

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	m "github.com/mouse-blink/uft/internal/model"
)

const (
	pluginID      = "uft"
	displayName   = "Unified Test Skeleton Generator"
	description   = "Generate test skeletons for the current file with uft"
	pluginVersion = "0.1.0"
)

// Language is a registered language as advertised by a plugin.
type Language struct {
	Name       string
	Extensions []string
}

// File is one scaffold file relative to the output directory.
type File struct {
	Path    string
	Content []byte
}

// Builder renders the files of one plugin target.
type Builder func(languages []Language) ([]File, error)

var builders = map[string]Builder{
	"zed":    Zed,
	"vscode": VSCode,
	"spring": Spring,
}

// Targets lists the supported plugin targets.
func Targets() []string {
	out := make([]string, 0, len(builders))
	for name := range builders {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}

// Build renders the scaffold for target.
func Build(target string, languages []Language) ([]File, error) {
	build, ok := builders[target]
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(m.ErrUnknownPlugin, "%q", target),
			"available targets: %s", strings.Join(Targets(), ", "),
		)
	}

	return build(languages)
}

type zedLanguage struct {
	Name       string   `toml:"name"`
	Extensions []string `toml:"extensions"`
}

type zedCommand struct {
	Name    string   `toml:"name"`
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

type zedExtension struct {
	ID            string        `toml:"id"`
	Name          string        `toml:"name"`
	Description   string        `toml:"description"`
	Version       string        `toml:"version"`
	SchemaVersion int           `toml:"schema_version"`
	Authors       []string      `toml:"authors"`
	Commands      []zedCommand  `toml:"commands"`
	Languages     []zedLanguage `toml:"languages"`
}

// Zed renders zed-uft/extension.toml.
func Zed(languages []Language) ([]File, error) {
	ext := zedExtension{
		ID:            pluginID,
		Name:          displayName,
		Description:   description,
		Version:       pluginVersion,
		SchemaVersion: 1,
		Authors:       []string{"uft contributors"},
		Commands: []zedCommand{
			{Name: "Generate Tests", Command: "uft", Args: []string{"generate", "$ZED_FILE"}},
			{Name: "Analyze File", Command: "uft", Args: []string{"analyze", "$ZED_FILE"}},
		},
	}

	for _, lang := range languages {
		ext.Languages = append(ext.Languages, zedLanguage{Name: lang.Name, Extensions: lang.Extensions})
	}

	data, err := toml.Marshal(ext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal zed extension")
	}

	return []File{{Path: path.Join("zed-uft", "extension.toml"), Content: data}}, nil
}

type vscodeCommand struct {
	Command  string `json:"command"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type vscodeProperty struct {
	Type        string `json:"type"`
	Default     string `json:"default"`
	Description string `json:"description"`
}

type vscodeManifest struct {
	Name             string            `json:"name"`
	DisplayName      string            `json:"displayName"`
	Description      string            `json:"description"`
	Version          string            `json:"version"`
	Engines          map[string]string `json:"engines"`
	Categories       []string          `json:"categories"`
	ActivationEvents []string          `json:"activationEvents"`
	Main             string            `json:"main"`
	Contributes      struct {
		Commands      []vscodeCommand `json:"commands"`
		Configuration struct {
			Title      string                    `json:"title"`
			Properties map[string]vscodeProperty `json:"properties"`
		} `json:"configuration"`
	} `json:"contributes"`
}

// VSCode renders vscode-uft/package.json.
func VSCode(languages []Language) ([]File, error) {
	manifest := vscodeManifest{
		Name:        pluginID,
		DisplayName: displayName,
		Description: description,
		Version:     pluginVersion,
		Engines:     map[string]string{"vscode": "^1.60.0"},
		Categories:  []string{"Testing", "Other"},
		Main:        "./out/extension.js",
	}

	for _, lang := range languages {
		manifest.ActivationEvents = append(manifest.ActivationEvents, "onLanguage:"+lang.Name)
	}

	manifest.Contributes.Commands = []vscodeCommand{
		{Command: "uft.generateTests", Title: "Generate Tests", Category: "uft"},
		{Command: "uft.analyzeFile", Title: "Analyze File", Category: "uft"},
	}
	manifest.Contributes.Configuration.Title = "uft"
	manifest.Contributes.Configuration.Properties = map[string]vscodeProperty{
		"uft.outputDirectory": {Type: "string", Default: "tests/", Description: "Output directory for generated tests"},
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal vscode manifest")
	}

	return []File{{Path: path.Join("vscode-uft", "package.json"), Content: append(data, '\n')}}, nil
}

type ideaAction struct {
	ID          string `xml:"id,attr"`
	Class       string `xml:"class,attr"`
	Text        string `xml:"text,attr"`
	Description string `xml:"description,attr"`
}

type ideaPlugin struct {
	XMLName     xml.Name `xml:"idea-plugin"`
	ID          string   `xml:"id"`
	Name        string   `xml:"name"`
	Version     string   `xml:"version"`
	Vendor      string   `xml:"vendor"`
	Description string   `xml:"description"`
	Depends     []string `xml:"depends"`
	Actions     struct {
		Group struct {
			ID      string       `xml:"id,attr"`
			Text    string       `xml:"text,attr"`
			Actions []ideaAction `xml:"action"`
		} `xml:"group"`
	} `xml:"actions"`
}

// Spring renders the IntelliJ platform descriptor used by the Spring tools
// plugin.
func Spring(languages []Language) ([]File, error) {
	names := make([]string, 0, len(languages))
	for _, lang := range languages {
		names = append(names, lang.Name)
	}

	plugin := ideaPlugin{
		ID:          "dev.uft.spring-plugin",
		Name:        displayName,
		Version:     pluginVersion,
		Vendor:      "uft contributors",
		Description: fmt.Sprintf("%s. Supported languages: %s.", description, strings.Join(names, ", ")),
		Depends:     []string{"com.intellij.modules.platform", "com.intellij.modules.java"},
	}
	plugin.Actions.Group.ID = "Uft.Menu"
	plugin.Actions.Group.Text = "uft"
	plugin.Actions.Group.Actions = []ideaAction{
		{ID: "Uft.GenerateTests", Class: "dev.uft.actions.GenerateTestsAction", Text: "Generate Tests", Description: "Generate tests for the current file"},
		{ID: "Uft.AnalyzeFile", Class: "dev.uft.actions.AnalyzeFileAction", Text: "Analyze File", Description: "List testable patterns in the current file"},
	}

	data, err := xml.MarshalIndent(plugin, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal plugin.xml")
	}

	content := append([]byte(xml.Header), data...)

	return []File{{
		Path:    path.Join("spring-uft", "src", "main", "resources", "META-INF", "plugin.xml"),
		Content: append(content, '\n'),
	}}, nil
}
