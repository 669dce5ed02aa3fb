package model

// TestCategory classifies a generated test case.
type TestCategory string

const (
	// CategoryHappyPath exercises the expected call with typical inputs.
	CategoryHappyPath TestCategory = "happy_path"
	// CategoryEdgeCase exercises unusual but valid inputs.
	CategoryEdgeCase TestCategory = "edge_case"
	// CategoryErrorHandling exercises invalid inputs.
	CategoryErrorHandling TestCategory = "error_handling"
	// CategoryBoundary exercises zero, empty and extreme values.
	CategoryBoundary TestCategory = "boundary_condition"
	// CategoryPerformance exercises timing sensitive paths.
	CategoryPerformance TestCategory = "performance"
	// CategoryIntegration exercises collaborating components.
	CategoryIntegration TestCategory = "integration"
)

// TestType distinguishes unit suites from integration suites.
type TestType string

// Available TestType values.
const (
	TestTypeUnit        TestType = "unit"
	TestTypeIntegration TestType = "integration"
)

// TestCase is a single generated test. Body holds literal target-language code.
type TestCase struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Input       map[string]any `json:"input,omitempty" yaml:"input,omitempty"`
	Expected    map[string]any `json:"expected_output,omitempty" yaml:"expected_output,omitempty"`
	Body        string         `json:"body" yaml:"body"`
	Category    TestCategory   `json:"category" yaml:"category"`
}

// TestSuite is the complete generated output for one input file.
type TestSuite struct {
	ID                  string     `json:"id" yaml:"id"`
	Name                string     `json:"name" yaml:"name"`
	Language            string     `json:"language" yaml:"language"`
	Framework           string     `json:"framework" yaml:"framework"`
	TestCases           []TestCase `json:"test_cases" yaml:"test_cases"`
	Imports             []string   `json:"imports" yaml:"imports"`
	TestType            TestType   `json:"test_type" yaml:"test_type"`
	SetupRequirements   []string   `json:"setup_requirements,omitempty" yaml:"setup_requirements,omitempty"`
	CleanupRequirements []string   `json:"cleanup_requirements,omitempty" yaml:"cleanup_requirements,omitempty"`
	CoverageTarget      float64    `json:"coverage_target" yaml:"coverage_target"`
	RenderedCode        string     `json:"rendered_code,omitempty" yaml:"rendered_code,omitempty"`
}
