// Package model defines the data structures exchanged between detectors,
// generators and the CLI.
package model

// PatternKind identifies the construct a pattern was detected from.
type PatternKind string

const (
	// PatternFunction is a function or method declaration.
	PatternFunction PatternKind = "function"
	// PatternClass is a class or struct declaration.
	PatternClass PatternKind = "class"
	// PatternInterface is an interface or trait declaration.
	PatternInterface PatternKind = "interface"
	// PatternConstructor is a constructor declaration (Java).
	PatternConstructor PatternKind = "constructor"
	// PatternException is a throws/except clause naming an error type.
	PatternException PatternKind = "exception"
	// PatternFormValidation is an email-like literal or form field.
	PatternFormValidation PatternKind = "form_validation"
	// PatternAPIIntegration is a networking call (fetch/axios).
	PatternAPIIntegration PatternKind = "api_integration"
	// PatternComponentIntegration is an exported UI component or module.
	PatternComponentIntegration PatternKind = "component_integration"
	// PatternDatabaseOperation is an ORM-like model call.
	PatternDatabaseOperation PatternKind = "database_operation"
)

// FieldKind classifies a form field.
type FieldKind string

// Available FieldKind values.
const (
	FieldEmail    FieldKind = "email"
	FieldPassword FieldKind = "password"
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
)

// OperationKind classifies a database operation.
type OperationKind string

// Available OperationKind values.
const (
	OperationCreate OperationKind = "create"
	OperationRead   OperationKind = "read"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
	OperationQuery  OperationKind = "query"
)

// SourceLocation points at the start of a match. Line and Column are 1-based.
type SourceLocation struct {
	File   string `json:"file" yaml:"file"`
	Line   int    `json:"line" yaml:"line"`
	Column int    `json:"column" yaml:"column"`
}

// Context is a best-effort attribution of the enclosing scope.
type Context struct {
	FunctionName string `json:"function_name,omitempty" yaml:"function_name,omitempty"`
	ClassName    string `json:"class_name,omitempty" yaml:"class_name,omitempty"`
	ModuleName   string `json:"module_name,omitempty" yaml:"module_name,omitempty"`
}

// FunctionPattern describes a function, method or constructor signature.
type FunctionPattern struct {
	Name       string   `json:"name" yaml:"name"`
	Parameters []string `json:"parameters" yaml:"parameters"`
	ReturnType string   `json:"return_type,omitempty" yaml:"return_type,omitempty"`
}

// ClassPattern describes a named type: class, struct, interface or error type.
type ClassPattern struct {
	Name string `json:"name" yaml:"name"`
}

// FormField describes a validated input field.
type FormField struct {
	Name     string    `json:"field_name" yaml:"field_name"`
	Kind     FieldKind `json:"field_kind" yaml:"field_kind"`
	Required bool      `json:"required" yaml:"required"`
}

// APIEndpoint describes an outbound HTTP call.
type APIEndpoint struct {
	Endpoint     string `json:"endpoint" yaml:"endpoint"`
	Method       string `json:"http_method" yaml:"http_method"`
	AuthRequired bool   `json:"authentication_required" yaml:"authentication_required"`
}

// ComponentPattern describes an exported component or module.
type ComponentPattern struct {
	Name         string   `json:"component_name" yaml:"component_name"`
	Kind         string   `json:"component_kind" yaml:"component_kind"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
	Props        []string `json:"declared_parameters" yaml:"declared_parameters"`
}

// DatabasePattern describes an ORM-like call.
type DatabasePattern struct {
	Operation   OperationKind `json:"operation_kind" yaml:"operation_kind"`
	Table       string        `json:"table_name" yaml:"table_name"`
	Method      string        `json:"method_name" yaml:"method_name"`
	Transaction bool          `json:"has_transaction" yaml:"has_transaction"`
}

// TestablePattern is the unit exchanged between detectors and generators.
// Exactly one payload matching Kind is set:
//   - function, constructor: Function
//   - class, interface, exception: Class
//   - form_validation: Form
//   - api_integration: API
//   - component_integration: Component
//   - database_operation: Database
type TestablePattern struct {
	ID         string            `json:"id" yaml:"id"`
	Kind       PatternKind       `json:"pattern_type" yaml:"pattern_type"`
	Function   *FunctionPattern  `json:"function,omitempty" yaml:"function,omitempty"`
	Class      *ClassPattern     `json:"class,omitempty" yaml:"class,omitempty"`
	Form       *FormField        `json:"form,omitempty" yaml:"form,omitempty"`
	API        *APIEndpoint      `json:"api,omitempty" yaml:"api,omitempty"`
	Component  *ComponentPattern `json:"component,omitempty" yaml:"component,omitempty"`
	Database   *DatabasePattern  `json:"database,omitempty" yaml:"database,omitempty"`
	Location   SourceLocation    `json:"location" yaml:"location"`
	Context    Context           `json:"context" yaml:"context"`
	Confidence float64           `json:"confidence" yaml:"confidence"`
}

// Name returns the most descriptive identifier carried by the payload.
func (p TestablePattern) Name() string {
	switch {
	case p.Function != nil:
		return p.Function.Name
	case p.Class != nil:
		return p.Class.Name
	case p.Form != nil:
		return p.Form.Name
	case p.API != nil:
		return p.API.Endpoint
	case p.Component != nil:
		return p.Component.Name
	case p.Database != nil:
		return p.Database.Method
	}

	return ""
}

// Valid reports whether the payload matches the declared kind.
func (p TestablePattern) Valid() bool {
	switch p.Kind {
	case PatternFunction, PatternConstructor:
		return p.Function != nil
	case PatternClass, PatternInterface, PatternException:
		return p.Class != nil
	case PatternFormValidation:
		return p.Form != nil
	case PatternAPIIntegration:
		return p.API != nil
	case PatternComponentIntegration:
		return p.Component != nil
	case PatternDatabaseOperation:
		return p.Database != nil
	}

	return false
}
