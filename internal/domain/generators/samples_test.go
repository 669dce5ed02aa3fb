package generators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleFor(t *testing.T) {
	tests := []struct {
		param    string
		index    int
		wantKind SampleKind
		wantLit  string
	}{
		{"email", 0, SampleEmail, "'test@example.com'"},
		{"userEmail", 3, SampleEmail, "'test@example.com'"},
		{"user_id", 1, SampleID, "2"},
		{"name", 0, SampleName, "'TestName1'"},
		{"age", 0, SampleNumber, "42"},
		{"itemCount", 0, SampleNumber, "42"},
		{"price", 0, SamplePrice, "19.99"},
		{"flag", 0, SampleBool, "true"},
		{"list", 0, SampleList, "[1, 2, 3]"},
		{"payload", 2, SampleText, "'test_value_3'"},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			got := SampleFor(tt.param, tt.index, jsLiterals)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantLit, got.Literal)
		})
	}
}

func TestSampleFor_LiteralsPerLanguage(t *testing.T) {
	assert.Equal(t, "True", SampleFor("flag", 0, pythonLiterals).Literal)
	assert.Equal(t, "vec![1, 2, 3]", SampleFor("items_list", 0, rustLiterals).Literal)
	assert.Equal(t, "[]int{1, 2, 3}", SampleFor("array", 0, goLiterals).Literal)
	assert.Equal(t, "List.of(1, 2, 3)", SampleFor("array", 0, javaLiterals).Literal)
	assert.Equal(t, `"TestName1"`, SampleFor("name", 0, goLiterals).Literal)
}

func TestSampleFor_EmailShape(t *testing.T) {
	for _, lits := range []Literals{goLiterals, rustLiterals, pythonLiterals, jsLiterals, javaLiterals} {
		s := SampleFor("contact_email", 0, lits)
		value, ok := s.Value.(string)
		assert.True(t, ok)

		at := strings.Index(value, "@")
		assert.Equal(t, 1, strings.Count(value, "@"))
		assert.Contains(t, value[at:], ".")
	}
}

func TestExpectedFor(t *testing.T) {
	tests := []struct {
		name       string
		returnType string
		fn         string
		types      TypeTable
		want       ExpectKind
	}{
		{"declared rust float", "f64", "area", rustTypes, ExpectNumber},
		{"declared java long", "long", "total", javaTypes, ExpectNumber},
		{"declared generic list", "Vec<String>", "names", rustTypes, ExpectList},
		{"declared go slice", "[]string", "keys", goTypes, ExpectList},
		{"snake predicate", "", "is_valid", pythonTypes, ExpectBool},
		{"camel predicate", "undefined", "isReady", jsTypes, ExpectBool},
		{"not a predicate", "undefined", "issue", jsTypes, ExpectUnknown},
		{"validator", "", "validate_form", pythonTypes, ExpectBool},
		{"arithmetic", "", "calculate_total", pythonTypes, ExpectNumber},
		{"getter list", "", "get_all_users", pythonTypes, ExpectList},
		{"getter object", "", "getConfig", jsTypes, ExpectObject},
		{"getter string", "", "get_title", pythonTypes, ExpectString},
		{"unknown", "", "run", pythonTypes, ExpectUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpectedFor(tt.returnType, tt.fn, tt.types))
		})
	}
}

func TestBoundaryFor(t *testing.T) {
	assert.Equal(t, `""`, BoundaryFor(SampleEmail, goLiterals))
	assert.Equal(t, "0", BoundaryFor(SampleNumber, rustLiterals))
	assert.Equal(t, "False", BoundaryFor(SampleBool, pythonLiterals))
	assert.Equal(t, "[]", BoundaryFor(SampleList, jsLiterals))
	assert.Equal(t, "nil", BoundaryFor(SampleList, goLiterals))
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "calculate_area", Snake("calculateArea"))
	assert.Equal(t, "http_server", Snake("HTTPServer"))
	assert.Equal(t, "already_snake", Snake("already_snake"))
	assert.Equal(t, "UserService", Pascal("user_service"))
	assert.Equal(t, "post_api_users_id", identifier("POST /api/users/:id"))
}
