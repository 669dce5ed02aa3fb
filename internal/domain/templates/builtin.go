package templates

// builtin templates are keyed "<family>/<kind>". Case templates receive
// pre-rendered call and assertion lines so one template serves every
// framework of a family.
var builtin = map[string]string{
	// javascript: jest, vitest and mocha
	"jest/function": `{{.It}}('{{.TestName}}', () => {
  // {{.Description}}
  const result = {{.Call}};
  {{.Assert}}
});`,

	"jest/async": `{{.It}}('{{.TestName}}', async () => {
  // {{.Description}}
  const result = await {{.Call}};
  {{.Assert}}
});`,

	"jest/class": `{{.It}}('{{.TestName}}', () => {
  // {{.Description}}
  const instance = new {{.Name}}();
  {{.Assert}}
});`,

	"jest/api": `{{.It}}('{{.TestName}}', async () => {
  // {{.Description}}
  const response = await request(app)
    .{{lower .Method}}('{{.Endpoint}}'){{if .Auth}}
    .set('Authorization', 'Bearer test-token'){{end}};
  {{.Assert}}
});`,

	"jest/suite": `{{range .Imports}}{{.}}
{{end}}
describe('{{.Name}}', () => {
{{- range .Cases}}
{{indent 2 .}}
{{end -}}
});
`,

	// python: pytest and unittest
	"pytest/function": `{{range .Decorators}}{{.}}
{{end}}def {{.TestName}}(self):
    """{{.Description}}"""
    result = {{.Call}}
    {{.Assert}}`,

	"pytest/async": `{{range .Decorators}}{{.}}
{{end}}async def {{.TestName}}(self):
    """{{.Description}}"""
    result = await {{.Call}}
    {{.Assert}}`,

	"pytest/class": `def {{.TestName}}(self):
    """{{.Description}}"""
    instance = {{.Name}}()
    {{.Assert}}`,

	"pytest/api": `def {{.TestName}}(self):
    """{{.Description}}"""
    response = requests.{{lower .Method}}(BASE_URL + '{{.Endpoint}}'{{if .Auth}}, headers={'Authorization': 'Bearer test-token'}{{end}})
    {{.Assert}}`,

	"pytest/suite": `{{range .Imports}}{{.}}
{{end}}

class {{.Name}}:
{{- range .Cases}}

{{indent 4 .}}
{{- else}}
    pass
{{- end}}
`,

	"unittest/suite": `{{range .Imports}}{{.}}
{{end}}

class {{.Name}}({{.Base}}):
{{- range .Cases}}

{{indent 4 .}}
{{- else}}
    pass
{{- end}}


if __name__ == '__main__':
    unittest.main()
`,

	// rust: cargo-test and nextest
	"cargo/function": `#[test]
fn {{.TestName}}() {
    // {{.Description}}
    let result = {{.Call}};
    {{.Assert}}
}`,

	"cargo/async": `#[tokio::test]
async fn {{.TestName}}() {
    // {{.Description}}
    let result = {{.Call}}.await;
    {{.Assert}}
}`,

	"cargo/struct": `#[test]
fn {{.TestName}}() {
    // {{.Description}}
    let instance = {{.Name}}::default();
    let _ = format!("{:?}", instance);
}`,

	"cargo/suite": `{{range .Imports}}{{.}}
{{end}}{{if .Imports}}
{{end}}#[cfg(test)]
mod tests {
    use super::*;
{{- range .Cases}}

{{indent 4 .}}
{{- end}}
}
`,

	// go: testing and testify
	"go-testing/function": `func {{.TestName}}(t *testing.T) {
	tests := []struct {
		name string
{{- range .Fields}}
		{{.}}
{{- end}}
	}{
{{- range .Rows}}
		{
			name: "{{.Name}}",
{{- range .Values}}
			{{.}},
{{- end}}
		},
{{- end}}
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			{{.Invoke}}
{{- if .Assert}}
			{{.Assert}}
{{- end}}
		})
	}
}`,

	"go-testing/struct": `func {{.TestName}}(t *testing.T) {
	instance := {{.Name}}{}

	{{.Assert}}
}`,

	"go-testing/interface": `type mock{{.Name}} struct {
	{{.Name}}
}

func {{.TestName}}(t *testing.T) {
	var _ {{.Name}} = &mock{{.Name}}{}
	// {{.Description}}
}`,

	"go-testing/benchmark": `func {{.TestName}}(b *testing.B) {
	for i := 0; i < b.N; i++ {
		{{.Call}}
	}
}`,

	"go-testing/suite": `package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{- range .Cases}}

{{.}}
{{- end}}
`,

	// java: junit5 and testng
	"junit/method": `@Test
{{.Visibility}}void {{.TestName}}() {
    // Arrange
    {{.ClassName}} instance = new {{.ClassName}}();
{{- range .Fields}}
    {{.Type}} {{.Name}} = {{.Value}};
{{- end}}

    // Act
    {{if .Void}}instance.{{.Call}};{{else}}{{.ReturnType}} result = instance.{{.Call}};{{end}}

    // Assert
    {{.Assert}}
}`,

	"junit/class": `@Test
{{.Visibility}}void {{.TestName}}() {
    // {{.Description}}
    {{.Name}} instance = new {{.Name}}();
    {{.Assert}}
}`,

	"junit/integration": `@Test
{{.Visibility}}void {{.TestName}}() {
    // {{.Description}}
{{- range .Fields}}
    {{.Type}} {{.Name}} = {{.Value}};
{{- end}}
    {{.Name}} instance = new {{.Name}}({{.Args}});
    {{.Assert}}
}`,

	"junit/mock": `@Test
{{.Visibility}}void {{.TestName}}() {
    // {{.Description}}
    {{.Name}} mock = Mockito.mock({{.Name}}.class);
    {{.Assert}}
}`,

	"junit/suite": `{{if .Package}}package {{.Package}};

{{end}}{{range .Imports}}import {{.}};
{{end}}
public class {{.Name}} {
{{- range .Cases}}

{{indent 4 .}}
{{- end}}
}
`,
}
