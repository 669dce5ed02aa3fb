package generators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mouse-blink/uft/internal/domain/templates"
	m "github.com/mouse-blink/uft/internal/model"
)

type integrationGenerator struct {
	store templates.Store
}

// NewIntegration returns the generator for javascript integration suites
// built from API, component and database patterns.
func NewIntegration(store templates.Store) Generator {
	return &integrationGenerator{store: store}
}

// requirements accumulates setup and cleanup needs without duplicates.
type requirements struct {
	setup, cleanup map[string]bool
}

func (r *requirements) add(setup []string, cleanup ...string) {
	for _, s := range setup {
		r.setup[s] = true
	}

	for _, c := range cleanup {
		r.cleanup[c] = true
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

func (g *integrationGenerator) Generate(patterns []m.TestablePattern, opts ...Option) m.TestSuite {
	s := newSession("javascript", opts)
	d := jsDialects[s.opts.Framework]

	suite := newSuite(s.opts.Stem()+" integration", "javascript", s.opts.Framework)
	suite.TestType = m.TestTypeIntegration

	reqs := &requirements{setup: map[string]bool{}, cleanup: map[string]bool{}}
	usesHTTP := false

	suite.TestCases = collect(patterns, "//", func(p m.TestablePattern) ([]m.TestCase, error) {
		switch p.Kind {
		case m.PatternAPIIntegration:
			usesHTTP = true

			setup := []string{"HTTP test server (supertest)"}
			if p.API.AuthRequired {
				setup = append(setup, "Valid authentication token")
			}

			reqs.add(setup, "Reset HTTP mocks")

			return g.apiCase(p, s.names, d)
		case m.PatternComponentIntegration:
			setup := []string{"Component rendering environment (jsdom)"}
			if p.Component.Kind == "React" {
				setup = append(setup, "React Testing Library")
			}

			reqs.add(setup, "Unmount rendered components")

			return []m.TestCase{g.componentCase(p, s.names, d)}, nil
		case m.PatternDatabaseOperation:
			setup := []string{"Test database connection"}
			if p.Database.Transaction {
				setup = append(setup, "Transaction support")
			}

			reqs.add(setup, "Truncate test tables", "Close database connection")

			return []m.TestCase{g.databaseCase(p, s.names, d)}, nil
		}

		return skip("integration", p)
	})

	suite.SetupRequirements = sortedKeys(reqs.setup)
	suite.CleanupRequirements = sortedKeys(reqs.cleanup)

	suite.Imports = append(suite.Imports, d.header...)
	if usesHTTP {
		suite.Imports = append(suite.Imports,
			"const request = require('supertest');",
			"const app = require('../app'); // TODO: point at the application entry",
		)
	}

	assemble(g.store, &suite, "jest/suite", nil)

	return suite
}

func (g *integrationGenerator) apiCase(p m.TestablePattern, names *nameSet, d jsDialect) ([]m.TestCase, error) {
	api := p.API
	name := names.unique("test_api_integration_" + identifier(api.Method+" "+api.Endpoint))

	body, err := g.store.Render("jest/api", map[string]any{
		"It":          d.it,
		"TestName":    name,
		"Description": fmt.Sprintf("%s %s responds without a server error", api.Method, api.Endpoint),
		"Method":      api.Method,
		"Endpoint":    api.Endpoint,
		"Auth":        api.AuthRequired,
		"Assert":      d.is("response.status < 500", "true"),
	})
	if err != nil {
		return nil, err
	}

	tc := newCase(name, fmt.Sprintf("API %s %s", api.Method, api.Endpoint), m.CategoryIntegration, body)
	tc.Input = map[string]any{"endpoint": api.Endpoint, "method": api.Method, "auth_required": api.AuthRequired}

	return []m.TestCase{tc}, nil
}

func (g *integrationGenerator) componentCase(p m.TestablePattern, names *nameSet, d jsDialect) m.TestCase {
	comp := p.Component
	name := names.unique("test_component_integration_" + identifier(Snake(comp.Name)))

	props := make([]string, 0, len(comp.Props))
	for i, prop := range comp.Props {
		props = append(props, fmt.Sprintf("%s: %s", prop, SampleFor(prop, i, jsLiterals).Literal))
	}

	lines := []string{
		fmt.Sprintf("// %s component %s", comp.Kind, comp.Name),
	}
	if len(comp.Dependencies) > 0 {
		lines = append(lines, "// dependencies: "+strings.Join(comp.Dependencies, ", "))
	}

	lines = append(lines,
		fmt.Sprintf("const props = { %s };", strings.Join(props, ", ")),
		fmt.Sprintf("// TODO: render %s with props and assert on the output", comp.Name),
		d.defined("props"),
	)

	tc := newCase(name, fmt.Sprintf("Component %s", comp.Name), m.CategoryIntegration,
		jsTest(d.it, name, false, strings.Join(lines, "\n")))
	tc.Input = map[string]any{"props": comp.Props}

	return tc
}

func (g *integrationGenerator) databaseCase(p m.TestablePattern, names *nameSet, d jsDialect) m.TestCase {
	db := p.Database
	name := names.unique(fmt.Sprintf("test_database_%s_%s", db.Operation, identifier(Snake(db.Method))))

	lines := []string{fmt.Sprintf("// %s on table %s", db.Method, db.Table)}
	if db.Transaction {
		lines = append(lines, "// runs inside a transaction: assert rollback on failure")
	}

	lines = append(lines,
		fmt.Sprintf("// TODO: seed the %s table", db.Table),
		fmt.Sprintf("const result = null; // TODO: await the model's %s call", db.Method),
		d.is("result", "null"),
	)

	tc := newCase(name, fmt.Sprintf("Database %s via %s", db.Operation, db.Method), m.CategoryIntegration,
		jsTest(d.it, name, true, strings.Join(lines, "\n")))
	tc.Input = map[string]any{"table": db.Table, "operation": string(db.Operation), "transaction": db.Transaction}

	return tc
}
