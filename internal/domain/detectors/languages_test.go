package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/uft/internal/model"
)

func kinds(patterns []m.TestablePattern) []m.PatternKind {
	out := make([]m.PatternKind, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, p.Kind)
	}

	return out
}

func TestGoDetector(t *testing.T) {
	t.Run("single function", func(t *testing.T) {
		patterns := NewGo().Detect("add.go", "func Add(a int, b int) int { return a + b }")
		require.Len(t, patterns, 1)

		fn := patterns[0].Function
		require.NotNil(t, fn)
		assert.Equal(t, m.PatternFunction, patterns[0].Kind)
		assert.Equal(t, "Add", fn.Name)
		assert.Equal(t, []string{"a", "b"}, fn.Parameters)
		assert.Equal(t, "int", fn.ReturnType)
	})

	t.Run("methods, grouped params and missing return", func(t *testing.T) {
		source := `package store

type Store struct {
	db *sql.DB
}

type Reader interface {
	Read(id int) (string, error)
}

func (s *Store) Put(key, value string) {
}

func helper(string, int) {}

const admin = "admin@example.com"
`
		patterns := NewGo().Detect("store.go", source)

		assert.Equal(t, []m.PatternKind{
			m.PatternFunction, m.PatternFunction,
			m.PatternClass, m.PatternInterface,
			m.PatternFormValidation,
		}, kinds(patterns))

		put := patterns[0]
		assert.Equal(t, "Put", put.Function.Name)
		assert.Equal(t, []string{"key", "value"}, put.Function.Parameters)
		assert.Equal(t, "void", put.Function.ReturnType)
		assert.Equal(t, "Store", put.Context.ClassName)

		assert.Equal(t, []string{"param_string", "param_int"}, patterns[1].Function.Parameters)
		assert.Equal(t, "Store", patterns[2].Class.Name)
		assert.Equal(t, "Reader", patterns[3].Class.Name)
		assert.Equal(t, m.FieldEmail, patterns[4].Form.Kind)
	})
}

func TestRustDetector(t *testing.T) {
	source := `pub struct Point { x: i32 }

pub trait Shape {
    fn area(&self) -> f64;
}

fn add(a: i32, b: i32) -> i32 { a + b }

fn main() {
    println!("hi");
}
`
	patterns := NewRust().Detect("lib.rs", source)

	require.Equal(t, []m.PatternKind{
		m.PatternFunction, m.PatternFunction, m.PatternFunction,
		m.PatternClass, m.PatternInterface,
	}, kinds(patterns))

	area := patterns[0].Function
	assert.Equal(t, "area", area.Name)
	assert.Empty(t, area.Parameters)
	assert.Equal(t, "f64", area.ReturnType)

	add := patterns[1].Function
	assert.Equal(t, []string{"a", "b"}, add.Parameters)
	assert.Equal(t, "i32", add.ReturnType)

	assert.Equal(t, "()", patterns[2].Function.ReturnType)
	assert.Equal(t, "Point", patterns[3].Class.Name)
	assert.Equal(t, "Shape", patterns[4].Class.Name)
}

func TestPythonDetector(t *testing.T) {
	t.Run("functions, classes and exceptions", func(t *testing.T) {
		source := `class Calculator:
    def __init__(self, precision=2):
        self.precision = precision

    def calculate_area(self, width: float, height: float) -> float:
        try:
            return width * height
        except ValueError:
            raise
`
		patterns := NewPython().Detect("calc.py", source)

		require.Equal(t, []m.PatternKind{
			m.PatternFunction, m.PatternFunction, m.PatternClass, m.PatternException,
		}, kinds(patterns))

		assert.Equal(t, []string{"precision"}, patterns[0].Function.Parameters)
		assert.Equal(t, "None", patterns[0].Function.ReturnType)
		assert.Equal(t, "Calculator", patterns[0].Context.ClassName)

		area := patterns[1].Function
		assert.Equal(t, []string{"width", "height"}, area.Parameters)
		assert.Equal(t, "float", area.ReturnType)

		assert.Equal(t, "ValueError", patterns[3].Class.Name)
	})

	t.Run("email input is a required form field", func(t *testing.T) {
		source := `html = '<input type="email" name="contact">'`

		patterns := NewPython().Detect("forms.py", source)
		require.Len(t, patterns, 1)

		form := patterns[0].Form
		require.NotNil(t, form)
		assert.Equal(t, m.PatternFormValidation, patterns[0].Kind)
		assert.Equal(t, m.FieldEmail, form.Kind)
		assert.True(t, form.Required)
		assert.Equal(t, "contact", form.Name)
	})

	t.Run("django email field", func(t *testing.T) {
		source := "class Profile(models.Model):\n    email = models.EmailField(blank=True)\n"

		patterns := NewPython().Detect("models.py", source)
		require.Len(t, patterns, 2)

		form := patterns[1].Form
		assert.Equal(t, "email", form.Name)
		assert.False(t, form.Required)
	})
}

func TestJavaScriptDetector(t *testing.T) {
	t.Run("functions, arrows and classes", func(t *testing.T) {
		source := `function add(a, b) { return a + b; }
const fetchUser = async (id) => { return api.get(id); };
class Cart {}
`
		patterns := NewJavaScript().Detect("app.js", source)

		require.Equal(t, []m.PatternKind{
			m.PatternFunction, m.PatternFunction, m.PatternClass,
		}, kinds(patterns))

		assert.Equal(t, []string{"a", "b"}, patterns[0].Function.Parameters)
		assert.Equal(t, "undefined", patterns[0].Function.ReturnType)
		assert.Equal(t, "fetchUser", patterns[1].Function.Name)
		assert.Equal(t, []string{"id"}, patterns[1].Function.Parameters)
	})

	t.Run("email input", func(t *testing.T) {
		patterns := NewJavaScript().Detect("form.jsx", `<input type="email" />`)
		require.Len(t, patterns, 1)

		assert.Equal(t, m.PatternFormValidation, patterns[0].Kind)
		assert.Equal(t, m.FieldEmail, patterns[0].Form.Kind)
		assert.True(t, patterns[0].Form.Required)
		assert.Equal(t, "email", patterns[0].Form.Name)
	})
}

func TestJavaDetector(t *testing.T) {
	source := `package demo;

public class Calculator {
    private int memory;

    public Calculator(int memory) {
        this.memory = memory;
    }

    public int add(int a, int b) {
        return a + b;
    }

    public String readFile(String path) throws IOException {
        if (path == null) {
            return null;
        }
        return "";
    }
}

interface Operation {
    int apply(int x);
}
`
	patterns := NewJava().Detect("Calculator.java", source)

	require.Equal(t, []m.PatternKind{
		m.PatternFunction, m.PatternFunction, m.PatternFunction,
		m.PatternClass, m.PatternInterface, m.PatternConstructor,
		m.PatternException,
	}, kinds(patterns))

	assert.Equal(t, "add", patterns[0].Function.Name)
	assert.Equal(t, []string{"a", "b"}, patterns[0].Function.Parameters)
	assert.Equal(t, "int", patterns[0].Function.ReturnType)
	assert.Equal(t, "Calculator", patterns[0].Context.ClassName)

	assert.Equal(t, "readFile", patterns[1].Function.Name)
	assert.Equal(t, "apply", patterns[2].Function.Name)

	ctor := patterns[5]
	assert.Equal(t, "Calculator", ctor.Function.Name)
	assert.Equal(t, []string{"memory"}, ctor.Function.Parameters)

	assert.Equal(t, "IOException", patterns[6].Class.Name)
}

func TestIntegrationDetector(t *testing.T) {
	source := `import React from 'react';
import axios from 'axios';

export default function UserCard({ userId, onSelect }) {
  const load = () => axios.post('/api/users', { id: userId }, { headers: { Authorization: token } });
  fetch("/api/health");
  return <div />;
}

async function persist(data) {
  await User.create(data);
  await Model.findAll();
  Object.create(null);
}
`
	patterns := NewIntegration().Detect("UserCard.jsx", source)

	require.Equal(t, []m.PatternKind{
		m.PatternAPIIntegration, m.PatternAPIIntegration,
		m.PatternComponentIntegration,
		m.PatternDatabaseOperation, m.PatternDatabaseOperation,
	}, kinds(patterns))

	post := patterns[0].API
	assert.Equal(t, "/api/users", post.Endpoint)
	assert.Equal(t, "POST", post.Method)
	assert.True(t, post.AuthRequired)

	assert.Equal(t, "GET", patterns[1].API.Method)

	comp := patterns[2].Component
	assert.Equal(t, "UserCard", comp.Name)
	assert.Equal(t, "React", comp.Kind)
	assert.Equal(t, []string{"react", "axios"}, comp.Dependencies)
	assert.Equal(t, []string{"userId", "onSelect"}, comp.Props)

	create := patterns[3].Database
	assert.Equal(t, m.OperationCreate, create.Operation)
	assert.Equal(t, "user", create.Table)
	assert.Equal(t, "create", create.Method)
	assert.False(t, create.Transaction)

	find := patterns[4].Database
	assert.Equal(t, m.OperationRead, find.Operation)
	assert.Equal(t, "unknown", find.Table)
	assert.Equal(t, "findAll", find.Method)
}
