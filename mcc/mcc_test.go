package mcc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISO3166(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{CN, "CN"},
		{CN2, "CN"},
		{AB, "AB"},
		{GA, "GA"},
		{460, "CN"},
		{289, "AB"},
	}
	for _, c := range cases {
		got, ok := ISO3166(c.code)
		assert.True(t, ok, "%d", c.code)
		assert.Equal(t, c.want, got, "%d", c.code)
	}
}

func TestEveryConstantHasACountry(t *testing.T) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "mcc.go", nil, 0)
	require.NoError(t, err)

	reserved := map[string]bool{"Unknown": true, "Test": true, "Internal": true}
	seen := 0
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, s := range gen.Specs {
			value := s.(*ast.ValueSpec)
			if len(value.Values) != 1 {
				continue
			}
			lit, ok := value.Values[0].(*ast.BasicLit)
			if !ok || lit.Kind != token.INT {
				continue
			}
			code, err := strconv.Atoi(lit.Value)
			require.NoError(t, err)
			for _, name := range value.Names {
				_, ok := countries[code]
				if reserved[name.Name] {
					assert.False(t, ok, name.Name)
					continue
				}
				seen++
				assert.True(t, ok, "%s = %d has no country", name.Name, code)
			}
		}
	}
	assert.Equal(t, len(countries), seen)
}

func TestISO3166Reserved(t *testing.T) {
	for _, code := range []int{Unknown, Test, Internal, 100, -1} {
		got, ok := ISO3166(code)
		assert.False(t, ok, "%d", code)
		assert.Empty(t, got)
	}
}

func TestCountry(t *testing.T) {
	name, ok := Country(CN2)
	require.True(t, ok)
	assert.Equal(t, "China", name)

	_, ok = Country(Internal)
	assert.False(t, ok)
}

func TestTableCodesAreUpperAlpha2(t *testing.T) {
	for code, c := range countries {
		assert.Len(t, c.iso, 2, "%d", code)
		for _, r := range c.iso {
			assert.True(t, r >= 'A' && r <= 'Z', "%d: %q", code, c.iso)
		}
		assert.NotEmpty(t, c.name, "%d", code)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	code, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Unknown, code)

	t.Setenv(EnvVar, " 460 ")
	code, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, CN, code)

	t.Setenv(EnvVar, "china")
	_, err = FromEnv()
	assert.Error(t, err)
}
