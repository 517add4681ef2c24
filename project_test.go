package jx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jextract/jx"
)

func TestProjectSelectsInFieldOrder(t *testing.T) {
	rec := record(t, `{"a":1,"b":2,"c":3}`)

	assert.Equal(t, []string{"3", "1"},
		jx.Project(rec, []string{"c", "a"}, false))
}

func TestProjectMissingFieldIsEmpty(t *testing.T) {
	rec := record(t, `{"a":1}`)

	assert.Equal(t, []string{"1", "", "1"},
		jx.Project(rec, []string{"a", "nope", "a"}, false))
}

func TestProjectEmptyFieldsUsesOwnKeys(t *testing.T) {
	rec := record(t, `{"b":2,"a":1}`)

	assert.Equal(t, []string{"2", "1"}, jx.Project(rec, nil, false))
}

func TestProjectScalarRendering(t *testing.T) {
	rec := record(t, `{"s":"plain","n":1.50,"big":12345678901234567890,"t":true,"f":false,"z":null}`)

	assert.Equal(t, []string{"plain", "1.50", "12345678901234567890", "true", "false", "null"},
		jx.Project(rec, []string{"s", "n", "big", "t", "f", "z"}, false))
}

func TestProjectContainersAsCompactJSON(t *testing.T) {
	rec := record(t, `{"o":{"x":1,"y":[2,3]},"a":[{"k":"v"}]}`)

	assert.Equal(t, []string{`{"x":1,"y":[2,3]}`, `[{"k":"v"}]`},
		jx.Project(rec, []string{"o", "a"}, false))
}

func TestProjectNormalizeSpace(t *testing.T) {
	rec := record(t, `{"name":"Jud D","bio":"a b c"}`)

	assert.Equal(t, []string{"Jud_D", "a_b_c"},
		jx.Project(rec, []string{"name", "bio"}, true))
}
