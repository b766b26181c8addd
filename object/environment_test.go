package object_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wisplang/wisp/object"
)

func TestDefineShadowsOuterBinding(t *testing.T) {
	global := object.NewEnvironment(nil)
	global.Define("a", &object.Number{Value: 1})

	block := object.NewEnvironment(global)
	block.Define("a", &object.Number{Value: 3})

	v, ok := block.Get("a")
	require.True(t, ok)
	require.Equal(t, float64(3), v.(*object.Number).Value)

	v, ok = global.Get("a")
	require.True(t, ok)
	require.Equal(t, float64(1), v.(*object.Number).Value)
}

func TestGetWalksToEnclosing(t *testing.T) {
	global := object.NewEnvironment(nil)
	global.Define("x", object.NilValue)
	child := object.NewEnvironment(global)

	v, ok := child.Get("x")
	require.True(t, ok)
	require.Equal(t, object.NilValue, v)
}

func TestGetMissingNameFails(t *testing.T) {
	env := object.NewEnvironment(nil)
	_, ok := env.Get("missing")
	require.False(t, ok)
}

func TestAssignMutatesFirstDefiningFrame(t *testing.T) {
	global := object.NewEnvironment(nil)
	global.Define("x", &object.Number{Value: 1})
	child := object.NewEnvironment(global)

	ok := child.Assign("x", &object.Number{Value: 2})
	require.True(t, ok)

	// The binding was mutated in global, not shadowed in child.
	v, _ := global.Get("x")
	require.Equal(t, float64(2), v.(*object.Number).Value)
}

func TestAssignUndeclaredNameFails(t *testing.T) {
	env := object.NewEnvironment(nil)
	ok := env.Assign("never_declared", object.NilValue)
	require.False(t, ok)
}
