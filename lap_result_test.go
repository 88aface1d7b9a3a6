package lap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultString(t *testing.T) {
	r := newResult()
	r.set("help", BoolValue(false))
	r.set("output", StringValue("result.txt"))
	r.set("target", AbsentValue())

	assert.Equal(t, "Result(help=false, output=result.txt, target=<nil>)", r.String())
}

func TestResultEmptyString(t *testing.T) {
	assert.Equal(t, "Result()", newResult().String())
}

func TestResultSetKeepsFirstPosition(t *testing.T) {
	r := newResult()
	r.set("a", BoolValue(true))
	r.set("b", BoolValue(true))
	r.set("a", StringValue("x"))

	assert.Equal(t, []string{"a", "b"}, r.Keys())
	assert.Equal(t, 2, r.Len())
	text, ok := r.Text("a")
	assert.True(t, ok)
	assert.Equal(t, "x", text)
}

func TestResultKeysIsACopy(t *testing.T) {
	r := newResult()
	r.set("a", BoolValue(true))

	keys := r.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a"}, r.Keys())
}

func TestResultAccessors(t *testing.T) {
	r := newResult()
	r.set("force", BoolValue(true))
	r.set("output", StringValue("out"))
	r.set("target", AbsentValue())

	assert.True(t, r.Bool("force"))
	assert.False(t, r.Bool("output"))
	assert.False(t, r.Bool("missing"))
	assert.True(t, r.Has("target"))
	assert.False(t, r.Has("missing"))

	_, ok := r.Text("force")
	assert.False(t, ok)
	_, ok = r.Text("target")
	assert.False(t, ok)

	assert.Equal(t, map[string]any{
		"force":  true,
		"output": "out",
		"target": nil,
	}, r.Map())
}

func TestValueKinds(t *testing.T) {
	assert.Equal(t, KindBool, BoolValue(false).Kind())
	assert.Equal(t, KindString, StringValue("").Kind())
	assert.Equal(t, KindAbsent, AbsentValue().Kind())
	assert.True(t, AbsentValue().IsAbsent())
	assert.Nil(t, AbsentValue().Any())
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "", StringValue("").String())
}
