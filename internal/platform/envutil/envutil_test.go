package envutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SNS_TEST_INT", "abc")
	assert.Equal(t, 7, Int("SNS_TEST_INT", 7))

	t.Setenv("SNS_TEST_INT", " 42 ")
	assert.Equal(t, 42, Int("SNS_TEST_INT", 7))
}

func TestBool(t *testing.T) {
	t.Setenv("SNS_TEST_BOOL", "on")
	assert.True(t, Bool("SNS_TEST_BOOL", false))

	t.Setenv("SNS_TEST_BOOL", "nope")
	assert.True(t, Bool("SNS_TEST_BOOL", true))
}

func TestList(t *testing.T) {
	t.Setenv("SNS_TEST_LIST", "a, b,,c ")
	assert.Equal(t, []string{"a", "b", "c"}, List("SNS_TEST_LIST", nil))

	t.Setenv("SNS_TEST_LIST", " , ")
	assert.Equal(t, []string{"*"}, List("SNS_TEST_LIST", []string{"*"}))
}
