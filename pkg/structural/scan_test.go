package structural

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanType(t *testing.T) {
	type shape struct {
		Name  string
		Other bool
	}
	actual := struct {
		Name  string
		Extra int
	}{Name: "x", Extra: 2}

	results, err := ScanType(actual, reflect.TypeOf(shape{}), DefaultCriteria())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "Name", results[0].Path)
	assert.Equal(t, Match, results[0].Kind)
	assert.Equal(t, "x", results[0].Actual)

	assert.Equal(t, "Other", results[1].Path)
	assert.Equal(t, MissingOnActual, results[1].Kind)
	assert.Equal(t, "bool", results[1].Expected)

	assert.Equal(t, "Extra", results[2].Path)
	assert.Equal(t, MissingOnExpected, results[2].Kind)
}

func TestScanType_PointerActual(t *testing.T) {
	results, err := ScanType(&person{Name: "Ada"}, reflect.TypeOf(&person{}), DefaultCriteria())
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age", "Address"}, paths(results))
}

func TestScanType_NotAStruct(t *testing.T) {
	results, err := ScanType(42, reflect.TypeOf(person{}), DefaultCriteria())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, TypeMismatch, results[0].Kind)

	_, err = ScanType(person{}, reflect.TypeOf(0), DefaultCriteria())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCriteria)
}
