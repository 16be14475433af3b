package ferr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheEveEye/DogmaEngine/ferr"
)

func TestBaseValueErrorCarriesMeta(t *testing.T) {
	err := ferr.BaseValueError(64, ferr.WithItem(42))
	assert.True(t, ferr.CodeEquals(err, ferr.CodeBaseValue))
	assert.Equal(t, int64(42), err.Meta["item_id"])
	assert.Contains(t, err.Error(), "64")
}

func TestWrappedCauseUnwraps(t *testing.T) {
	cause := errors.New("bad yaml")
	err := ferr.YamlParsingError(cause)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, fmt.Sprintf("failed to parse modifierInfo: %v", cause), err.Error())
}

func TestCodeEqualsFalseForPlainError(t *testing.T) {
	assert.False(t, ferr.CodeEquals(errors.New("plain"), ferr.CodeSlotTaken))
}
