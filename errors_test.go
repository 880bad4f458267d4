package praticagem_test

import (
	"errors"
	"testing"

	"github.com/marcusvs/praticagem"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := praticagem.Errorf(praticagem.ESTRUCTURE, "required column missing: %q", "berco")

	assert.Equal(t, praticagem.ESTRUCTURE, praticagem.ErrorCode(err))
	assert.Equal(t, "required column missing: \"berco\"", praticagem.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, praticagem.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, praticagem.EINTERNAL, praticagem.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, praticagem.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", praticagem.ErrorMessage(errors.New("boom")))
}
