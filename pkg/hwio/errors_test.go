package hwio

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{
		Resource:  "wheel_right",
		Interface: "*hwio.Registry[hwio.testHandle,hwio.NonClaiming]",
	}

	assert.Contains(t, err.Error(), `"wheel_right"`)
	assert.Contains(t, err.Error(), "Registry")
}

func TestNotFoundErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &NotFoundError{Resource: "wheel_right"})

	assert.ErrorIs(t, err, ErrNotFound)

	var nfe *NotFoundError
	assert.ErrorAs(t, err, &nfe)
	assert.Equal(t, "wheel_right", nfe.Resource)
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNotFound, ErrNoClaimer))
	assert.False(t, errors.Is(ErrNoClaimer, ErrInterfaceNotFound))
}
