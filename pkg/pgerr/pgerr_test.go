package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	wrapped := func(code pq.ErrorCode) error {
		return fmt.Errorf("commit: %w", &pq.Error{Code: code})
	}

	assert.True(t, IsExclusionViolation(wrapped(CodeExclusionViolation)))
	assert.True(t, IsSerializationFailure(wrapped(CodeSerializationFailure)))
	assert.True(t, IsSerializationFailure(wrapped(CodeDeadlockDetected)))
	assert.True(t, IsUniqueViolation(wrapped(CodeUniqueViolation)))

	assert.True(t, IsRaceLost(wrapped(CodeExclusionViolation)))
	assert.True(t, IsRaceLost(wrapped(CodeSerializationFailure)))
	assert.False(t, IsRaceLost(wrapped(CodeUniqueViolation)))

	assert.False(t, IsRaceLost(errors.New("connection reset")))
	assert.Equal(t, pq.ErrorCode(""), Code(nil))
}
