// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag_IsZero(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		want bool
	}{
		{name: "empty", tag: NoTag, want: true},
		{name: "whitespace", tag: "  \t", want: true},
		{name: "named", tag: "bullet", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tag.IsZero())
		})
	}
}

func TestIdentityRotation(t *testing.T) {
	assert.True(t, IdentityRotation().IsIdentity())
	assert.False(t, Quaternion{}.IsIdentity())
	assert.False(t, Quaternion{X: 1}.IsIdentity())
}

func TestValidationErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty_tag", err: ValidationErrorEmptyTag, want: 520101},
		{name: "wrapped_duplicate", err: fmt.Errorf("tag bullet: %w", ValidationErrorDuplicateTag), want: 520103},
		{name: "unknown", err: errors.New("boom"), want: 20002},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidationErrorCode(tt.err))
		})
	}
}
