// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
)

var (
	ValidationErrorEmptyTag          = errors.New("pool tag cannot be empty")
	ValidationErrorNegativeCount     = errors.New("pool initial count cannot be negative")
	ValidationErrorDuplicateTag      = errors.New("pool tag is already registered")
	ValidationErrorEmptyPrototype    = errors.New("pool prototype name cannot be empty")
	ValidationErrorInitialCountLimit = errors.New("pool initial count exceeds the allowed maximum")
)

var validationErrorCodeMap = map[error]int{
	ValidationErrorEmptyTag:          520101,
	ValidationErrorNegativeCount:     520102,
	ValidationErrorDuplicateTag:      520103,
	ValidationErrorEmptyPrototype:    520104,
	ValidationErrorInitialCountLimit: 520105,
}

// ValidationErrorCode returns a code for the error.
// It returns 20002 if the error is not registered in the map.
func ValidationErrorCode(err error) int {
	for known, code := range validationErrorCodeMap {
		if errors.Is(err, known) {
			return code
		}
	}
	return 20002
}
