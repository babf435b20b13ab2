// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package utils

import (
	"reflect"
	"strings"

	"github.com/google/uuid"
)

// GenerateUUID generates uuid without hyphens.
func GenerateUUID() string {
	id, _ := uuid.NewRandom()
	return strings.ReplaceAll(id.String(), "-", "")
}

// IsNil reports whether v is nil or an interface holding a nil pointer, map, slice, func or chan.
func IsNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// IsComparable reports whether v's dynamic type can be used as a map key.
func IsComparable(v interface{}) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Comparable()
}
