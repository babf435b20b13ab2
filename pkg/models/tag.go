// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import "strings"

// Tag identifies one pool category, e.g. "bullet" or "explosion".
type Tag string

// NoTag is the zero tag. No pool may be registered under it.
const NoTag Tag = ""

func (t Tag) String() string {
	return string(t)
}

// IsZero reports whether the tag is empty or whitespace only.
func (t Tag) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}
