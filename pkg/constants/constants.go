// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

const (
	// MaxInitialCount caps how many instances a single pool may pre-allocate at startup.
	MaxInitialCount = 100000
)

const (
	LogFieldTag       = "tag"
	LogFieldComponent = "component"
	LogFieldPrototype = "prototype"
	LogFieldContainer = "container"

	ComponentPooler  = "pooler"
	ComponentCatalog = "catalog"
)

const (
	// rejected release reason constants.
	RejectReasonNotPoolable   = "not_poolable"
	RejectReasonUnknownTag    = "unknown_tag"
	RejectReasonNotCheckedOut = "not_checked_out"
)
