// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pooler

import "errors"

var (
	// ErrUnknownTag is returned when no pool was registered for a tag.
	ErrUnknownTag = errors.New("unknown pool tag")

	// ErrMissingPrototype is returned when a pool must grow but has nothing to instantiate from.
	ErrMissingPrototype = errors.New("pool has no prototype")

	// ErrNotPoolable is returned for objects that do not satisfy entity.Poolable
	// or cannot be tracked by identity.
	ErrNotPoolable = errors.New("object is not poolable")

	// ErrNotCheckedOut is returned when releasing an instance that is already pooled or was never acquired.
	ErrNotCheckedOut = errors.New("instance is not checked out")

	// ErrDuplicateInstance is returned when a prototype hands back an instance the manager already owns.
	ErrDuplicateInstance = errors.New("instance is already owned by the pool manager")

	// ErrAlreadyInitialized is returned by every Initialize call after the first.
	ErrAlreadyInitialized = errors.New("pool manager is already initialized")

	// ErrInvalidDescriptor wraps the validation error of a descriptor that was skipped.
	ErrInvalidDescriptor = errors.New("invalid pool descriptor")
)
