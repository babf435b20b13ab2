// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package entity defines the contracts between the object pool and the engine objects it recycles.
// The pool never looks inside an entity; it only drives these lifecycle hooks.
package entity

import (
	"github.com/AccelByte/extend-core-objectpool/pkg/models"
)

// Object is the engine-side handle of a scene entity.
type Object interface {
	SetActive(active bool)
	IsActive() bool
	SetPosition(position models.Vector3)
	SetRotation(rotation models.Quaternion)
}

/*
Poolable is an Object the pool can recycle. Implementations must be comparable (usually a pointer),
since the pool tracks checked-out instances by identity.

Tag is read on release to choose the destination queue, so an entity retagged while active
goes back to the pool it now reports.
*/
type Poolable interface {
	Object

	Tag() models.Tag
	SetTag(tag models.Tag)

	// OnSpawn is called after the instance is activated by an acquire.
	OnSpawn()

	// OnReturnToPool is called before the instance is deactivated and queued again.
	OnReturnToPool()
}

// Container owns pooled instances in the scene hierarchy, e.g. a "Projectiles" node.
type Container interface {
	Attach(obj Object)
}

// Prototype synthesizes new instances of one pool category.
type Prototype interface {
	Instantiate() (Poolable, error)
}
