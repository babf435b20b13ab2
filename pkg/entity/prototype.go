// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package entity

import (
	"errors"
	"fmt"

	"github.com/mitchellh/copystructure"
)

var errEmptyTemplate = errors.New("prototype template is nil")

// FuncPrototype adapts a constructor func to Prototype.
type FuncPrototype func() (Poolable, error)

func (f FuncPrototype) Instantiate() (Poolable, error) {
	return f()
}

// ClonePrototype synthesizes instances by deep-copying Template.
// Only exported fields survive the copy; unexported state starts from its zero value.
type ClonePrototype struct {
	Template Poolable

	// OnClone, when set, runs on every copy before it is handed to the pool.
	OnClone func(Poolable)
}

func NewClonePrototype(template Poolable) *ClonePrototype {
	return &ClonePrototype{Template: template}
}

func (c *ClonePrototype) Instantiate() (Poolable, error) {
	if c == nil || c.Template == nil {
		return nil, errEmptyTemplate
	}

	copied, err := copystructure.Copy(c.Template)
	if err != nil {
		return nil, fmt.Errorf("failed to copy prototype template: %w", err)
	}

	instance, ok := copied.(Poolable)
	if !ok {
		return nil, fmt.Errorf("copied template of type %T is not poolable", copied)
	}

	if c.OnClone != nil {
		c.OnClone(instance)
	}

	return instance, nil
}
