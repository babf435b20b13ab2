// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package pooler

import (
	"fmt"

	"github.com/AccelByte/extend-core-objectpool/pkg/constants"
	"github.com/AccelByte/extend-core-objectpool/pkg/entity"
	"github.com/AccelByte/extend-core-objectpool/pkg/models"
)

// Descriptor configures one pool. It is not modified after Initialize.
type Descriptor struct {
	Tag          models.Tag
	Prototype    entity.Prototype
	InitialCount int

	// Container, if set, receives every instance the pool creates.
	Container entity.Container
}

// Validate checks the fields Initialize cannot recover from. A nil prototype is not an error here.
func (d Descriptor) Validate() error {
	if d.Tag.IsZero() {
		return models.ValidationErrorEmptyTag
	}
	if d.InitialCount < 0 {
		return fmt.Errorf("tag %s: %w", d.Tag, models.ValidationErrorNegativeCount)
	}
	if d.InitialCount > constants.MaxInitialCount {
		return fmt.Errorf("tag %s: %w", d.Tag, models.ValidationErrorInitialCountLimit)
	}
	return nil
}
