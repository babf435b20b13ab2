// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package catalog turns the descriptor table into pool descriptors by resolving
// prototype and container names registered by the scene.
package catalog

import (
	"errors"
	"fmt"

	"github.com/elliotchance/pie/v2"

	"github.com/AccelByte/extend-core-objectpool/pkg/common"
	"github.com/AccelByte/extend-core-objectpool/pkg/config"
	"github.com/AccelByte/extend-core-objectpool/pkg/constants"
	"github.com/AccelByte/extend-core-objectpool/pkg/entity"
	"github.com/AccelByte/extend-core-objectpool/pkg/envelope"
	"github.com/AccelByte/extend-core-objectpool/pkg/models"
	"github.com/AccelByte/extend-core-objectpool/pkg/pooler"
)

var ErrDuplicateName = errors.New("name is already registered")

// Catalog maps names used in the descriptor table to scene objects.
type Catalog struct {
	prototypes map[string]entity.Prototype
	containers map[string]entity.Container
}

func New() *Catalog {
	return &Catalog{
		prototypes: make(map[string]entity.Prototype),
		containers: make(map[string]entity.Container),
	}
}

func (c *Catalog) RegisterPrototype(name string, prototype entity.Prototype) error {
	if _, exists := c.prototypes[name]; exists {
		return fmt.Errorf("prototype %s: %w", name, ErrDuplicateName)
	}
	c.prototypes[name] = prototype
	return nil
}

func (c *Catalog) RegisterContainer(name string, container entity.Container) error {
	if _, exists := c.containers[name]; exists {
		return fmt.Errorf("container %s: %w", name, ErrDuplicateName)
	}
	c.containers[name] = container
	return nil
}

// Prototypes returns the registered prototype names in sorted order.
func (c *Catalog) Prototypes() []string {
	return pie.Sort(pie.Keys(c.prototypes))
}

/*
Resolve converts specs into pool descriptors, in order.

Invalid specs are logged and left out. A spec naming an unregistered prototype is kept with a nil
prototype, so the pool manager registers the tag and reports the missing prototype itself. An
unregistered container is logged and dropped; instances are then created without a parent.
The returned error joins every problem found and never prevents the valid descriptors from being returned.
*/
func (c *Catalog) Resolve(scope *envelope.Scope, specs []config.DescriptorSpec, defaultCount int) ([]pooler.Descriptor, error) {
	resolveScope := scope.NewChildScope("catalog.Resolve")
	defer resolveScope.Finish()

	log := resolveScope.Log.WithField(constants.LogFieldComponent, constants.ComponentCatalog)
	log.Debugf("resolving descriptor table: %s", common.LogJSONFormatter(specs))

	var errs []error
	descriptors := make([]pooler.Descriptor, 0, len(specs))
	for i, spec := range specs {
		if err := spec.Validate(defaultCount); err != nil {
			err = fmt.Errorf("descriptor %d: %w", i, err)
			log.WithField("code", models.ValidationErrorCode(err)).Error(err)
			errs = append(errs, err)
			continue
		}

		specLog := log.WithField(constants.LogFieldTag, spec.Tag)
		descriptor := pooler.Descriptor{
			Tag:          models.Tag(spec.Tag),
			InitialCount: spec.Count(defaultCount),
		}

		if prototype, ok := c.prototypes[spec.Prototype]; ok {
			descriptor.Prototype = prototype
		} else {
			specLog.WithField(constants.LogFieldPrototype, spec.Prototype).Warn("prototype is not registered")
		}

		if spec.Container != "" {
			if container, ok := c.containers[spec.Container]; ok {
				descriptor.Container = container
			} else {
				specLog.WithField(constants.LogFieldContainer, spec.Container).Warn("container is not registered, instances will have no parent")
			}
		}

		descriptors = append(descriptors, descriptor)
	}

	resolveScope.SetAttributes(envelope.ResolvedAttribute, len(descriptors))
	err := errors.Join(errs...)
	resolveScope.RecordError(err)
	return descriptors, err
}

// LoadFile reads the YAML descriptor table at filePath and resolves it.
func (c *Catalog) LoadFile(scope *envelope.Scope, filePath string, defaultCount int) ([]pooler.Descriptor, error) {
	specs, err := config.LoadDescriptors(filePath)
	if err != nil {
		scope.Log.WithError(err).Errorf("failed to load descriptor table %s", filePath)
		return nil, err
	}

	return c.Resolve(scope, specs, defaultCount)
}

// Load resolves the descriptor file named by cfg. No file configured yields no descriptors.
func (c *Catalog) Load(scope *envelope.Scope, cfg *config.Config) ([]pooler.Descriptor, error) {
	if cfg.DescriptorFile == "" {
		scope.Log.Debug("no descriptor file configured")
		return nil, nil
	}

	return c.LoadFile(scope, cfg.DescriptorFile, cfg.DefaultInitialCount)
}
