// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"fmt"
	"os"

	validator "github.com/AccelByte/justice-input-validation-go"
	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-core-objectpool/pkg/models"
)

// DescriptorTable is the on-disk form of the pool descriptor list.
type DescriptorTable struct {
	Pools []DescriptorSpec `json:"pools" yaml:"pools"`
}

// DescriptorSpec names the prototype and container of one pool; a catalog resolves the names.
type DescriptorSpec struct {
	Tag          string `json:"tag"                     yaml:"tag"`
	Prototype    string `json:"prototype"               yaml:"prototype"`
	InitialCount *int   `json:"initial_count,omitempty" yaml:"initial_count,omitempty"`
	Container    string `json:"container,omitempty"     yaml:"container,omitempty"`
}

type countRule struct {
	InitialCount int `optional:"true" valid:"range(0|100000)"`
}

// Count returns the initial count, or defaultCount when the spec omits it.
func (s DescriptorSpec) Count(defaultCount int) int {
	if s.InitialCount == nil {
		return defaultCount
	}
	return *s.InitialCount
}

// Validate checks the spec using defaultCount for an omitted initial count.
func (s DescriptorSpec) Validate(defaultCount int) error {
	if models.Tag(s.Tag).IsZero() {
		return models.ValidationErrorEmptyTag
	}
	if s.Prototype == "" {
		return fmt.Errorf("tag %s: %w", s.Tag, models.ValidationErrorEmptyPrototype)
	}
	count := s.Count(defaultCount)
	if count < 0 {
		return fmt.Errorf("tag %s: %w", s.Tag, models.ValidationErrorNegativeCount)
	}
	if _, err := validator.ValidateStruct(countRule{InitialCount: count}); err != nil {
		return fmt.Errorf("tag %s: %w: %s", s.Tag, models.ValidationErrorInitialCountLimit, err.Error())
	}
	return nil
}

// LoadDescriptors reads a YAML descriptor table from filePath.
// Entries are returned as written; validation is left to the resolver so one bad entry does not drop the rest.
func LoadDescriptors(filePath string) ([]DescriptorSpec, error) {
	data, err := os.ReadFile(filePath) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file: %w", err)
	}

	return ParseDescriptors(data)
}

// ParseDescriptors decodes a YAML descriptor table.
func ParseDescriptors(data []byte) ([]DescriptorSpec, error) {
	table := DescriptorTable{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor YAML: %w", err)
	}

	return table.Pools, nil
}
