// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-core-objectpool/pkg/config"
	"github.com/AccelByte/extend-core-objectpool/pkg/models"
	"github.com/AccelByte/extend-core-objectpool/pkg/pooler"
	"github.com/AccelByte/extend-core-objectpool/pkg/testsetup"
)

const descriptorYAML = `
pools:
  - tag: bullet
    prototype: bullet
    initial_count: 5
    container: projectiles
  - tag: explosion
    prototype: explosion_fx
    container: effects
  - tag: enemy
    prototype: grunt
    initial_count: 2
  - tag: ""
    prototype: bullet
`

func newTestCatalog(t *testing.T) (*Catalog, *testsetup.StubContainer) {
	t.Helper()

	projectiles := &testsetup.StubContainer{Name: "projectiles"}
	c := New()
	require.NoError(t, c.RegisterPrototype("bullet", testsetup.NewStubPrototype()))
	require.NoError(t, c.RegisterPrototype("explosion_fx", testsetup.NewStubPrototype()))
	require.NoError(t, c.RegisterContainer("projectiles", projectiles))
	return c, projectiles
}

func TestCatalog_RegisterDuplicate(t *testing.T) {
	c, _ := newTestCatalog(t)

	assert.ErrorIs(t, c.RegisterPrototype("bullet", testsetup.NewStubPrototype()), ErrDuplicateName)
	assert.ErrorIs(t, c.RegisterContainer("projectiles", &testsetup.StubContainer{}), ErrDuplicateName)
	assert.Equal(t, []string{"bullet", "explosion_fx"}, c.Prototypes())
}

func TestCatalog_Resolve(t *testing.T) {
	g := testsetup.ParallelWithGomega(t)

	c, projectiles := newTestCatalog(t)
	specs := []config.DescriptorSpec{
		{Tag: "bullet", Prototype: "bullet", InitialCount: swag.Int(5), Container: "projectiles"},
		{Tag: "explosion", Prototype: "explosion_fx", Container: "effects"},
		{Tag: "enemy", Prototype: "grunt", InitialCount: swag.Int(2)},
		{Tag: "broken", Prototype: "bullet", InitialCount: swag.Int(-3)},
	}

	descriptors, err := c.Resolve(g.TestScope, specs, 4)

	g.Expect(err).To(gomega.MatchError(models.ValidationErrorNegativeCount))
	g.Expect(descriptors).To(gomega.HaveLen(3))

	g.Expect(descriptors[0].Tag).To(gomega.Equal(models.Tag("bullet")))
	g.Expect(descriptors[0].InitialCount).To(gomega.Equal(5))
	g.Expect(descriptors[0].Prototype).NotTo(gomega.BeNil())
	g.Expect(descriptors[0].Container).To(gomega.BeIdenticalTo(projectiles))

	g.Expect(descriptors[1].InitialCount).To(gomega.Equal(4))
	g.Expect(descriptors[1].Container).To(gomega.BeNil())

	g.Expect(descriptors[2].Tag).To(gomega.Equal(models.Tag("enemy")))
	g.Expect(descriptors[2].Prototype).To(gomega.BeNil())
}

func TestCatalog_ResolveLogsDescriptorTable(t *testing.T) {
	scope, hook := testsetup.NewTestScopeWithHook()
	defer scope.Finish()

	c, _ := newTestCatalog(t)
	specs := []config.DescriptorSpec{{Tag: "bullet", Prototype: "bullet", InitialCount: swag.Int(5)}}

	_, err := c.Resolve(scope, specs, 1)
	require.NoError(t, err)

	var messages []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.DebugLevel {
			messages = append(messages, entry.Message)
		}
	}
	assert.Contains(t, messages, `resolving descriptor table: [{"tag":"bullet","prototype":"bullet","initial_count":5}]`)
}

func TestCatalog_LoadIntoManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(descriptorYAML), 0o600))

	scope, hook := testsetup.NewTestScopeWithHook()
	defer scope.Finish()

	c, projectiles := newTestCatalog(t)
	cfg := &config.Config{DescriptorFile: path, DefaultInitialCount: 3}

	descriptors, err := c.Load(scope, cfg)
	assert.ErrorIs(t, err, models.ValidationErrorEmptyTag)
	require.Len(t, descriptors, 3)

	manager := pooler.New(cfg, testsetup.NewMetrics())
	err = manager.Initialize(scope, descriptors)
	assert.ErrorIs(t, err, pooler.ErrMissingPrototype)

	assert.Equal(t, []models.Tag{"bullet", "enemy", "explosion"}, manager.Tags())
	assert.Equal(t, 5, manager.Pooled("bullet"))
	assert.Equal(t, 3, manager.Pooled("explosion"))
	assert.Equal(t, 0, manager.Pooled("enemy"))
	assert.Len(t, projectiles.Attached, 5)

	instance, err := manager.Acquire("bullet")
	require.NoError(t, err)
	assert.Equal(t, models.Tag("bullet"), instance.Tag())

	_, err = manager.Acquire("enemy")
	assert.ErrorIs(t, err, pooler.ErrMissingPrototype)

	assert.NotEmpty(t, hook.AllEntries())
}

func TestCatalog_LoadWithoutFile(t *testing.T) {
	c := New()
	descriptors, err := c.Load(testsetup.NewTestScope(), &config.Config{})
	assert.NoError(t, err)
	assert.Empty(t, descriptors)
}

func TestCatalog_LoadFileMissing(t *testing.T) {
	c := New()
	_, err := c.LoadFile(testsetup.NewTestScope(), filepath.Join(t.TempDir(), "absent.yaml"), 1)
	assert.Error(t, err)
}
