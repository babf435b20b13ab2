// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package testsetup

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	ulid "github.com/oklog/ulid/v2"

	"github.com/AccelByte/extend-core-objectpool/pkg/entity"
	"github.com/AccelByte/extend-core-objectpool/pkg/models"
)

var (
	entropy   = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec
	ulidMutex = sync.Mutex{}

	// ErrStubInstantiate is returned by FailingPrototype.
	ErrStubInstantiate = errors.New("stub prototype failed")

	// StubSpawnPosition is where freshly cloned stubs start, away from any anchor used in tests.
	StubSpawnPosition = models.Vector3{X: 99, Y: 99, Z: 99}
)

// NewStubID returns a ULID so stubs sort in creation order.
func NewStubID() string {
	ulidMutex.Lock()
	defer ulidMutex.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// StubEntity is a Poolable that records every lifecycle call made on it.
type StubEntity struct {
	ID          string
	PoolTag     models.Tag
	Active      bool
	Position    models.Vector3
	Rotation    models.Quaternion
	SpawnCount  int
	ReturnCount int
}

func (s *StubEntity) SetActive(active bool)                  { s.Active = active }
func (s *StubEntity) IsActive() bool                         { return s.Active }
func (s *StubEntity) SetPosition(position models.Vector3)    { s.Position = position }
func (s *StubEntity) SetRotation(rotation models.Quaternion) { s.Rotation = rotation }
func (s *StubEntity) Tag() models.Tag                        { return s.PoolTag }
func (s *StubEntity) SetTag(tag models.Tag)                  { s.PoolTag = tag }
func (s *StubEntity) OnSpawn()                               { s.SpawnCount++ }
func (s *StubEntity) OnReturnToPool()                        { s.ReturnCount++ }

// NewStubPrototype clones a StubEntity template and gives every copy a fresh ID.
func NewStubPrototype() *entity.ClonePrototype {
	return &entity.ClonePrototype{
		Template: &StubEntity{
			Active:   true,
			Position: StubSpawnPosition,
			Rotation: models.Quaternion{X: 1},
		},
		OnClone: func(p entity.Poolable) {
			p.(*StubEntity).ID = NewStubID()
		},
	}
}

// FailingPrototype always fails to instantiate.
func FailingPrototype() entity.Prototype {
	return entity.FuncPrototype(func() (entity.Poolable, error) {
		return nil, ErrStubInstantiate
	})
}

// NonComparableEntity cannot be tracked by identity, it holds a slice by value.
type NonComparableEntity struct {
	Labels []string
}

func (n NonComparableEntity) SetActive(active bool)                  {}
func (n NonComparableEntity) IsActive() bool                         { return false }
func (n NonComparableEntity) SetPosition(position models.Vector3)    {}
func (n NonComparableEntity) SetRotation(rotation models.Quaternion) {}
func (n NonComparableEntity) Tag() models.Tag                        { return models.NoTag }
func (n NonComparableEntity) SetTag(tag models.Tag)                  {}
func (n NonComparableEntity) OnSpawn()                               {}
func (n NonComparableEntity) OnReturnToPool()                        {}

// PlainObject is a scene object without the pooling contract.
type PlainObject struct {
	Active bool
}

func (p *PlainObject) SetActive(active bool)                  { p.Active = active }
func (p *PlainObject) IsActive() bool                         { return p.Active }
func (p *PlainObject) SetPosition(position models.Vector3)    {}
func (p *PlainObject) SetRotation(rotation models.Quaternion) {}

// StubContainer records attached objects in order.
type StubContainer struct {
	Name     string
	Attached []entity.Object
}

func (c *StubContainer) Attach(obj entity.Object) {
	c.Attached = append(c.Attached, obj)
}
