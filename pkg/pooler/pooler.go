// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package pooler recycles pre-instantiated game entities by category tag instead of
// creating and destroying them every time they are spawned.
package pooler

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/eapache/queue"
	"github.com/elliotchance/pie/v2"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-core-objectpool/pkg/config"
	"github.com/AccelByte/extend-core-objectpool/pkg/constants"
	"github.com/AccelByte/extend-core-objectpool/pkg/entity"
	"github.com/AccelByte/extend-core-objectpool/pkg/envelope"
	"github.com/AccelByte/extend-core-objectpool/pkg/metrics"
	"github.com/AccelByte/extend-core-objectpool/pkg/models"
	"github.com/AccelByte/extend-core-objectpool/pkg/utils"
)

// Spawner is what gameplay components depend on to spawn and despawn pooled entities.
// Pass the Manager in explicitly; there is no package-level pool.
type Spawner interface {
	Acquire(tag models.Tag) (entity.Poolable, error)
	Release(obj entity.Object) error
}

var _ Spawner = (*Manager)(nil)

/*
Manager owns one FIFO queue of inactive instances per tag. The set of tags is fixed by Initialize;
queues grow without bound when Acquire finds them empty.

An instance is either queued or checked out, never both. Manager is meant to be driven from the
engine's main loop and is not safe for concurrent use.
*/
type Manager struct {
	anchor      models.Vector3
	descriptors map[models.Tag]Descriptor
	queues      map[models.Tag]*queue.Queue
	checkedOut  map[entity.Poolable]checkout
	known       map[entity.Poolable]models.Tag
	active      map[models.Tag]int
	created     map[models.Tag]int
	seq         uint64
	initialized bool

	metrics metrics.PoolMetrics
	log     *logrus.Entry
	scratch scratch
}

// New creates an empty manager. A nil cfg places acquired instances at the origin and
// nil poolMetrics disables metrics.
func New(cfg *config.Config, poolMetrics metrics.PoolMetrics) *Manager {
	if poolMetrics == nil {
		poolMetrics = nopMetrics{}
	}

	var anchor models.Vector3
	if cfg != nil {
		anchor = cfg.Anchor()
	}

	return &Manager{
		anchor:      anchor,
		descriptors: make(map[models.Tag]Descriptor),
		queues:      make(map[models.Tag]*queue.Queue),
		checkedOut:  make(map[entity.Poolable]checkout),
		known:       make(map[entity.Poolable]models.Tag),
		active:      make(map[models.Tag]int),
		created:     make(map[models.Tag]int),
		metrics:     poolMetrics,
		log:         logrus.WithField(constants.LogFieldComponent, constants.ComponentPooler),
		scratch:     newScratch(),
	}
}

// Initialize registers one pool per descriptor and pre-instantiates its initial instances.
//
// Bad descriptors are logged and skipped, they never abort startup. The returned error joins
// every problem found; the manager is usable whatever it returns, except ErrAlreadyInitialized.
// A nil scope starts a new root scope.
func (m *Manager) Initialize(scope *envelope.Scope, descriptors []Descriptor) error {
	if m.initialized {
		return ErrAlreadyInitialized
	}
	m.initialized = true

	if scope == nil {
		scope = envelope.NewRootScope(context.Background(), "pooler", "")
		defer scope.Finish()
	}

	initScope := scope.NewChildScope("pooler.Initialize")
	defer initScope.Finish()

	m.log = initScope.Log.WithField(constants.LogFieldComponent, constants.ComponentPooler)

	var errs []error
	for i, descriptor := range descriptors {
		if err := m.register(i, descriptor); err != nil {
			errs = append(errs, err)
		}
	}

	initScope.SetAttributes(envelope.PoolTagAttribute, pie.Map(m.Tags(), models.Tag.String))
	m.log.Infof("initialized %d pools", len(m.queues))

	err := errors.Join(errs...)
	initScope.RecordError(err)
	return err
}

func (m *Manager) register(index int, descriptor Descriptor) error {
	if err := descriptor.Validate(); err != nil {
		err = fmt.Errorf("descriptor %d: %w: %w", index, ErrInvalidDescriptor, err)
		m.log.WithField("code", models.ValidationErrorCode(err)).Error(err)
		return err
	}

	log := m.log.WithField(constants.LogFieldTag, descriptor.Tag)

	if _, exists := m.queues[descriptor.Tag]; exists {
		err := fmt.Errorf("descriptor %d: %w: tag %s: %w", index, ErrInvalidDescriptor, descriptor.Tag, models.ValidationErrorDuplicateTag)
		log.WithField("code", models.ValidationErrorCode(err)).Error(err)
		return err
	}

	pool := queue.New()
	m.queues[descriptor.Tag] = pool
	m.descriptors[descriptor.Tag] = descriptor
	defer m.report(descriptor.Tag)

	if utils.IsNil(descriptor.Prototype) {
		log.Warnf("pool with tag %s has no prototype, instantiation skipped", descriptor.Tag)
		return fmt.Errorf("tag %s: %w", descriptor.Tag, ErrMissingPrototype)
	}

	for n := 0; n < descriptor.InitialCount; n++ {
		instance, err := m.instantiate(descriptor)
		if err != nil {
			log.WithError(err).Errorf("stopped pre-instantiating after %d of %d instances", n, descriptor.InitialCount)
			return err
		}
		instance.SetActive(false)
		pool.Add(instance)
	}

	log.Debugf("pool registered with %d instances", pool.Length())
	return nil
}

// instantiate creates one instance and parents it. Identity tracking needs a comparable
// dynamic type, so that is checked here rather than on every release. An instance the
// manager already owns is refused so it can never sit in a queue twice.
func (m *Manager) instantiate(descriptor Descriptor) (entity.Poolable, error) {
	instance, err := descriptor.Prototype.Instantiate()
	if err != nil {
		return nil, fmt.Errorf("tag %s: instantiate: %w", descriptor.Tag, err)
	}
	if utils.IsNil(instance) || !utils.IsComparable(instance) {
		return nil, fmt.Errorf("tag %s: prototype produced %T: %w", descriptor.Tag, instance, ErrNotPoolable)
	}
	if owner, seen := m.known[instance]; seen {
		return nil, fmt.Errorf("tag %s: prototype returned an instance of pool %s: %w", descriptor.Tag, owner, ErrDuplicateInstance)
	}
	m.known[instance] = descriptor.Tag

	if !utils.IsNil(descriptor.Container) {
		descriptor.Container.Attach(instance)
	}
	m.created[descriptor.Tag]++

	return instance, nil
}

// Acquire hands out an instance of tag, creating one when the queue is empty.
// The instance is activated, tagged, notified through OnSpawn and moved to the anchor with identity rotation.
func (m *Manager) Acquire(tag models.Tag) (entity.Poolable, error) {
	pool, ok := m.queues[tag]
	if !ok {
		m.log.WithField(constants.LogFieldTag, tag).Warnf("pool with tag %s doesn't exist", tag)
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}

	var instance entity.Poolable
	if pool.Length() > 0 {
		instance = pool.Remove().(entity.Poolable)
	} else {
		descriptor := m.descriptors[tag]
		if utils.IsNil(descriptor.Prototype) {
			m.log.WithField(constants.LogFieldTag, tag).Warnf("pool with tag %s is empty and has no prototype", tag)
			return nil, fmt.Errorf("tag %s: %w", tag, ErrMissingPrototype)
		}

		var err error
		instance, err = m.instantiate(descriptor)
		if err != nil {
			m.log.WithField(constants.LogFieldTag, tag).WithError(err).Warn("instantiation error")
			return nil, err
		}
		m.metrics.AddSynthesizedInstance(string(tag))
	}

	instance.SetActive(true)
	instance.SetTag(tag)
	instance.OnSpawn()
	instance.SetPosition(m.anchor)
	instance.SetRotation(models.IdentityRotation())

	m.seq++
	m.checkedOut[instance] = checkout{tag: tag, seq: m.seq}
	m.active[tag]++
	m.report(tag)

	return instance, nil
}

// Release returns obj to the queue of the tag obj itself reports, which may differ from the tag it was acquired with.
func (m *Manager) Release(obj entity.Object) error {
	instance, ok := obj.(entity.Poolable)
	if !ok || utils.IsNil(instance) || !utils.IsComparable(instance) {
		m.metrics.AddRejectedRelease("", constants.RejectReasonNotPoolable)
		m.log.Warnf("object %T does not implement the pooling contract", obj)
		return fmt.Errorf("%T: %w", obj, ErrNotPoolable)
	}

	tag := instance.Tag()
	log := m.log.WithField(constants.LogFieldTag, tag)

	if _, ok := m.queues[tag]; !ok {
		m.metrics.AddRejectedRelease(string(tag), constants.RejectReasonUnknownTag)
		log.Warnf("cannot release into pool with tag %s, it doesn't exist", tag)
		return fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}

	record, ok := m.checkedOut[instance]
	if !ok {
		m.metrics.AddRejectedRelease(string(tag), constants.RejectReasonNotCheckedOut)
		log.Warn("released instance is not checked out")
		return fmt.Errorf("tag %s: %w", tag, ErrNotCheckedOut)
	}

	m.requeue(instance, record, tag)
	return nil
}

// ResetAll reclaims every checked-out instance in acquisition order: each one is notified through
// OnReturnToPool, deactivated and queued under its own tag, or under the tag it was acquired with
// when its own tag is not a pool. It returns the number of instances reclaimed.
func (m *Manager) ResetAll() int {
	entries := m.checkoutOrder()
	defer m.scratch.put(entries)

	for _, entry := range entries {
		tag := entry.instance.Tag()
		if _, ok := m.queues[tag]; !ok {
			m.log.WithField(constants.LogFieldTag, tag).Warnf("instance reports unknown tag %s, returning it to %s", tag, entry.tag)
			tag = entry.tag
		}
		m.requeue(entry.instance, entry.checkout, tag)
	}

	if len(entries) > 0 {
		m.log.Debugf("reset returned %d instances to their pools", len(entries))
	}
	return len(entries)
}

// checkoutOrder lists the checked-out instances in acquisition order. The slice comes from
// scratch and is sorted in place; the caller hands it back with scratch.put.
func (m *Manager) checkoutOrder() []checkoutEntry {
	entries := m.scratch.get()
	for instance, record := range m.checkedOut {
		entries = append(entries, checkoutEntry{instance: instance, checkout: record})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})
	return entries
}

func (m *Manager) requeue(instance entity.Poolable, record checkout, tag models.Tag) {
	delete(m.checkedOut, instance)
	m.active[record.tag]--

	instance.OnReturnToPool()
	instance.SetActive(false)
	m.queues[tag].Add(instance)

	m.report(record.tag)
	if tag != record.tag {
		m.report(tag)
	}
}

func (m *Manager) report(tag models.Tag) {
	m.metrics.SetPooledInstances(string(tag), m.Pooled(tag))
	m.metrics.SetActiveInstances(string(tag), m.active[tag])
}

// Tags returns the registered tags in sorted order.
func (m *Manager) Tags() []models.Tag {
	return pie.Sort(pie.Keys(m.queues))
}

// Pooled returns the number of instances waiting in the queue of tag.
func (m *Manager) Pooled(tag models.Tag) int {
	pool, ok := m.queues[tag]
	if !ok {
		return 0
	}
	return pool.Length()
}

// Active returns the number of instances acquired under tag and not yet released.
func (m *Manager) Active(tag models.Tag) int {
	return m.active[tag]
}

// Created returns how many instances the pool of tag has instantiated in total.
func (m *Manager) Created(tag models.Tag) int {
	return m.created[tag]
}

// IsCheckedOut reports whether obj was acquired from this manager and not released since.
func (m *Manager) IsCheckedOut(obj entity.Object) bool {
	instance, ok := obj.(entity.Poolable)
	if !ok || !utils.IsComparable(instance) {
		return false
	}
	_, ok = m.checkedOut[instance]
	return ok
}

// Anchor returns the position acquired instances are moved to.
func (m *Manager) Anchor() models.Vector3 {
	return m.anchor
}

// SetAnchor moves the position future acquires are placed at.
func (m *Manager) SetAnchor(anchor models.Vector3) {
	m.anchor = anchor
}

type nopMetrics struct{}

func (nopMetrics) SetPooledInstances(string, int)    {}
func (nopMetrics) SetActiveInstances(string, int)    {}
func (nopMetrics) AddSynthesizedInstance(string)     {}
func (nopMetrics) AddRejectedRelease(string, string) {}
