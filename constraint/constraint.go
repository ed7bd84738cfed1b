// File: constraint/constraint.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-width bit-field codec for core-type selections. Layout, low to
// high: PayloadWidth payload bits, then the marker block. In SINGLE mode
// the payload holds one literal id (the legacy encoding, marker zero, so
// old single-id values decode unchanged); in MULTI mode payload bit k set
// means id k is selected. The all-ones value is the out-of-band Any
// sentinel.

package constraint

import (
	"math/bits"

	"github.com/momentics/hioload-coretypes/api"
	"github.com/momentics/hioload-coretypes/coretype"
)

const (
	markerBits = 8

	// PayloadWidth is the number of usable payload bits; every encodable
	// core-type id is < PayloadWidth.
	PayloadWidth = 64 - markerBits

	payloadMask = uint64(1)<<PayloadWidth - 1

	modeSingle = uint64(0)
	modeMulti  = uint64(1)
)

// Constraint is a compact, copyable core-type selection.
type Constraint uint64

// Any is the unconstrained sentinel: restrict to nothing, use every core
// type known to whatever registry the value is resolved against.
const Any = Constraint(^uint64(0))

// New returns an unconstrained value.
func New() Constraint {
	return Any
}

// Single encodes one id in the legacy single-id form.
func Single(id int) (Constraint, error) {
	var c Constraint
	if err := c.SetCoreType(id); err != nil {
		return 0, err
	}
	return c, nil
}

// FromIDs encodes a set of ids in the set-valued form.
func FromIDs(ids ...int) (Constraint, error) {
	var c Constraint
	if err := c.SetCoreTypes(ids); err != nil {
		return 0, err
	}
	return c, nil
}

// IsAny reports whether the value is the unconstrained sentinel.
func (c Constraint) IsAny() bool {
	return c == Any
}

func (c Constraint) mode() uint64 {
	return uint64(c) >> PayloadWidth
}

func (c Constraint) payload() uint64 {
	return uint64(c) & payloadMask
}

// bitmap decodes the explicit member set. Any decodes to the empty
// bitmap with explicit=false.
func (c Constraint) bitmap() (members uint64, explicit bool) {
	if c.IsAny() {
		return 0, false
	}
	if c.mode() == modeMulti {
		return c.payload(), true
	}
	return uint64(1) << c.payload(), true
}

func checkID(id int) error {
	if id < 0 || id >= PayloadWidth {
		return api.NewError(api.ErrCodeInvalidCoreTypeID, "core type id exceeds payload width").
			WithContext("id", id).WithContext("width", PayloadWidth)
	}
	return nil
}

// SetCoreType replaces the value with the legacy SINGLE encoding of one
// id.
func (c *Constraint) SetCoreType(id int) error {
	if err := checkID(id); err != nil {
		return err
	}
	*c = Constraint(modeSingle<<PayloadWidth | uint64(id))
	return nil
}

// SetCoreTypes replaces the value with the MULTI encoding of the given
// ids. The encoding is canonical: the same set yields the same bits
// regardless of order or duplicates. An empty collection is rejected;
// use Any for "unconstrained".
func (c *Constraint) SetCoreTypes(ids []int) error {
	if len(ids) == 0 {
		return api.NewError(api.ErrCodeEmptyConstraint, "explicit constraint needs at least one core type")
	}
	var members uint64
	for _, id := range ids {
		if err := checkID(id); err != nil {
			return err
		}
		members |= uint64(1) << uint(id)
	}
	*c = Constraint(modeMulti<<PayloadWidth | members)
	return nil
}

// CoreTypes decodes the value in isolation: the explicit member ids in
// ascending order. The Any sentinel yields explicit=false and nil ids;
// resolving it to concrete ids needs a registry (see Resolve).
func (c Constraint) CoreTypes() (ids []int, explicit bool) {
	members, explicit := c.bitmap()
	if !explicit {
		return nil, false
	}
	ids = make([]int, 0, bits.OnesCount64(members))
	for members != 0 {
		id := bits.TrailingZeros64(members)
		ids = append(ids, id)
		members &^= uint64(1) << uint(id)
	}
	return ids, true
}

// Resolve decodes against a registry: Any yields every id the registry
// knows, explicit values yield their member ids ascending.
func (c Constraint) Resolve(reg *coretype.Registry) []int {
	if ids, explicit := c.CoreTypes(); explicit {
		return ids
	}
	return reg.IDs()
}

// SingleCoreType reports whether the decoded set has exactly one member,
// in either encoding mode. Any is not single.
func (c Constraint) SingleCoreType() bool {
	members, explicit := c.bitmap()
	return explicit && bits.OnesCount64(members) == 1
}

// HasCoreType reports explicit membership of id. Any has no explicit
// members; out-of-range ids are simply absent.
func (c Constraint) HasCoreType(id int) bool {
	if id < 0 || id >= PayloadWidth {
		return false
	}
	members, explicit := c.bitmap()
	return explicit && members&(uint64(1)<<uint(id)) != 0
}

// AddCoreType inserts id into the member set and re-encodes in MULTI
// mode. Adding to Any starts a fresh one-element selection.
func (c *Constraint) AddCoreType(id int) error {
	if err := checkID(id); err != nil {
		return err
	}
	members, _ := c.bitmap()
	members |= uint64(1) << uint(id)
	*c = Constraint(modeMulti<<PayloadWidth | members)
	return nil
}

// RemoveCoreType removes id from the member set; removing an absent id
// is a no-op. Removing the last member returns the value to Any, since
// an explicit empty selection is not representable.
func (c *Constraint) RemoveCoreType(id int) {
	if id < 0 || id >= PayloadWidth {
		return
	}
	members, explicit := c.bitmap()
	if !explicit {
		return
	}
	members &^= uint64(1) << uint(id)
	if members == 0 {
		*c = Any
		return
	}
	*c = Constraint(modeMulti<<PayloadWidth | members)
}

// ClearCoreTypes resets the value to the unconstrained sentinel.
func (c *Constraint) ClearCoreTypes() {
	*c = Any
}
