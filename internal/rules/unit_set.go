package rules

import (
	"github.com/samber/lo"

	"github.com/limaJavier/eligibility/internal/catalog"
)

// UnitSet is a set of catalog units keyed by unit id, so membership
// follows catalog identity. Construction de-duplicates: a slice with
// repeated units builds the same set as its de-duplicated form.
type UnitSet map[uint64]catalog.Unit

func NewUnitSet(units ...catalog.Unit) UnitSet {
	set := make(UnitSet, len(units))
	lo.ForEach(units, func(unit catalog.Unit, _ int) {
		set[unit.Id] = unit
	})
	return set
}

func (set UnitSet) Contains(unit catalog.Unit) bool {
	_, ok := set[unit.Id]
	return ok
}

// ContainsAll reports whether every unit of other is a member of set.
// Vacuously true when other is empty.
func (set UnitSet) ContainsAll(other UnitSet) bool {
	return lo.EveryBy(lo.Keys(other), func(id uint64) bool {
		_, ok := set[id]
		return ok
	})
}

// IntersectionSize counts the units common to set and other.
func (set UnitSet) IntersectionSize(other UnitSet) int {
	return lo.CountBy(lo.Keys(other), func(id uint64) bool {
		_, ok := set[id]
		return ok
	})
}

// IntersectsWith reports whether set and other share at least one unit.
func (set UnitSet) IntersectsWith(other UnitSet) bool {
	return lo.SomeBy(lo.Keys(other), func(id uint64) bool {
		_, ok := set[id]
		return ok
	})
}

// Union returns a new set holding the members of both sets; neither
// operand is modified.
func (set UnitSet) Union(other UnitSet) UnitSet {
	union := make(UnitSet, len(set)+len(other))
	for _, operand := range []UnitSet{set, other} {
		for id, unit := range operand {
			union[id] = unit
		}
	}
	return union
}

func (set UnitSet) Size() int {
	return len(set)
}
