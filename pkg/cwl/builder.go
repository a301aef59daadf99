// SPDX-License-Identifier: MPL-2.0

package cwl

import (
	"cmp"
	"strings"

	"golang.org/x/exp/slices"
)

// buildInputs turns the normalized input records into argument entities,
// sorted by position. Arguments without a position sort after every
// positioned one and keep their declaration order.
func buildInputs(records []InputRecord) []*InputArgument {
	args := make([]*InputArgument, 0, len(records))
	for _, rec := range records {
		args = append(args, newInputFromRecord(rec))
	}

	slices.SortStableFunc(args, comparePosition)
	return args
}

// buildOutputs derives output entities; outputs are never sorted.
func buildOutputs(records []OutputRecord) []*OutputArgument {
	outs := make([]*OutputArgument, 0, len(records))
	for _, rec := range records {
		typ, array, _ := splitType(rec.Type, rec.Items)
		outs = append(outs, &OutputArgument{
			ID:    rec.ID,
			Type:  OutputType(typ),
			Array: array,
		})
	}
	return outs
}

func newInputFromRecord(rec InputRecord) *InputArgument {
	typ, array, optional := splitType(rec.Type, rec.Items)

	arg := &InputArgument{
		ID:       rec.ID,
		Type:     ArgumentType(typ),
		Array:    array,
		Optional: optional,
		Default:  rec.Default,
		Separate: true,
	}

	if b := rec.Binding; b != nil {
		arg.Position = b.Position
		arg.Prefix = b.Prefix
		arg.ItemSeparator = b.ItemSeparator
		if b.Separate != nil {
			arg.Separate = *b.Separate
		}
	}

	return arg
}

// splitType strips the "[]" or "?" suffix from a declared type, or resolves
// an explicit "array" type through items.
func splitType(declared, items string) (typ string, array, optional bool) {
	switch {
	case declared == typeArray:
		return items, true, false
	case strings.HasSuffix(declared, suffixArray):
		return strings.TrimSuffix(declared, suffixArray), true, false
	case strings.HasSuffix(declared, suffixOptional):
		return strings.TrimSuffix(declared, suffixOptional), false, true
	default:
		return declared, false, false
	}
}

func comparePosition(a, b *InputArgument) int {
	switch {
	case a.Position == nil && b.Position == nil:
		return 0
	case a.Position == nil:
		return 1
	case b.Position == nil:
		return -1
	default:
		return cmp.Compare(*a.Position, *b.Position)
	}
}
