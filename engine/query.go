package engine

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/glyphstream/core"
)

// CharacterSort orders a flat character query
type CharacterSort int

const (
	// SortRandom shuffles the characters
	SortRandom CharacterSort = iota
	// SortTopToBottomLeftToRight is the default reading order
	SortTopToBottomLeftToRight
	// SortTopToBottomRightToLeft reverses SortBottomToTopLeftToRight
	SortTopToBottomRightToLeft
	// SortBottomToTopLeftToRight ascends rows, then columns
	SortBottomToTopLeftToRight
	// SortBottomToTopRightToLeft reverses the reading order
	SortBottomToTopRightToLeft
	// SortOutsideRowToMiddle alternates between the row extremes,
	// converging on the middle
	SortOutsideRowToMiddle
	// SortMiddleRowToOutside reverses SortOutsideRowToMiddle
	SortMiddleRowToOutside
)

func (s CharacterSort) String() string {
	switch s {
	case SortRandom:
		return "Random"
	case SortTopToBottomLeftToRight:
		return "TopToBottomLeftToRight"
	case SortTopToBottomRightToLeft:
		return "TopToBottomRightToLeft"
	case SortBottomToTopLeftToRight:
		return "BottomToTopLeftToRight"
	case SortBottomToTopRightToLeft:
		return "BottomToTopRightToLeft"
	case SortOutsideRowToMiddle:
		return "OutsideRowToMiddle"
	case SortMiddleRowToOutside:
		return "MiddleRowToOutside"
	}
	return fmt.Sprintf("CharacterSort(%d)", int(s))
}

// CharacterGroup partitions a character query into ordered groups
type CharacterGroup int

const (
	// GroupColumnLeftToRight yields one group per column, left first
	GroupColumnLeftToRight CharacterGroup = iota
	// GroupColumnRightToLeft yields one group per column, right first
	GroupColumnRightToLeft
	// GroupRowTopToBottom yields one group per row, top first
	GroupRowTopToBottom
	// GroupRowBottomToTop yields one group per row, bottom first
	GroupRowBottomToTop
	// GroupDiagonalTopLeftToBottomRight groups by column-row constant
	GroupDiagonalTopLeftToBottomRight
	// GroupDiagonalBottomLeftToTopRight groups by row+column constant
	GroupDiagonalBottomLeftToTopRight
	// GroupDiagonalTopRightToBottomLeft reverses the anti-diagonal order
	GroupDiagonalTopRightToBottomLeft
	// GroupDiagonalBottomRightToTopLeft reverses the main-diagonal order
	GroupDiagonalBottomRightToTopLeft
	// GroupCenterToOutsideDiamonds groups by Manhattan distance from the
	// canvas center, nearest first
	GroupCenterToOutsideDiamonds
	// GroupOutsideToCenterDiamonds groups by Manhattan distance from the
	// canvas center, farthest first
	GroupOutsideToCenterDiamonds
)

func (g CharacterGroup) String() string {
	switch g {
	case GroupColumnLeftToRight:
		return "ColumnLeftToRight"
	case GroupColumnRightToLeft:
		return "ColumnRightToLeft"
	case GroupRowTopToBottom:
		return "RowTopToBottom"
	case GroupRowBottomToTop:
		return "RowBottomToTop"
	case GroupDiagonalTopLeftToBottomRight:
		return "DiagonalTopLeftToBottomRight"
	case GroupDiagonalBottomLeftToTopRight:
		return "DiagonalBottomLeftToTopRight"
	case GroupDiagonalTopRightToBottomLeft:
		return "DiagonalTopRightToBottomLeft"
	case GroupDiagonalBottomRightToTopLeft:
		return "DiagonalBottomRightToTopLeft"
	case GroupCenterToOutsideDiamonds:
		return "CenterToOutsideDiamonds"
	case GroupOutsideToCenterDiamonds:
		return "OutsideToCenterDiamonds"
	}
	return fmt.Sprintf("CharacterGroup(%d)", int(g))
}

// Selection chooses which character subsets a query covers
type Selection struct {
	Input bool
	Fill  bool
	Added bool
}

// collect gathers the selected subsets into one slice
func (s *Stage) collect(sel Selection) []*EffectCharacter {
	var chars []*EffectCharacter
	if sel.Input {
		chars = append(chars, s.input...)
	}
	if sel.Fill {
		chars = append(chars, s.fill...)
	}
	if sel.Added {
		chars = append(chars, s.added...)
	}
	return chars
}

// byRowAscColumnAsc orders ascending row, then ascending column
func byRowAscColumnAsc(a, b *EffectCharacter) int {
	if a.InputCoord.Row != b.InputCoord.Row {
		return a.InputCoord.Row - b.InputCoord.Row
	}
	return a.InputCoord.Column - b.InputCoord.Column
}

// byRowDescColumnAsc orders descending row, then ascending column
func byRowDescColumnAsc(a, b *EffectCharacter) int {
	if a.InputCoord.Row != b.InputCoord.Row {
		return b.InputCoord.Row - a.InputCoord.Row
	}
	return a.InputCoord.Column - b.InputCoord.Column
}

// Characters returns the selected characters in the given order. An
// unrecognized sort value is a configuration error and panics immediately.
func (s *Stage) Characters(sel Selection, sort CharacterSort) []*EffectCharacter {
	chars := s.collect(sel)
	slices.SortStableFunc(chars, byRowDescColumnAsc)

	switch sort {
	case SortRandom:
		s.rng.Shuffle(len(chars), func(i, j int) {
			chars[i], chars[j] = chars[j], chars[i]
		})
	case SortTopToBottomLeftToRight:
		// already in the base order
	case SortBottomToTopRightToLeft:
		slices.Reverse(chars)
	case SortBottomToTopLeftToRight:
		slices.SortStableFunc(chars, byRowAscColumnAsc)
	case SortTopToBottomRightToLeft:
		slices.SortStableFunc(chars, byRowAscColumnAsc)
		slices.Reverse(chars)
	case SortOutsideRowToMiddle:
		chars = alternateEnds(chars)
	case SortMiddleRowToOutside:
		chars = alternateEnds(chars)
		slices.Reverse(chars)
	default:
		panic(fmt.Sprintf("engine: invalid character sort: %s", sort))
	}
	return chars
}

// alternateEnds rebuilds the slice by alternately taking from the front
// and the back, so [a b c d] becomes [a d b c]
func alternateEnds(chars []*EffectCharacter) []*EffectCharacter {
	out := make([]*EffectCharacter, 0, len(chars))
	lo, hi := 0, len(chars)-1
	for i := 0; lo <= hi; i++ {
		if i%2 == 0 {
			out = append(out, chars[lo])
			lo++
		} else {
			out = append(out, chars[hi])
			hi--
		}
	}
	return out
}

// CharactersGrouped returns the selected characters partitioned per the
// grouping, one inner slice per non-empty group. Group membership and
// ordering depend only on canvas geometry, never on call order. An
// unrecognized group value is a configuration error and panics immediately.
func (s *Stage) CharactersGrouped(group CharacterGroup, sel Selection) [][]*EffectCharacter {
	chars := s.collect(sel)
	slices.SortStableFunc(chars, byRowAscColumnAsc)

	switch group {
	case GroupColumnLeftToRight, GroupColumnRightToLeft:
		groups := bucketRange(chars, 0, s.Canvas.Right, func(ch *EffectCharacter) int {
			return ch.InputCoord.Column
		})
		if group == GroupColumnRightToLeft {
			slices.Reverse(groups)
		}
		return groups

	case GroupRowBottomToTop, GroupRowTopToBottom:
		groups := bucketRange(chars, 0, s.Canvas.Top, func(ch *EffectCharacter) int {
			return ch.InputCoord.Row
		})
		if group == GroupRowTopToBottom {
			slices.Reverse(groups)
		}
		return groups

	case GroupDiagonalBottomLeftToTopRight, GroupDiagonalTopRightToBottomLeft:
		groups := bucketRange(chars, 0, s.Canvas.Top+s.Canvas.Right, func(ch *EffectCharacter) int {
			return ch.InputCoord.Row + ch.InputCoord.Column
		})
		if group == GroupDiagonalTopRightToBottomLeft {
			slices.Reverse(groups)
		}
		return groups

	case GroupDiagonalTopLeftToBottomRight, GroupDiagonalBottomRightToTopLeft:
		groups := bucketRange(chars, s.Canvas.Left-s.Canvas.Top, s.Canvas.Right-s.Canvas.Bottom,
			func(ch *EffectCharacter) int {
				return ch.InputCoord.Column - ch.InputCoord.Row
			})
		if group == GroupDiagonalBottomRightToTopLeft {
			slices.Reverse(groups)
		}
		return groups

	case GroupCenterToOutsideDiamonds, GroupOutsideToCenterDiamonds:
		center := s.Canvas.Center()
		maxDist := s.Canvas.Top + s.Canvas.Right
		groups := bucketRange(chars, 0, maxDist, func(ch *EffectCharacter) int {
			return core.ManhattanDistance(ch.InputCoord, center)
		})
		if group == GroupOutsideToCenterDiamonds {
			slices.Reverse(groups)
		}
		return groups

	default:
		panic(fmt.Sprintf("engine: invalid character group: %s", group))
	}
}

// bucketRange partitions characters by key over [lo, hi], preserving the
// incoming order within each bucket and omitting empty buckets
func bucketRange(chars []*EffectCharacter, lo, hi int, key func(*EffectCharacter) int) [][]*EffectCharacter {
	buckets := make(map[int][]*EffectCharacter)
	for _, ch := range chars {
		buckets[key(ch)] = append(buckets[key(ch)], ch)
	}
	var groups [][]*EffectCharacter
	for k := lo; k <= hi; k++ {
		if b, ok := buckets[k]; ok {
			groups = append(groups, b)
		}
	}
	return groups
}
