/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Magic holds the relevant-occupancy mask and the flattened attack table for
// a single square. Unlike the classic "fancy magic" scheme this engine does
// not multiply by a found magic number - the table index is the PEXT
// (parallel bits extract) of the occupancy by Mask, which is a bijection
// between occupancy subsets and table slots by construction. There is no
// magic multiplier to search for and nothing to verify: every possible
// subset of Mask maps to exactly one slot, collision-free, for any mask.
type Magic struct {
	Mask    Bitboard
	Attacks []Bitboard
}

// initMagics builds the attack table for all squares of a sliding piece
// (rook or bishop, selected by directions). For each square it computes the
// relevant-occupancy Mask, then walks every subset of that mask with the
// Carry-Rippler trick (https://www.chessprogramming.org/Traversing_Subsets_of_a_Set)
// and stores the sliding attack for that subset at its PEXT index. This is a
// single deterministic pass per square - no trial-and-error search, no PRNG,
// nothing to retry on collision.
func initMagics(table *[]Bitboard, magics *[SqLength]Magic, directions *[4]Direction) {
	var edges, b Bitboard
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		// Board edges are not considered in the relevant occupancies: a slider
		// standing on or blocked by an edge square always "sees" the edge, so
		// whether it is occupied never changes the attack set.
		edges = ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())

		m := &(*magics)[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges

		// Set the offset for the attacks table of the square. Individual
		// table sizes per square ("fancy" layout) share one contiguous
		// backing array.
		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Use Carry-Rippler to enumerate every subset of Mask and place its
		// sliding attack bitboard directly at the subset's PEXT index.
		b = 0
		size = 0
		for {
			m.Attacks[pext(uint64(b), uint64(m.Mask))] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 { // do - while(b)
				break
			}
		}
	}
}

// slidingAttack calculate sliding attacks along the given directions for the given square
// and the given board occupation. Uses loop in loop and is not very efficient.
// Doesn't matter for pre-computing but should not be used during move gen or search
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			s = s.To(directions[i])
			if !s.IsValid() {
				break
			}
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
			if !s.To(directions[i]).IsValid() || SquareDistance(s, s.To(directions[i])) != 1 {
				break
			}
		}
	}
	return attack
}

// index calculates the index in the table for the attacks: the PEXT of the
// occupied board restricted to Mask, i.e. the occupied bits that fall inside
// Mask compacted into the low-order bits in rank order.
// https://www.chessprogramming.org/BMI2#PEXTBitboards
func (m *Magic) index(occupied Bitboard) uint {
	return uint(pext(uint64(occupied), uint64(m.Mask)))
}

// pext extracts the bits of x selected by mask into a dense value occupying
// the low-order bits, preserving their relative order - the same operation
// the BMI2 PEXT hardware instruction performs. A software fallback is used
// here since this engine targets portable Go without cgo/asm intrinsics.
func pext(x, mask uint64) uint64 {
	var res uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		lsb := mask & (-mask)
		if x&lsb != 0 {
			res |= bit
		}
		mask &^= lsb
	}
	return res
}
