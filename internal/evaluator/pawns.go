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

package evaluator

import (
	. "github.com/rkoval/branchfish/internal/config"
	. "github.com/rkoval/branchfish/internal/types"
)

func (e *Evaluator) evaluatePawns() *Score {
	tmpScore.MidGameValue = 0
	tmpScore.EndGameValue = 0

	// look on cache table
	if Settings.Eval.UsePawnCache {
		entry := e.pawnCache.getEntry(e.position.PawnKey())
		if entry != nil {
			tmpScore.MidGameValue += entry.score.MidGameValue
			tmpScore.EndGameValue += entry.score.EndGameValue
			return &tmpScore
		}
	}

	// no cache hit - calculate from scratch for both colors
	e.evaluatePawnsForColor(White)
	e.evaluatePawnsForColor(Black)

	// store in cache
	if Settings.Eval.UsePawnCache {
		e.pawnCache.put(e.position.PawnKey(), &tmpScore)
	}

	return &tmpScore
}

// evaluatePawnsForColor scores pawn structure for one color and adds (White)
// or subtracts (Black) the result from tmpScore so the final score is
// always from White's perspective.
func (e *Evaluator) evaluatePawnsForColor(us Color) {
	them := us.Flip()
	sign := int16(us.Direction())

	ourPawns := e.position.PiecesBb(us, Pawn)
	enemyPawns := e.position.PiecesBb(them, Pawn)
	occupied := e.position.OccupiedAll()

	// doubled pawns - extra pawns beyond the first on a file
	for f := FileA; f <= FileH; f++ {
		onFile := (ourPawns & f.Bb()).PopCount()
		if onFile > 1 {
			extra := int16(onFile - 1)
			tmpScore.MidGameValue += sign * Settings.Eval.PawnDoubledMidMalus * extra
			tmpScore.EndGameValue += sign * Settings.Eval.PawnDoubledEndMalus * extra
		}
	}

	pawns := ourPawns
	for pawns != BbZero {
		sq := pawns.PopLsb()

		// isolated pawn - no friendly pawn on a neighbouring file
		if ourPawns&sq.NeighbourFilesMask() == BbZero {
			tmpScore.MidGameValue += sign * Settings.Eval.PawnIsolatedMidMalus
			tmpScore.EndGameValue += sign * Settings.Eval.PawnIsolatedEndMalus
			continue
		}

		// phalanx - a friendly pawn stands abreast on a neighbouring file
		if ourPawns&sq.NeighbourFilesMask()&sq.RankOf().Bb() != BbZero {
			tmpScore.MidGameValue += sign * Settings.Eval.PawnPhalanxMidBonus
			tmpScore.EndGameValue += sign * Settings.Eval.PawnPhalanxEndBonus
		}

		// supported - defended by a friendly pawn
		if GetPawnAttacks(them, sq)&ourPawns != BbZero {
			tmpScore.MidGameValue += sign * Settings.Eval.PawnSupportedMidBonus
			tmpScore.EndGameValue += sign * Settings.Eval.PawnSupportedEndBonus
		}

		// blocked - the stop square in front of the pawn is occupied
		stop := ShiftBitboard(sq.Bb(), us.MoveDirection())
		if stop&occupied != BbZero {
			tmpScore.MidGameValue += sign * Settings.Eval.PawnBlockedMidMalus
			tmpScore.EndGameValue += sign * Settings.Eval.PawnBlockedEndMalus
		}

		// backward - not on its starting rank, no friendly pawn on a
		// neighbouring file behind it, and an enemy pawn attacks its stop
		// square
		if sq.RankOf() != startRank[us] {
			behind := ourPawns & sq.NeighbourFilesMask() & behindMask(us, sq)
			stopAttackedByEnemy := GetPawnAttacks(us, stop.Lsb())&enemyPawns != BbZero
			if behind == BbZero && stop != BbZero && stopAttackedByEnemy {
				tmpScore.MidGameValue += sign * Settings.Eval.PawnBackwardMidMalus
				tmpScore.EndGameValue += sign * Settings.Eval.PawnBackwardEndMalus
			}
		}

		// passed - no enemy pawn can stop or capture this pawn on its way to
		// promotion. Base bonus is indexed by the rank as seen from the
		// pawn's own direction of travel; a passer defended by a friendly
		// pawn or standing abreast of another passer gets an extra bonus.
		if sq.PassedPawnMask(us)&enemyPawns == BbZero {
			rankIdx := passedRankIndex(us, sq)
			tmpScore.MidGameValue += sign * Settings.Eval.PawnPassedMidBonusByRank[rankIdx]
			tmpScore.EndGameValue += sign * Settings.Eval.PawnPassedEndBonusByRank[rankIdx]

			if GetPawnAttacks(them, sq)&ourPawns != BbZero {
				tmpScore.MidGameValue += sign * Settings.Eval.PawnPassedProtectedMidBonus
				tmpScore.EndGameValue += sign * Settings.Eval.PawnPassedProtectedEndBonus
			}

			neighbours := ourPawns & sq.NeighbourFilesMask() & sq.RankOf().Bb()
			for neighbours != BbZero {
				nsq := neighbours.PopLsb()
				if nsq.PassedPawnMask(us)&enemyPawns == BbZero {
					tmpScore.MidGameValue += sign * Settings.Eval.PawnPassedConnectedMidBonus
					tmpScore.EndGameValue += sign * Settings.Eval.PawnPassedConnectedEndBonus
					break
				}
			}
		}
	}
}

// startRank is the rank a pawn of each color begins the game on.
var startRank = [2]Rank{Rank2, Rank7}

// behindMask returns the ranks behind a square from the given color's
// direction of travel.
func behindMask(c Color, sq Square) Bitboard {
	if c == White {
		return sq.RanksSouthMask()
	}
	return sq.RanksNorthMask()
}

// passedRankIndex returns the rank of sq as seen from color c's direction of
// travel, for indexing the rank-based passed pawn bonus tables.
func passedRankIndex(c Color, sq Square) int {
	if c == White {
		return int(sq.RankOf())
	}
	return 7 - int(sq.RankOf())
}
