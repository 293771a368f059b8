//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package movegen

import (
	"github.com/cwm4030/nuvo-chess/internal/attacks"
	"github.com/cwm4030/nuvo-chess/internal/position"
	"github.com/cwm4030/nuvo-chess/internal/types"
)

// pinInfo packs the per-square annotation computed once per Generate call:
// bit 0 Defend, bit 1 Pinned, bit 2 EpPin, bits 3-7 a small pinner id
// (0 means "no pinner"; ids are otherwise assigned 1..N per call).
type pinInfo uint8

const (
	pinDefend pinInfo = 1 << 0
	pinPinned pinInfo = 1 << 1
	pinEpPin  pinInfo = 1 << 2

	pinnerShift = 3
	pinnerMask  = pinInfo(0x1f) << pinnerShift
)

func (pi pinInfo) isDefend() bool {
	return pi&pinDefend != 0
}

func (pi pinInfo) isPinned() bool {
	return pi&pinPinned != 0
}

func (pi pinInfo) isEpPin() bool {
	return pi&pinEpPin != 0
}

func (pi pinInfo) pinnerID() uint8 {
	return uint8(pi >> pinnerShift)
}

// PinDefendMap is the per-square annotation described in setupPinDefendMap:
// which squares resolve the current check(s), which friendly pieces are
// pinned, and which pinning ray they may still move along.
type PinDefendMap [types.SqLength]pinInfo

func (m *PinDefendMap) setDefend(sq types.Square) {
	m[sq] |= pinDefend
}

func (m *PinDefendMap) setEpPin(sq types.Square) {
	m[sq] |= pinEpPin
}

func (m *PinDefendMap) setPinnerID(sq types.Square, id uint8) {
	m[sq] = (m[sq] &^ pinnerMask) | pinInfo(id)<<pinnerShift
}

func (m *PinDefendMap) setPinned(sq types.Square) {
	m[sq] |= pinPinned
}

// setupPinDefendMap ray-casts from the friendly king to find checks and
// pins, per the five-step algorithm: pawn checks (plus the en-passant
// capture that would resolve one), knight checks, slider checks and pins
// along each bishop/rook ray, and the special horizontal en-passant pin.
func setupPinDefendMap(p *position.Position) (PinDefendMap, int) {
	var pd PinDefendMap
	us := p.NextPlayer()
	them := us.Flip()
	kingSq := p.KingSquare(us)
	occ := p.Occupied()
	checkCount := 0

	pawnAttackers := attacks.PawnAttacks(us, kingSq) & p.PiecesBb(them, types.Pawn)
	for pawnAttackers != 0 {
		sq := pawnAttackers.PopLsb()
		pd.setDefend(sq)
		checkCount++
		if ep := p.EnPassantSquare(); ep != types.SqNone {
			capSq := ep.To(them.MoveDirection())
			if capSq == sq {
				pd.setDefend(ep)
			}
		}
	}

	knightAttackers := attacks.Bb(types.Knight, kingSq, occ) & p.PiecesBb(them, types.Knight)
	for knightAttackers != 0 {
		pd.setDefend(knightAttackers.PopLsb())
		checkCount++
	}

	var nextPinnerID uint8 = 1
	for _, pt := range [2]types.PieceType{types.Bishop, types.Rook} {
		// the ray passes through our own pieces, so a slider standing
		// behind a single friendly blocker is found as a pinner
		kingRay := attacks.Bb(pt, kingSq, p.OccupiedBy(them))
		sliders := p.PiecesBb(them, pt) | p.PiecesBb(them, types.Queen)
		attackers := kingRay & sliders
		for attackers != 0 {
			attackerSq := attackers.PopLsb()
			between := attacks.Between(kingSq, attackerSq)
			occupantsBetween := between & occ

			switch occupantsBetween.PopCount() {
			case 0:
				pd.setDefend(attackerSq)
				checkCount++
				bb := between
				for bb != 0 {
					pd.setDefend(bb.PopLsb())
				}
			case 1:
				blockerSq := occupantsBetween.Lsb()
				if p.OccupiedBy(us).Has(blockerSq) {
					id := nextPinnerID
					nextPinnerID++
					pd.setPinnerID(attackerSq, id)
					bb := between
					for bb != 0 {
						pd.setPinnerID(bb.PopLsb(), id)
					}
					pd.setPinned(blockerSq)
				}
			}
		}
	}

	if ep := p.EnPassantSquare(); ep != types.SqNone && ep.RankOf() != types.RankNone {
		capSq := ep.To(them.MoveDirection())
		if capSq.IsValid() && capSq.RankOf() == kingSq.RankOf() {
			for _, d := range [2]types.Direction{types.East, types.West} {
				ourPawnSq := capSq.To(d)
				if !ourPawnSq.IsValid() || !p.PiecesBb(us, types.Pawn).Has(ourPawnSq) {
					continue
				}
				occAfter := occ &^ capSq.Bb() &^ ourPawnSq.Bb()
				attackersAfter := attacks.Bb(types.Rook, kingSq, occAfter) &
					(p.PiecesBb(them, types.Rook) | p.PiecesBb(them, types.Queen))
				if attackersAfter != 0 {
					pd.setEpPin(ep)
				}
			}
		}
	}

	return pd, checkCount
}

// IsLegal applies the legality predicate to a pseudo-legal move m, given
// the PinDefendMap and check count Generate computed for the same
// position.
func IsLegal(p *position.Position, m types.Move, pd *PinDefendMap, checkCount int) bool {
	us := p.NextPlayer()
	from, to := m.From(), m.To()

	if p.PieceAt(from).TypeOf() == types.King {
		occWithoutKing := p.Occupied() &^ from.Bb()
		return !attackedBy(p, to, us.Flip(), occWithoutKing)
	}

	if checkCount > 1 {
		return false
	}

	info := pd[from]

	if checkCount == 1 {
		if info.isPinned() {
			return false
		}
		if m.MoveType() == types.EnPassant {
			capSq := to.To(us.Flip().MoveDirection())
			if !pd[to].isDefend() && !pd[capSq].isDefend() {
				return false
			}
			return true
		}
		return pd[to].isDefend()
	}

	if info.isPinned() && pd[to].pinnerID() != info.pinnerID() {
		return false
	}
	if m.MoveType() == types.EnPassant && pd[to].isEpPin() {
		return false
	}
	return true
}
