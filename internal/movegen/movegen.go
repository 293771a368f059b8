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

// Package movegen generates pseudo-legal moves from a position and filters
// them to legal moves using a per-square pin/check annotation computed once
// per call, instead of a transposition-table-backed incremental generator.
package movegen

import (
	"github.com/cwm4030/nuvo-chess/internal/attacks"
	"github.com/cwm4030/nuvo-chess/internal/moveslice"
	"github.com/cwm4030/nuvo-chess/internal/position"
	"github.com/cwm4030/nuvo-chess/internal/types"
)

// GenMode selects which subset of pseudo-legal moves Generate produces.
type GenMode int

const (
	// GenAll generates captures, non-captures, promotions and castling.
	GenAll GenMode = iota
	// GenCapture generates only captures, en-passant captures and
	// capture-promotions, for use in quiescence search.
	GenCapture
)

var pieceTypesForGen = [5]types.PieceType{types.King, types.Knight, types.Bishop, types.Rook, types.Queen}

// Generate produces the pseudo-legal moves available to the side to move,
// together with the PinDefendMap and check count needed to filter them to
// legal moves with IsLegal.
func Generate(p *position.Position, mode GenMode) (*moveslice.MoveSlice, PinDefendMap, int) {
	ml := moveslice.New(types.MaxMoves)
	us := p.NextPlayer()
	kingSq := p.KingSquare(us)
	inCheck := IsAttacked(p, kingSq, us.Flip())

	generatePawnMoves(p, mode, ml)
	generatePieceMoves(p, mode, ml)
	if mode == GenAll && !inCheck {
		generateCastling(p, ml)
	}

	pd, checkCount := setupPinDefendMap(p)
	return ml, pd, checkCount
}

// GenerateLegal is the convenience entry point: it generates pseudo-legal
// moves and returns only those that pass IsLegal, plus the check count
// (zero means the side to move is not in check).
func GenerateLegal(p *position.Position, mode GenMode) (*moveslice.MoveSlice, int) {
	pseudo, pd, checkCount := Generate(p, mode)
	legal := moveslice.New(pseudo.Len())
	pseudo.ForEach(func(i int) {
		m := pseudo.At(i)
		if IsLegal(p, m, &pd, checkCount) {
			legal.PushBack(m)
		}
	})
	return legal, checkCount
}

// IsAttacked reports whether sq is attacked by any piece of color bySide,
// given the position's current occupancy.
func IsAttacked(p *position.Position, sq types.Square, bySide types.Color) bool {
	return attackedBy(p, sq, bySide, p.Occupied())
}

// attackedBy reports whether sq is attacked by bySide given an explicit
// occupancy bitboard, so callers can probe hypothetical occupancies (a king
// square removed from the board, an en-passant pair lifted from the rank).
func attackedBy(p *position.Position, sq types.Square, bySide types.Color, occ types.Bitboard) bool {
	if attacks.PawnAttacks(bySide.Flip(), sq)&p.PiecesBb(bySide, types.Pawn) != 0 {
		return true
	}
	if attacks.Bb(types.Knight, sq, occ)&p.PiecesBb(bySide, types.Knight) != 0 {
		return true
	}
	if attacks.Bb(types.King, sq, occ)&p.PiecesBb(bySide, types.King) != 0 {
		return true
	}
	bishopAttackers := p.PiecesBb(bySide, types.Bishop) | p.PiecesBb(bySide, types.Queen)
	if attacks.Bb(types.Bishop, sq, occ)&bishopAttackers != 0 {
		return true
	}
	rookAttackers := p.PiecesBb(bySide, types.Rook) | p.PiecesBb(bySide, types.Queen)
	if attacks.Bb(types.Rook, sq, occ)&rookAttackers != 0 {
		return true
	}
	return false
}

func emitPawnMove(from, to types.Square, mt types.MoveType, promRank types.Rank, ml *moveslice.MoveSlice) {
	if to.RankOf() == promRank {
		ml.PushBack(types.NewMove(from, to, types.Promotion, types.Queen))
		ml.PushBack(types.NewMove(from, to, types.Promotion, types.Rook))
		ml.PushBack(types.NewMove(from, to, types.Promotion, types.Bishop))
		ml.PushBack(types.NewMove(from, to, types.Promotion, types.Knight))
		return
	}
	ml.PushBack(types.NewMove(from, to, mt, types.PieceNone))
}

// generatePawnMoves produces pushes, double pushes, captures, en-passant
// captures and promotions for every pawn of the side to move. Captures are
// always generated regardless of mode; pushes are skipped for GenCapture.
func generatePawnMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	them := us.Flip()
	pawns := p.PiecesBb(us, types.Pawn)
	occ := p.Occupied()
	promRank := us.PromotionRank()
	pushDir := us.MoveDirection()
	reverseDir := them.MoveDirection()

	if mode == GenAll {
		empty := ^occ
		singlePush := types.ShiftBitboard(pawns, pushDir) & empty
		doublePush := types.ShiftBitboard(singlePush, pushDir) & empty & us.DoublePushRankBb()

		sp := singlePush
		for sp != 0 {
			to := sp.PopLsb()
			from := to.To(reverseDir)
			emitPawnMove(from, to, types.Normal, promRank, ml)
		}
		for doublePush != 0 {
			to := doublePush.PopLsb()
			from := to.To(reverseDir).To(reverseDir)
			ml.PushBack(types.NewMove(from, to, types.Normal, types.PieceNone))
		}
	}

	var epBb types.Bitboard
	ep := p.EnPassantSquare()
	if ep != types.SqNone {
		epBb = ep.Bb()
	}
	targets := p.OccupiedBy(them) | epBb

	captureDirs := [2]types.Direction{pushDir + types.East, pushDir + types.West}
	for _, d := range captureDirs {
		caps := types.ShiftBitboard(pawns, d) & targets
		for caps != 0 {
			to := caps.PopLsb()
			from := to.To(-d)
			mt := types.Normal
			if to == ep {
				mt = types.EnPassant
			}
			emitPawnMove(from, to, mt, promRank, ml)
		}
	}
}

// generatePieceMoves produces king, knight and slider moves. The king is
// included here for its non-castling step; generateCastling handles the
// king's castling moves separately.
func generatePieceMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	them := us.Flip()
	occ := p.Occupied()
	oppOcc := p.OccupiedBy(them)
	ownOcc := p.OccupiedBy(us)

	for _, pt := range pieceTypesForGen {
		pieces := p.PiecesBb(us, pt)
		for pieces != 0 {
			from := pieces.PopLsb()
			targets := attacks.Bb(pt, from, occ) &^ ownOcc
			if mode == GenCapture {
				targets &= oppOcc
			}
			for targets != 0 {
				to := targets.PopLsb()
				ml.PushBack(types.NewMove(from, to, types.Normal, types.PieceNone))
			}
		}
	}
}

// generateCastling produces castling moves for rights the position still
// holds, provided the squares between king and rook are empty and the king
// does not pass through or land on an attacked square. Callers must not
// invoke this while the side to move is in check.
func generateCastling(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.NextPlayer()
	them := us.Flip()
	cr := p.CastlingRights()
	occ := p.Occupied()

	if us == types.White {
		if cr.Has(types.CastlingWhiteOO) &&
			attacks.Between(types.SqE1, types.SqH1)&occ == 0 &&
			!IsAttacked(p, types.SqF1, them) && !IsAttacked(p, types.SqG1, them) {
			ml.PushBack(types.NewMove(types.SqE1, types.SqG1, types.Castling, types.PieceNone))
		}
		if cr.Has(types.CastlingWhiteOOO) &&
			attacks.Between(types.SqE1, types.SqA1)&occ == 0 &&
			!IsAttacked(p, types.SqD1, them) && !IsAttacked(p, types.SqC1, them) {
			ml.PushBack(types.NewMove(types.SqE1, types.SqC1, types.Castling, types.PieceNone))
		}
		return
	}

	if cr.Has(types.CastlingBlackOO) &&
		attacks.Between(types.SqE8, types.SqH8)&occ == 0 &&
		!IsAttacked(p, types.SqF8, them) && !IsAttacked(p, types.SqG8, them) {
		ml.PushBack(types.NewMove(types.SqE8, types.SqG8, types.Castling, types.PieceNone))
	}
	if cr.Has(types.CastlingBlackOOO) &&
		attacks.Between(types.SqE8, types.SqA8)&occ == 0 &&
		!IsAttacked(p, types.SqD8, them) && !IsAttacked(p, types.SqC8, them) {
		ml.PushBack(types.NewMove(types.SqE8, types.SqC8, types.Castling, types.PieceNone))
	}
}
