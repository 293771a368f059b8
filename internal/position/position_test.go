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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwm4030/nuvo-chess/internal/types"
)

func TestNewIsStartPosition(t *testing.T) {
	p := New()
	assert.Equal(t, types.SqA1.Bb()|types.SqH1.Bb()|types.SqA8.Bb()|types.SqH8.Bb(),
		p.piecesBb[types.White][types.Rook]|p.piecesBb[types.Black][types.Rook])
	assert.Equal(t, types.SqE1.Bb(), p.piecesBb[types.White][types.King])
	assert.Equal(t, types.SqE8.Bb(), p.piecesBb[types.Black][types.King])
	assert.Equal(t, types.White, p.nextPlayer)
	assert.Equal(t, types.CastlingAny, p.castlingRights)
	assert.Equal(t, types.SqNone, p.enPassantSquare)
	assert.Equal(t, 0, p.halfMoveClock)
	assert.Equal(t, 1, p.fullMoveNumber)
	assert.Equal(t, StartFen, p.Fen())
}

func TestLoadRejectsMalformedFenWithSaneDefaults(t *testing.T) {
	p := New()
	err := p.Load("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x y")
	require.NoError(t, err)
	assert.Equal(t, 0, p.halfMoveClock)
	assert.Equal(t, 1, p.fullMoveNumber)
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14",
		"8/8/8/3k4/8/3K4/8/8 w - - 5 40",
	}
	for _, fen := range fens {
		p, err := NewFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, p.Fen())
	}
}

func TestZobristKeyMatchesFromScratchComputation(t *testing.T) {
	p, err := NewFen("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14")
	require.NoError(t, err)
	assert.Equal(t, p.computeZobrist(), p.ZobristKey())
}

func doUndo(t *testing.T, p *Position, m types.Move) {
	t.Helper()
	before := *p
	p.DoMove(m)
	p.UndoMove()
	assert.Equal(t, before.board, p.board)
	assert.Equal(t, before.piecesBb, p.piecesBb)
	assert.Equal(t, before.occupiedBb, p.occupiedBb)
	assert.Equal(t, before.kingSquare, p.kingSquare)
	assert.Equal(t, before.castlingRights, p.castlingRights)
	assert.Equal(t, before.enPassantSquare, p.enPassantSquare)
	assert.Equal(t, before.halfMoveClock, p.halfMoveClock)
	assert.Equal(t, before.fullMoveNumber, p.fullMoveNumber)
	assert.Equal(t, before.nextPlayer, p.nextPlayer)
	assert.Equal(t, before.zobristKey, p.zobristKey)
	assert.Equal(t, before.undoDepth, p.undoDepth)
}

func TestDoUndoMoveQuiet(t *testing.T) {
	p := New()
	doUndo(t, p, types.NewMove(types.SqG1, types.SqF3, types.Normal, types.PieceNone))
}

func TestDoUndoMoveCapture(t *testing.T) {
	p, err := NewFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	require.NoError(t, err)
	doUndo(t, p, types.NewMove(types.SqE4, types.SqD5, types.Normal, types.PieceNone))
}

func TestDoUndoMoveDoublePushSetsEnPassant(t *testing.T) {
	p := New()
	m := types.NewMove(types.SqE2, types.SqE4, types.Normal, types.PieceNone)
	p.DoMove(m)
	assert.Equal(t, types.SqE3, p.enPassantSquare)
	p.UndoMove()
	assert.Equal(t, types.SqNone, p.enPassantSquare)
}

func TestDoUndoMoveEnPassantCapture(t *testing.T) {
	p, err := NewFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	doUndo(t, p, types.NewMove(types.SqE5, types.SqD6, types.EnPassant, types.PieceNone))
}

func TestDoMoveEnPassantCaptureRemovesPawn(t *testing.T) {
	p, err := NewFen("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	p.DoMove(types.NewMove(types.SqE5, types.SqD6, types.EnPassant, types.PieceNone))
	assert.Equal(t, types.PieceNone, p.board[types.SqD5])
	assert.Equal(t, types.WhitePawn, p.board[types.SqD6])
}

func TestDoUndoMovePromotion(t *testing.T) {
	p, err := NewFen("8/P6k/8/8/8/8/7p/K7 w - - 0 1")
	require.NoError(t, err)
	doUndo(t, p, types.NewMove(types.SqA7, types.SqA8, types.Promotion, types.Queen))
}

func TestDoUndoMoveCastlingKingside(t *testing.T) {
	p, err := NewFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	doUndo(t, p, types.NewMove(types.SqE1, types.SqG1, types.Castling, types.PieceNone))
}

func TestDoMoveCastlingMovesRookAndClearsBothRights(t *testing.T) {
	p, err := NewFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	p.DoMove(types.NewMove(types.SqE1, types.SqG1, types.Castling, types.PieceNone))
	assert.Equal(t, types.WhiteKing, p.board[types.SqG1])
	assert.Equal(t, types.WhiteRook, p.board[types.SqF1])
	assert.Equal(t, types.PieceNone, p.board[types.SqH1])
	assert.Equal(t, types.CastlingBlack, p.castlingRights)
}

func TestDoMoveRookMoveClearsThatSideOnly(t *testing.T) {
	p, err := NewFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	p.DoMove(types.NewMove(types.SqA1, types.SqB1, types.Normal, types.PieceNone))
	assert.Equal(t, types.CastlingWhiteOO|types.CastlingBlack, p.castlingRights)
}

func TestIsPossibleThreefoldDetectsRepeatedKey(t *testing.T) {
	p := New()
	moves := []types.Move{
		types.NewMove(types.SqG1, types.SqF3, types.Normal, types.PieceNone),
		types.NewMove(types.SqG8, types.SqF6, types.Normal, types.PieceNone),
		types.NewMove(types.SqF3, types.SqG1, types.Normal, types.PieceNone),
		types.NewMove(types.SqF6, types.SqG8, types.Normal, types.PieceNone),
	}
	for _, m := range moves {
		p.DoMove(m)
	}
	assert.True(t, p.IsPossibleThreefold())
}

func TestHalfMoveClockResetsOnCaptureAndPawnMove(t *testing.T) {
	p, err := NewFen("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 5")
	require.NoError(t, err)
	p.DoMove(types.NewMove(types.SqE4, types.SqD5, types.Normal, types.PieceNone))
	assert.Equal(t, 0, p.halfMoveClock)
}
