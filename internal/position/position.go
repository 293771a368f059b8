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

// Package position implements the mutable board representation: piece
// bitboards and an 8x8 board array kept in sync, side to move, castling
// rights, en-passant target, move clocks, and a reversible undo stack for
// fast make/unmake during search.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwm4030/nuvo-chess/internal/assert"
	"github.com/cwm4030/nuvo-chess/internal/types"
	"github.com/cwm4030/nuvo-chess/internal/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// MaxUndo bounds the undo stack: the deepest search recursion plus the
// longest realistic game so far.
const MaxUndo = types.MaxGamePly

// undoFrame records everything needed to reverse one DoMove call.
type undoFrame struct {
	move            types.Move
	capturedPiece   types.Piece
	castlingRights  types.CastlingRights
	enPassantSquare types.Square
	halfMoveClock   int
	zobristKey      zobrist.Key
}

// Position is the mutable board. The zero value is not valid; use New or
// NewFen.
type Position struct {
	board           [types.SqLength]types.Piece
	piecesBb        [types.ColorLength][types.PtLength]types.Bitboard
	occupiedBb      [types.ColorLength]types.Bitboard
	kingSquare      [types.ColorLength]types.Square
	castlingRights  types.CastlingRights
	enPassantSquare types.Square
	halfMoveClock   int
	fullMoveNumber  int
	nextPlayer      types.Color
	zobristKey      zobrist.Key

	undo      [MaxUndo]undoFrame
	undoDepth int
}

// New returns a Position set up at the standard starting position.
func New() *Position {
	p, err := NewFen(StartFen)
	if err != nil {
		panic(fmt.Sprintf("position: start fen must always parse: %s", err))
	}
	return p
}

// NewFen parses fen and returns the resulting Position. A malformed field
// falls back to a conservative default rather than returning an error, and
// unrecognised characters in the piece-placement field are skipped: only an
// empty fen is reported.
func NewFen(fen string) (*Position, error) {
	p := &Position{}
	if err := p.load(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// Load resets p in place from fen, discarding the undo stack. See load for
// the malformed-field fallback rules.
func (p *Position) Load(fen string) error {
	*p = Position{}
	return p.load(fen)
}

func (p *Position) load(fen string) error {
	fen = strings.TrimSpace(fen)
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return errors.New("position: empty fen")
	}

	// Walk file/rank counters explicitly rather than a raw Square index:
	// the index would overflow past h8 at the end of the last rank before
	// the loop ever sees a trailing garbage character.
	file, rank := 0, 7
	for _, c := range fields[0] {
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			pc := types.PieceFromChar(string(c))
			if pc == types.PieceNone || file < 0 || file > 7 || rank < 0 || rank > 7 {
				break // garbage character: skip rather than fail
			}
			p.putPiece(pc, types.SquareOf(types.File(file), types.Rank(rank)))
			file++
		}
	}

	p.nextPlayer = types.White
	p.castlingRights = types.CastlingNone
	p.enPassantSquare = types.SqNone
	p.halfMoveClock = 0
	p.fullMoveNumber = 1

	if len(fields) >= 2 && fields[1] == "b" {
		p.nextPlayer = types.Black
	}

	if len(fields) >= 3 && fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castlingRights.Add(types.CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(types.CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(types.CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(types.CastlingBlackOOO)
			}
		}
	}

	if len(fields) >= 4 && fields[3] != "-" {
		if s := types.MakeSquare(fields[3]); s.IsValid() {
			p.enPassantSquare = s
		}
	}

	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil && n >= 0 {
			p.halfMoveClock = n
		}
	}

	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n >= 1 {
			p.fullMoveNumber = n
		}
	}

	p.zobristKey = p.computeZobrist()
	return nil
}

// computeZobrist recomputes the hash from scratch; used once at load time,
// after which DoMove/UndoMove maintain it incrementally.
func (p *Position) computeZobrist() zobrist.Key {
	var key zobrist.Key
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		if pc := p.board[sq]; pc != types.PieceNone {
			key ^= zobrist.PieceKey(pc, sq)
		}
	}
	key ^= zobrist.CastlingKey(p.castlingRights)
	if p.enPassantSquare != types.SqNone {
		key ^= zobrist.EnPassantKey(p.enPassantSquare.FileOf())
	}
	if p.nextPlayer == types.Black {
		key ^= zobrist.SideToMoveKey()
	}
	return key
}

// PieceAt returns the coloured piece on sq, or PieceNone if empty.
func (p *Position) PieceAt(sq types.Square) types.Piece {
	return p.board[sq]
}

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() types.Color {
	return p.nextPlayer
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() types.CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the current en-passant target, or SqNone.
func (p *Position) EnPassantSquare() types.Square {
	return p.enPassantSquare
}

// HalfMoveClock returns the number of plies since the last pawn move or
// capture.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the current full move number.
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// Occupied returns the all-pieces occupancy bitboard.
func (p *Position) Occupied() types.Bitboard {
	return p.occupiedBb[types.White] | p.occupiedBb[types.Black]
}

// OccupiedBy returns the occupancy bitboard of one color.
func (p *Position) OccupiedBy(c types.Color) types.Bitboard {
	return p.occupiedBb[c]
}

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c types.Color, pt types.PieceType) types.Bitboard {
	return p.piecesBb[c][pt]
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.kingSquare[c]
}

// ZobristKey returns the current position hash.
func (p *Position) ZobristKey() zobrist.Key {
	return p.zobristKey
}

// UndoDepth returns the number of moves currently on the undo stack.
func (p *Position) UndoDepth() int {
	return p.undoDepth
}

// IsPossibleThreefold reports whether the current hash matches any hash
// recorded on the undo stack within the last halfMoveClock plies (the
// window since the clock was last reset by a pawn move or capture, beyond
// which no repetition is possible).
func (p *Position) IsPossibleThreefold() bool {
	limit := p.undoDepth - p.halfMoveClock
	if limit < 0 {
		limit = 0
	}
	for i := p.undoDepth - 1; i >= limit; i-- {
		if p.undo[i].zobristKey == p.zobristKey {
			return true
		}
	}
	return false
}

// DoMove applies m to the board, pushing an undo frame. m is assumed
// pseudo-legal; the caller (MoveGen) is responsible for legality.
func (p *Position) DoMove(m types.Move) {
	assert.Assert(m.IsValid(), "position: DoMove with invalid move %s", m)

	fromSq, toSq := m.From(), m.To()
	fromPc := p.board[fromSq]
	assert.Assert(fromPc != types.PieceNone, "position: DoMove from empty square %s", fromSq)
	myColor := fromPc.ColorOf()
	fromPt := fromPc.TypeOf()
	targetPc := p.board[toSq]

	p.undo[p.undoDepth] = undoFrame{
		move:            m,
		capturedPiece:   targetPc,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
		zobristKey:      p.zobristKey,
	}
	p.undoDepth++
	assert.Assert(p.undoDepth < MaxUndo, "position: undo stack exhausted")

	capturedEnPassant := false
	if fromPt == types.Pawn && toSq == p.enPassantSquare {
		capturedEnPassant = true
		capSq := toSq.To(myColor.Flip().MoveDirection())
		assert.Assert(p.board[capSq] == types.MakePiece(myColor.Flip(), types.Pawn),
			"position: en passant capture square empty")
		p.removePiece(capSq)
	}

	if fromPt == types.King {
		p.clearCastlingRights(myColor)
		if m.MoveType() == types.Castling {
			p.castleRook(toSq)
		}
	}
	p.clearCastlingRightsForCorner(fromSq)
	p.clearCastlingRightsForCorner(toSq)

	if targetPc != types.PieceNone && !capturedEnPassant {
		p.removePiece(toSq)
	}
	p.movePiece(fromSq, toSq)
	if promPt := m.PromotionType(); m.MoveType() == types.Promotion {
		p.removePiece(toSq)
		p.putPiece(types.MakePiece(myColor, promPt), toSq)
	}

	p.clearEnPassant()
	if fromPt == types.Pawn && types.SquareDistance(fromSq, toSq) == 2 {
		p.enPassantSquare = fromSq.To(myColor.MoveDirection())
		p.zobristKey ^= zobrist.EnPassantKey(p.enPassantSquare.FileOf())
	}

	if fromPt == types.Pawn || targetPc != types.PieceNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if myColor == types.Black {
		p.fullMoveNumber++
	}

	p.nextPlayer = p.nextPlayer.Flip()
	p.zobristKey ^= zobrist.SideToMoveKey()
}

// UndoMove reverses the most recent DoMove.
func (p *Position) UndoMove() {
	assert.Assert(p.undoDepth > 0, "position: UndoMove with empty undo stack")
	p.undoDepth--
	frame := p.undo[p.undoDepth]
	m := frame.move
	fromSq, toSq := m.From(), m.To()

	p.nextPlayer = p.nextPlayer.Flip()
	movedColor := p.nextPlayer

	switch m.MoveType() {
	case types.Promotion:
		p.removePiece(toSq)
		p.putPiece(types.MakePiece(movedColor, types.Pawn), fromSq)
	case types.Castling:
		p.movePiece(toSq, fromSq)
		switch toSq {
		case types.SqG1:
			p.movePiece(types.SqF1, types.SqH1)
		case types.SqC1:
			p.movePiece(types.SqD1, types.SqA1)
		case types.SqG8:
			p.movePiece(types.SqF8, types.SqH8)
		case types.SqC8:
			p.movePiece(types.SqD8, types.SqA8)
		}
	default:
		p.movePiece(toSq, fromSq)
	}

	if m.MoveType() == types.EnPassant {
		capSq := toSq.To(movedColor.Flip().MoveDirection())
		p.putPiece(types.MakePiece(movedColor.Flip(), types.Pawn), capSq)
	} else if frame.capturedPiece != types.PieceNone {
		p.putPiece(frame.capturedPiece, toSq)
	}

	p.castlingRights = frame.castlingRights
	p.enPassantSquare = frame.enPassantSquare
	p.halfMoveClock = frame.halfMoveClock
	p.zobristKey = frame.zobristKey
	if movedColor == types.Black {
		p.fullMoveNumber--
	}
}

func (p *Position) clearCastlingRights(c types.Color) {
	var rights types.CastlingRights
	if c == types.White {
		rights = types.CastlingWhite
	} else {
		rights = types.CastlingBlack
	}
	if p.castlingRights&rights == 0 {
		return
	}
	p.zobristKey ^= zobrist.CastlingKey(p.castlingRights)
	p.castlingRights.Remove(rights)
	p.zobristKey ^= zobrist.CastlingKey(p.castlingRights)
}

func (p *Position) clearCastlingRightsForCorner(sq types.Square) {
	var right types.CastlingRights
	switch sq {
	case types.SqA1:
		right = types.CastlingWhiteOOO
	case types.SqH1:
		right = types.CastlingWhiteOO
	case types.SqA8:
		right = types.CastlingBlackOOO
	case types.SqH8:
		right = types.CastlingBlackOO
	default:
		return
	}
	if p.castlingRights&right == 0 {
		return
	}
	p.zobristKey ^= zobrist.CastlingKey(p.castlingRights)
	p.castlingRights.Remove(right)
	p.zobristKey ^= zobrist.CastlingKey(p.castlingRights)
}

func (p *Position) castleRook(kingTo types.Square) {
	switch kingTo {
	case types.SqG1:
		p.movePiece(types.SqH1, types.SqF1)
	case types.SqC1:
		p.movePiece(types.SqA1, types.SqD1)
	case types.SqG8:
		p.movePiece(types.SqH8, types.SqF8)
	case types.SqC8:
		p.movePiece(types.SqA8, types.SqD8)
	default:
		panic(fmt.Sprintf("position: invalid castling destination %s", kingTo))
	}
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != types.SqNone {
		p.zobristKey ^= zobrist.EnPassantKey(p.enPassantSquare.FileOf())
		p.enPassantSquare = types.SqNone
	}
}

func (p *Position) movePiece(from, to types.Square) {
	p.putPiece(p.removePiece(from), to)
}

func (p *Position) putPiece(pc types.Piece, sq types.Square) {
	assert.Assert(p.board[sq] == types.PieceNone, "position: putPiece onto occupied square %s", sq)
	color, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = pc
	if pt == types.King {
		p.kingSquare[color] = sq
	}
	p.piecesBb[color][pt].PushSquare(sq)
	p.occupiedBb[color].PushSquare(sq)
	p.zobristKey ^= zobrist.PieceKey(pc, sq)
}

func (p *Position) removePiece(sq types.Square) types.Piece {
	pc := p.board[sq]
	assert.Assert(pc != types.PieceNone, "position: removePiece from empty square %s", sq)
	color, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = types.PieceNone
	p.piecesBb[color][pt].PopSquare(sq)
	p.occupiedBb[color].PopSquare(sq)
	p.zobristKey ^= zobrist.PieceKey(pc, sq)
	return pc
}

// Fen renders the current position as standard notation text.
func (p *Position) Fen() string {
	var b strings.Builder
	for r := types.Rank8; ; r-- {
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			pc := p.board[types.SquareOf(f, r)]
			if pc == types.PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == types.Rank1 {
			break
		}
		b.WriteString("/")
	}
	b.WriteString(" ")
	b.WriteString(p.nextPlayer.String())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	b.WriteString(p.enPassantSquare.String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.fullMoveNumber))
	return b.String()
}

// String renders a visual board matrix followed by the FEN.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := types.Rank8; ; r-- {
		for f := types.FileA; f <= types.FileH; f++ {
			b.WriteString("| ")
			b.WriteString(p.board[types.SquareOf(f, r)].String())
			b.WriteString(" ")
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == types.Rank1 {
			break
		}
	}
	b.WriteString(p.Fen())
	b.WriteString("\n")
	return b.String()
}
