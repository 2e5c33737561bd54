package sentencepiece

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

// pieceFields controls which fields appendPieceMsg writes, so tests can
// synthesize pieces with a field missing.
type pieceFields struct {
	piece        string
	id           int
	begin, end   int
	omitPiece    bool
	omitID       bool
	omitBegin    bool
	omitEnd      bool
	unknownField bool
}

func appendPieceMsg(buf []byte, f pieceFields) []byte {
	var msg []byte
	if !f.omitPiece {
		msg = protowire.AppendTag(msg, spFieldPiece, protowire.BytesType)
		msg = protowire.AppendString(msg, f.piece)
	}
	if !f.omitID {
		msg = protowire.AppendTag(msg, spFieldID, protowire.VarintType)
		msg = protowire.AppendVarint(msg, uint64(f.id))
	}
	if f.unknownField {
		// Field 3 is the surface form, which the decoder skips.
		msg = protowire.AppendTag(msg, 3, protowire.BytesType)
		msg = protowire.AppendString(msg, "surface")
	}
	if !f.omitBegin {
		msg = protowire.AppendTag(msg, spFieldBegin, protowire.VarintType)
		msg = protowire.AppendVarint(msg, uint64(f.begin))
	}
	if !f.omitEnd {
		msg = protowire.AppendTag(msg, spFieldEnd, protowire.VarintType)
		msg = protowire.AppendVarint(msg, uint64(f.end))
	}

	buf = protowire.AppendTag(buf, sptFieldPieces, protowire.BytesType)
	return protowire.AppendBytes(buf, msg)
}

func TestDecodeEncodeResult_Basic(t *testing.T) {
	var buf []byte
	// Leading text field (1) the decoder skips.
	buf = protowire.AppendTag(buf, 1, protowire.BytesType)
	buf = protowire.AppendString(buf, "I saw")
	buf = appendPieceMsg(buf, pieceFields{piece: "▁I", id: 8, begin: 0, end: 1})
	buf = appendPieceMsg(buf, pieceFields{piece: "▁saw", id: 465, begin: 1, end: 5})
	// Trailing score field (3, fixed32) the decoder skips.
	buf = protowire.AppendTag(buf, 3, protowire.Fixed32Type)
	buf = protowire.AppendFixed32(buf, math.Float32bits(-12.5))

	pieces, err := decodeEncodeResult("encode", buf)
	require.NoError(t, err)
	assert.Equal(t, []Piece{
		{Piece: "▁I", ID: 8, Begin: 0, End: 1},
		{Piece: "▁saw", ID: 465, Begin: 1, End: 5},
	}, pieces)
}

func TestDecodeEncodeResult_Empty(t *testing.T) {
	pieces, err := decodeEncodeResult("encode", []byte{})
	require.NoError(t, err)
	assert.Empty(t, pieces)
	assert.NotNil(t, pieces)
}

func TestDecodeEncodeResult_SkipsUnknownPieceFields(t *testing.T) {
	buf := appendPieceMsg(nil, pieceFields{piece: "▁a", id: 10, begin: 0, end: 2, unknownField: true})

	pieces, err := decodeEncodeResult("encode", buf)
	require.NoError(t, err)
	require.Len(t, pieces, 1)
	assert.Equal(t, Piece{Piece: "▁a", ID: 10, Begin: 0, End: 2}, pieces[0])
}

func TestDecodeEncodeResult_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		fields pieceFields
	}{
		{"missing piece", pieceFields{omitPiece: true, id: 1, begin: 0, end: 1}},
		{"missing id", pieceFields{piece: "x", omitID: true, begin: 0, end: 1}},
		{"missing begin", pieceFields{piece: "x", id: 1, omitBegin: true, end: 1}},
		{"missing end", pieceFields{piece: "x", id: 1, begin: 0, omitEnd: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := appendPieceMsg(nil, tt.fields)

			_, err := decodeEncodeResult("encode", buf)
			require.Error(t, err)
			assert.Equal(t, KindInternal, KindOf(err))
		})
	}
}

func TestDecodeEncodeResult_Truncated(t *testing.T) {
	buf := appendPieceMsg(nil, pieceFields{piece: "▁I", id: 8, begin: 0, end: 1})

	for cut := 1; cut < len(buf); cut++ {
		_, err := decodeEncodeResult("encode", buf[:cut])
		if err == nil {
			// Some prefixes happen to be well-formed messages (e.g. a
			// complete leading field); only malformed ones must fail.
			continue
		}
		assert.Equal(t, KindInternal, KindOf(err), "cut at %d", cut)
	}

	// Cutting inside the length-delimited piece payload is malformed.
	_, err := decodeEncodeResult("encode", buf[:len(buf)-1])
	require.Error(t, err)
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestDecodeEncodeResult_PreservesOrder(t *testing.T) {
	var buf []byte
	for i := 0; i < 10; i++ {
		buf = appendPieceMsg(buf, pieceFields{piece: "p", id: i, begin: i, end: i + 1})
	}

	pieces, err := decodeEncodeResult("encode", buf)
	require.NoError(t, err)
	require.Len(t, pieces, 10)
	for i, piece := range pieces {
		assert.Equal(t, i, piece.ID, "piece %d out of order", i)
	}
}
