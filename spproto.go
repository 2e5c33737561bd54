package sentencepiece

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the SentencePieceText message emitted by the native
// encode entry points, and of its nested SentencePiece message. The
// schema is fixed by the native library; fields this decoder does not
// use (the preprocessed text and the segmentation score) are skipped by
// wire type, as are any fields added by a newer library.
const (
	sptFieldPieces = 2

	spFieldPiece = 1
	spFieldID    = 2
	spFieldBegin = 4
	spFieldEnd   = 5
)

// decodeEncodeResult parses a serialized SentencePieceText into the
// pieces of an encoded sequence, preserving segmentation order.
func decodeEncodeResult(op string, raw []byte) ([]Piece, error) {
	pieces := []Piece{}

	for len(raw) > 0 {
		num, typ, n := protowire.ConsumeTag(raw)
		if n < 0 {
			return nil, malformedResult(op, protowire.ParseError(n))
		}
		raw = raw[n:]

		if num == sptFieldPieces && typ == protowire.BytesType {
			msg, n := protowire.ConsumeBytes(raw)
			if n < 0 {
				return nil, malformedResult(op, protowire.ParseError(n))
			}
			raw = raw[n:]

			piece, err := decodePiece(op, msg)
			if err != nil {
				return nil, err
			}
			pieces = append(pieces, piece)
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, raw)
		if n < 0 {
			return nil, malformedResult(op, protowire.ParseError(n))
		}
		raw = raw[n:]
	}

	return pieces, nil
}

// decodePiece parses one nested SentencePiece message. All fields are
// optional on the wire, but a piece the facade can use needs its text,
// id and span; a piece with any of them missing is a native-side bug.
func decodePiece(op string, msg []byte) (Piece, error) {
	var piece Piece
	var havePiece, haveID, haveBegin, haveEnd bool

	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return Piece{}, malformedResult(op, protowire.ParseError(n))
		}
		msg = msg[n:]

		switch {
		case num == spFieldPiece && typ == protowire.BytesType:
			text, n := protowire.ConsumeBytes(msg)
			if n < 0 {
				return Piece{}, malformedResult(op, protowire.ParseError(n))
			}
			msg = msg[n:]
			piece.Piece = string(text)
			havePiece = true

		case num == spFieldID && typ == protowire.VarintType:
			id, n := protowire.ConsumeVarint(msg)
			if n < 0 {
				return Piece{}, malformedResult(op, protowire.ParseError(n))
			}
			msg = msg[n:]
			piece.ID = int(id)
			haveID = true

		case num == spFieldBegin && typ == protowire.VarintType:
			begin, n := protowire.ConsumeVarint(msg)
			if n < 0 {
				return Piece{}, malformedResult(op, protowire.ParseError(n))
			}
			msg = msg[n:]
			piece.Begin = int(begin)
			haveBegin = true

		case num == spFieldEnd && typ == protowire.VarintType:
			end, n := protowire.ConsumeVarint(msg)
			if n < 0 {
				return Piece{}, malformedResult(op, protowire.ParseError(n))
			}
			msg = msg[n:]
			piece.End = int(end)
			haveEnd = true

		default:
			n = protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return Piece{}, malformedResult(op, protowire.ParseError(n))
			}
			msg = msg[n:]
		}
	}

	switch {
	case !havePiece:
		return Piece{}, missingField(op, "piece")
	case !haveID:
		return Piece{}, missingField(op, "id")
	case !haveBegin:
		return Piece{}, missingField(op, "begin")
	case !haveEnd:
		return Piece{}, missingField(op, "end")
	}

	return piece, nil
}

func malformedResult(op string, err error) error {
	return &StatusError{
		Op:      op,
		Kind:    KindInternal,
		Message: fmt.Sprintf("malformed encode result: %v", err),
	}
}

func missingField(op, field string) error {
	return &StatusError{
		Op:      op,
		Kind:    KindInternal,
		Message: fmt.Sprintf("encode result piece is missing its %s", field),
	}
}
