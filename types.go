package sentencepiece

// Piece is a single sentence piece produced by encoding a text.
type Piece struct {
	Piece string // piece as stored in the vocabulary (e.g. "▁saw")
	ID    int    // vocabulary identifier
	Begin int    // byte offset of the piece's first byte in the input
	End   int    // byte offset one past the piece's last byte
}

// Span returns the byte offsets [begin, end) of the piece in the
// encoded input.
func (p Piece) Span() (begin, end int) {
	return p.Begin, p.End
}

// NoID is the sentinel returned by the special-token accessors when the
// loaded model does not define the corresponding token.
const NoID = -1
