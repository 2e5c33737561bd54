package sentencepiece

/*
#include <stdlib.h>
#include "spm_shim.h"
*/
import "C"
import (
	"fmt"
	"strings"
	"unsafe"
)

// DecodeIDs reconstructs the text for a sequence of piece ids. Every id
// must be a valid id for the loaded model; an out-of-range id yields an
// invalid-argument error, never a crash.
func (p *Processor) DecodeIDs(ids []int) (string, error) {
	if p == nil {
		return "", ErrProcessorIsNil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return "", ErrProcessorClosed
	}
	if !p.loaded {
		return "", ErrNotLoaded
	}
	if len(ids) == 0 {
		return "", nil
	}

	cIDs := make([]C.int, len(ids))
	for i, id := range ids {
		cIDs[i] = C.int(id)
	}

	var decoded *C.uchar
	var decodedLen C.size_t
	status := C.spm_decode_ids(p.ptr, &cIDs[0], C.size_t(len(cIDs)), &decoded, &decodedLen)

	// The buffer is written even on failure; copy and free it first so
	// the native allocation is never leaked on the error path.
	raw, bufErr := takeOwned("decode ids", decoded, decodedLen)
	if err := statusError("decode ids", int(status)); err != nil {
		return "", err
	}
	if bufErr != nil {
		return "", bufErr
	}

	return string(raw), nil
}

// DecodePieces reconstructs the text for a sequence of pieces. Unknown
// pieces decode through the model's unknown token. Pieces cross the
// boundary as C strings, so a piece containing a NUL byte is rejected.
func (p *Processor) DecodePieces(pieces []string) (string, error) {
	if p == nil {
		return "", ErrProcessorIsNil
	}
	for i, piece := range pieces {
		if strings.IndexByte(piece, 0) >= 0 {
			return "", &StatusError{
				Op:      "decode pieces",
				Kind:    KindInvalidArgument,
				Message: fmt.Sprintf("piece %d contains a NUL byte", i),
			}
		}
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return "", ErrProcessorClosed
	}
	if !p.loaded {
		return "", ErrNotLoaded
	}
	if len(pieces) == 0 {
		return "", nil
	}

	cPieces := make([]*C.char, len(pieces))
	for i, piece := range pieces {
		cPieces[i] = C.CString(piece)
	}
	defer func() {
		for _, cPiece := range cPieces {
			C.free(unsafe.Pointer(cPiece))
		}
	}()

	var decoded *C.uchar
	var decodedLen C.size_t
	status := C.spm_decode_pieces(p.ptr, &cPieces[0], C.size_t(len(cPieces)), &decoded, &decodedLen)

	raw, bufErr := takeOwned("decode pieces", decoded, decodedLen)
	if err := statusError("decode pieces", int(status)); err != nil {
		return "", err
	}
	if bufErr != nil {
		return "", bufErr
	}

	return string(raw), nil
}
