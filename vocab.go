package sentencepiece

/*
#include <stdlib.h>
#include "spm_shim.h"
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// PieceToID returns the vocabulary id of a piece. Pieces not in the
// vocabulary map to the model's unknown id. It never fails; without a
// usable loaded model it returns NoID.
func (p *Processor) PieceToID(piece string) int {
	if p == nil {
		return NoID
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed || !p.loaded {
		return NoID
	}

	cPiece := C.CString(piece)
	defer C.free(unsafe.Pointer(cPiece))

	return int(C.spm_piece_to_id(p.ptr, cPiece))
}

// IDToPiece returns the piece for a vocabulary id. The id must be in
// [0, VocabSize).
func (p *Processor) IDToPiece(id int) (string, error) {
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
	if err := p.checkID("id to piece", id); err != nil {
		return "", err
	}

	var pieceLen C.size_t
	data := C.spm_id_to_piece(p.ptr, C.int(id), &pieceLen)

	raw, err := takeOwned("id to piece", data, pieceLen)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// IsUnknown reports whether a vocabulary id is the model's unknown
// token. The id must be in [0, VocabSize).
func (p *Processor) IsUnknown(id int) (bool, error) {
	if p == nil {
		return false, ErrProcessorIsNil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false, ErrProcessorClosed
	}
	if !p.loaded {
		return false, ErrNotLoaded
	}
	if err := p.checkID("is unknown", id); err != nil {
		return false, err
	}

	return bool(C.spm_is_unknown(p.ptr, C.int(id))), nil
}

// checkID validates a vocabulary id range before it crosses the
// boundary. Callers must hold at least the read lock.
func (p *Processor) checkID(op string, id int) error {
	if size := int(C.spm_vocab_size(p.ptr)); id < 0 || id >= size {
		return &StatusError{
			Op:      op,
			Kind:    KindInvalidArgument,
			Message: fmt.Sprintf("piece id %d out of range [0, %d)", id, size),
		}
	}
	return nil
}

// VocabSize returns the number of pieces in the loaded model's
// vocabulary, or 0 when no model is loaded.
func (p *Processor) VocabSize() int {
	if p == nil {
		return 0
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed || !p.loaded {
		return 0
	}

	return int(C.spm_vocab_size(p.ptr))
}

// Len returns the vocabulary size.
func (p *Processor) Len() int {
	return p.VocabSize()
}

// BOSID returns the id of the beginning-of-sequence token, or NoID if
// the model does not define one.
func (p *Processor) BOSID() int {
	return p.specialID(func(ptr *C.spm_processor) C.int { return C.spm_bos_id(ptr) })
}

// EOSID returns the id of the end-of-sequence token, or NoID if the
// model does not define one.
func (p *Processor) EOSID() int {
	return p.specialID(func(ptr *C.spm_processor) C.int { return C.spm_eos_id(ptr) })
}

// PadID returns the id of the padding token, or NoID if the model does
// not define one.
func (p *Processor) PadID() int {
	return p.specialID(func(ptr *C.spm_processor) C.int { return C.spm_pad_id(ptr) })
}

// UnkID returns the id of the unknown token, or NoID if the model does
// not define one.
func (p *Processor) UnkID() int {
	return p.specialID(func(ptr *C.spm_processor) C.int { return C.spm_unk_id(ptr) })
}

// specialID looks up a reserved-token id. The native library reports
// absent reserved tokens as negative ids, which collapse to NoID.
func (p *Processor) specialID(lookup func(*C.spm_processor) C.int) int {
	if p == nil {
		return NoID
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed || !p.loaded {
		return NoID
	}

	if id := int(lookup(p.ptr)); id >= 0 {
		return id
	}
	return NoID
}
