package sentencepiece

/*
#include "spm_shim.h"
*/
import "C"
import (
	"fmt"
	"math"
	"unsafe"
)

// maxSampleNBest is the largest n-best size the native sampler accepts.
const maxSampleNBest = 512

// Encode tokenizes text into sentence pieces with their vocabulary ids
// and byte-offset spans. The pieces appear in segmentation order. Text
// may contain embedded NUL bytes; an empty text encodes to an empty
// sequence.
func (p *Processor) Encode(text string) ([]Piece, error) {
	if p == nil {
		return nil, ErrProcessorIsNil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return nil, ErrProcessorClosed
	}
	if !p.loaded {
		return nil, ErrNotLoaded
	}
	if len(text) == 0 {
		return []Piece{}, nil
	}

	// The text is passed as pointer plus explicit length, never as a
	// null-terminated string, so embedded NUL bytes survive.
	buf := []byte(text)
	var protoLen C.size_t
	data := C.spm_encode_serialized(
		p.ptr,
		(*C.char)(unsafe.Pointer(&buf[0])),
		C.size_t(len(buf)),
		&protoLen,
	)

	raw, err := takeOwned("encode", data, protoLen)
	if err != nil {
		return nil, err
	}
	// The native entry point reports failure as an empty result.
	if len(raw) == 0 {
		return nil, &StatusError{Op: "encode", Kind: KindInternal, Message: "native encoder returned no result"}
	}

	return decodeEncodeResult("encode", raw)
}

// SampleEncode tokenizes text by sampling one segmentation from the
// nBest best candidates (subword regularization). alpha is the
// smoothing temperature of the sampling distribution and must be a
// positive finite number; nBest must be in [1, 512].
func (p *Processor) SampleEncode(text string, nBest int, alpha float32) ([]Piece, error) {
	if p == nil {
		return nil, ErrProcessorIsNil
	}
	if nBest < 1 || nBest > maxSampleNBest {
		return nil, &StatusError{
			Op:      "sample encode",
			Kind:    KindInvalidArgument,
			Message: fmt.Sprintf("n_best %d out of range [1, %d]", nBest, maxSampleNBest),
		}
	}
	if f := float64(alpha); f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, &StatusError{
			Op:      "sample encode",
			Kind:    KindInvalidArgument,
			Message: fmt.Sprintf("alpha %v is not a positive finite number", alpha),
		}
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return nil, ErrProcessorClosed
	}
	if !p.loaded {
		return nil, ErrNotLoaded
	}
	if len(text) == 0 {
		return []Piece{}, nil
	}

	buf := []byte(text)
	var protoLen C.size_t
	data := C.spm_sample_encode_serialized(
		p.ptr,
		(*C.char)(unsafe.Pointer(&buf[0])),
		C.size_t(len(buf)),
		C.int(nBest),
		C.float(alpha),
		&protoLen,
	)

	raw, err := takeOwned("sample encode", data, protoLen)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, &StatusError{Op: "sample encode", Kind: KindInternal, Message: "native encoder returned no result"}
	}

	return decodeEncodeResult("sample encode", raw)
}
