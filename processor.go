package sentencepiece

/*
#cgo CXXFLAGS: -std=c++17
#cgo LDFLAGS: -lsentencepiece -lstdc++
#include <stdlib.h>
#include "spm_shim.h"
*/
import "C"
import (
	"runtime"
	"sync"
	"unsafe"
)

// Processor is a sentencepiece tokenizer holding a loaded model.
//
// A Processor owns exactly one native handle. The handle is released by
// Close, which must be called when the Processor is no longer needed;
// a finalizer acts as a safety net if a caller forgets. After Close no
// further operation succeeds.
//
// Encode, decode and vocabulary lookups are safe for concurrent use;
// Load and LoadFromSerializedProto take the write lock and therefore
// exclude all other operations while a model is being (re)loaded.
type Processor struct {
	ptr *C.spm_processor

	mu     sync.RWMutex // guards loaded/closed and excludes loads from reads
	loaded bool
	closed bool
}

// NewProcessor creates an empty processor with no model loaded. Most
// callers want Open or FromSerializedProto instead; a bare processor
// only becomes useful after Load or LoadFromSerializedProto succeeds.
func NewProcessor() (*Processor, error) {
	ptr := C.spm_new()
	if ptr == nil {
		return nil, &StatusError{Op: "create", Kind: KindInternal, Message: "native processor allocation failed"}
	}

	p := &Processor{ptr: ptr}

	// Safety net if developer forgets defer p.Close()
	runtime.SetFinalizer(p, (*Processor).Close)

	return p, nil
}

// Open creates a processor and loads the sentencepiece model at path.
func Open(path string, opts ...ProcessorOption) (*Processor, error) {
	p, err := NewProcessor()
	if err != nil {
		return nil, err
	}
	if err := p.Load(path); err != nil {
		p.Close()
		return nil, err
	}
	if err := p.configure(opts); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

// FromSerializedProto creates a processor and loads a model from its
// serialized form, e.g. the contents of a .model file.
func FromSerializedProto(data []byte, opts ...ProcessorOption) (*Processor, error) {
	p, err := NewProcessor()
	if err != nil {
		return nil, err
	}
	if err := p.LoadFromSerializedProto(data); err != nil {
		p.Close()
		return nil, err
	}
	if err := p.configure(opts); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}

func (p *Processor) configure(opts []ProcessorOption) error {
	var cfg ProcessorConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return p.applyConfig(cfg)
}

// Load replaces the processor's model with the one stored at path.
// On failure the previously loaded model, if any, stays in effect.
func (p *Processor) Load(path string) error {
	if p == nil {
		return ErrProcessorIsNil
	}

	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrProcessorClosed
	}

	if err := loadStatusError("load", int(C.spm_load(p.ptr, cPath))); err != nil {
		return err
	}
	p.loaded = true
	return nil
}

// LoadFromSerializedProto replaces the processor's model with one parsed
// from its serialized form. On failure the previous model, if any,
// stays in effect.
func (p *Processor) LoadFromSerializedProto(data []byte) error {
	if p == nil {
		return ErrProcessorIsNil
	}

	var dataPtr *C.char
	if len(data) > 0 {
		dataPtr = (*C.char)(unsafe.Pointer(&data[0]))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrProcessorClosed
	}

	status := C.spm_load_serialized(p.ptr, dataPtr, C.size_t(len(data)))
	if err := loadStatusError("load from serialized proto", int(status)); err != nil {
		return err
	}
	p.loaded = true
	return nil
}

// ToSerializedProto exports the loaded model in its serialized form. The
// returned bytes can be fed back into LoadFromSerializedProto or written
// out as a .model file.
func (p *Processor) ToSerializedProto() ([]byte, error) {
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

	var protoLen C.size_t
	data := C.spm_serialized_model(p.ptr, &protoLen)
	return takeOwned("serialize model", data, protoLen)
}

// Close releases the native processor.
// It is safe to call Close multiple times.
func (p *Processor) Close() error {
	if p == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	runtime.SetFinalizer(p, nil)

	if p.ptr != nil {
		C.spm_free(p.ptr)
		p.ptr = nil
	}

	return nil
}

// takeOwned copies a native-owned buffer into Go memory and frees the
// native allocation before returning, so no native pointer outlives the
// call. A null pointer with zero length is an empty result; a null
// pointer with a non-zero length means the native allocation failed.
func takeOwned(op string, data *C.uchar, n C.size_t) ([]byte, error) {
	if data == nil {
		if n == 0 {
			return nil, nil
		}
		return nil, &StatusError{Op: op, Kind: KindInternal, Message: "native buffer allocation failed"}
	}
	defer C.free(unsafe.Pointer(data))

	// Copy through unsafe.Slice rather than C.GoBytes: the latter takes
	// a C.int length, which silently truncates buffers of 2 GiB or more.
	out := make([]byte, int(n))
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(data)), int(n)))
	return out, nil
}
