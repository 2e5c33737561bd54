package sentencepiece

/*
#include <stdlib.h>
#include "spm_shim.h"
*/
import "C"
import "unsafe"

// ProcessorConfig holds configuration applied after a model loads.
type ProcessorConfig struct {
	EncodeExtraOptions string // Extra-options string for encoding, e.g. "bos:eos" or "reverse"
	DecodeExtraOptions string // Extra-options string for decoding
}

// ProcessorOption configures a processor created by Open or
// FromSerializedProto.
type ProcessorOption func(*ProcessorConfig)

// WithEncodeExtraOptions sets the native extra-options string applied
// to every encode, using the same syntax as the sentencepiece tools:
// a colon-separated combination of "bos", "eos" and "reverse", e.g.
// "bos:eos" surrounds every encoding with the reserved sequence tokens.
func WithEncodeExtraOptions(options string) ProcessorOption {
	return func(c *ProcessorConfig) { c.EncodeExtraOptions = options }
}

// WithDecodeExtraOptions sets the native extra-options string applied
// to every decode; see WithEncodeExtraOptions for the syntax.
func WithDecodeExtraOptions(options string) ProcessorOption {
	return func(c *ProcessorConfig) { c.DecodeExtraOptions = options }
}

// applyConfig pushes the configured extra options into the native
// processor. Called with the model freshly loaded and the processor
// not yet shared, so no locking is needed.
func (p *Processor) applyConfig(cfg ProcessorConfig) error {
	if cfg.EncodeExtraOptions != "" {
		cOptions := C.CString(cfg.EncodeExtraOptions)
		defer C.free(unsafe.Pointer(cOptions))

		status := C.spm_set_encode_extra_options(p.ptr, cOptions)
		if err := statusError("set encode extra options", int(status)); err != nil {
			return err
		}
	}

	if cfg.DecodeExtraOptions != "" {
		cOptions := C.CString(cfg.DecodeExtraOptions)
		defer C.free(unsafe.Pointer(cOptions))

		status := C.spm_set_decode_extra_options(p.ptr, cOptions)
		if err := statusError("set decode extra options", int(status)); err != nil {
			return err
		}
	}

	return nil
}
