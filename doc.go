// Package sentencepiece provides Go bindings for the SentencePiece
// unsupervised text tokenizer, wrapping the native library behind a
// memory-safe API. Models trained with the SentencePiece toolchain can
// be loaded from disk or from memory and used to encode text into
// pieces, decode pieces back into text, and inspect the vocabulary.
//
// # Quick Start
//
//	spp, err := sentencepiece.Open("toy.model")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer spp.Close()
//
//	pieces, err := spp.Encode("I saw a girl with a telescope.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, piece := range pieces {
//	    fmt.Printf("%s (%d) [%d:%d)\n", piece.Piece, piece.ID, piece.Begin, piece.End)
//	}
//
// # Resource Management
//
// A [Processor] owns a single native handle. Close releases it and is
// safe to call more than once; a finalizer releases the handle if a
// caller forgets, but relying on it delays the release until the next
// garbage collection, so call Close (usually with defer) as soon as the
// processor is no longer needed. Model bytes returned by the native
// library are copied into Go memory and the native allocation is freed
// before the call returns, so no value handed out by this package refers
// to native memory.
//
// # Errors
//
// Fallible operations translate the native status code into a
// [StatusError] carrying an error [Kind] (not found, invalid argument,
// internal, unknown) plus the raw native code for diagnostics; [KindOf]
// reports the kind of any error returned by this package. Misuse of a
// processor (operations before a model is loaded, after Close, or on a
// nil processor) is reported through the sentinel errors [ErrNotLoaded],
// [ErrProcessorClosed] and [ErrProcessorIsNil].
//
// # Concurrency
//
// Encode, decode and vocabulary lookups may run concurrently on one
// processor. Load and LoadFromSerializedProto exclude every other
// operation while they replace the model. Independent processors are
// fully independent.
//
// # Building
//
// The package links against the native sentencepiece library via cgo;
// libsentencepiece and its headers must be installed where the C++
// toolchain can find them (for example via pkg-config or
// CGO_CXXFLAGS/CGO_LDFLAGS).
package sentencepiece
