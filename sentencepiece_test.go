package sentencepiece

import (
	"os"
	"testing"
)

// Shared toy model for tests. The model is a small sentencepiece model
// trained on plain English text; tests exercising the native library
// skip when it is not present so the pure-Go parts stay testable
// without it.
const testModelPath = "testdata/toy.model"

const sampleText = "I saw a girl with a telescope."

// openTestModel loads the shared test model, skipping the test when the
// model file is not available.
func openTestModel(t *testing.T) *Processor {
	t.Helper()

	if _, err := os.Stat(testModelPath); err != nil {
		t.Skipf("test model not available: %v", err)
	}

	spp, err := Open(testModelPath)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", testModelPath, err)
	}
	t.Cleanup(func() { spp.Close() })

	return spp
}

// newEmptyProcessor creates a processor with no model loaded and closes
// it when the test finishes.
func newEmptyProcessor(t *testing.T) *Processor {
	t.Helper()

	spp, err := NewProcessor()
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}
	t.Cleanup(func() { spp.Close() })

	return spp
}
