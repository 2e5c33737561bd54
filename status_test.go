package sentencepiece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusError_Success(t *testing.T) {
	require.NoError(t, statusError("load", statusOK))
}

func TestStatusError_CarriesCode(t *testing.T) {
	err := statusError("load", statusNotFound)
	require.Error(t, err)

	statusErr, ok := err.(*StatusError)
	require.True(t, ok, "statusError should return a *StatusError")
	assert.Equal(t, "load", statusErr.Op)
	assert.Equal(t, statusNotFound, statusErr.Code)
	assert.Equal(t, KindNotFound, statusErr.Kind)
}

func TestKindForCode_RecognizedCodes(t *testing.T) {
	assert.Equal(t, KindInvalidArgument, kindForCode(statusInvalidArgument))
	assert.Equal(t, KindInvalidArgument, kindForCode(statusOutOfRange),
		"the native decoder reports bad piece ids as out-of-range")
	assert.Equal(t, KindNotFound, kindForCode(statusNotFound))
	assert.Equal(t, KindInternal, kindForCode(statusInternal))
}

func TestLoadStatusError(t *testing.T) {
	require.NoError(t, loadStatusError("load", statusOK))

	assert.Equal(t, KindNotFound, KindOf(loadStatusError("load", statusNotFound)))
	assert.Equal(t, KindNotFound, KindOf(loadStatusError("load", statusPermissionDenied)))

	// The native loader reports malformed model data as an internal
	// check violation; a load surfaces it as an invalid argument.
	assert.Equal(t, KindInvalidArgument, KindOf(loadStatusError("load", statusInternal)))
	assert.Equal(t, KindInvalidArgument, KindOf(loadStatusError("load", statusInvalidArgument)))
	assert.Equal(t, KindInvalidArgument, KindOf(loadStatusError("load", 99)))
}

// The translation must be total over the integer domain: every non-zero
// code maps to an error kind, and codes outside the recognized set are
// never coerced to success or to a recognized kind.
func TestStatusTranslation_Total(t *testing.T) {
	recognized := map[int]Kind{
		statusInvalidArgument: KindInvalidArgument,
		statusOutOfRange:      KindInvalidArgument,
		statusNotFound:        KindNotFound,
		statusInternal:        KindInternal,
	}

	for code := -50; code <= 50; code++ {
		if code == statusOK {
			assert.NoError(t, statusError("op", code))
			continue
		}

		err := statusError("op", code)
		require.Error(t, err, "code %d must not be success", code)

		want, ok := recognized[code]
		if !ok {
			want = KindUnknown
		}
		assert.Equal(t, want, KindOf(err), "code %d", code)
	}
}
