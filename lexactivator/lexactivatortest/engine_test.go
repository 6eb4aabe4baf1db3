package lexactivatortest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CloudNativeWorks/cnw-lexactivator-sdk/lexactivator/wire"
)

func TestEngine_OutputBuffer(t *testing.T) {
	eng := New()
	eng.Respond("GetLicenseKey", Response{Texts: []string{"ABCD-1234"}})

	buf := wire.NewBuffer(wire.ShortCapacity)
	code := eng.Library().GetLicenseKey(buf.Ptr(), buf.Cap())
	require.Equal(t, int32(0), code)
	assert.Equal(t, "ABCD-1234", buf.String())
}

func TestEngine_OutputBufferTooSmall(t *testing.T) {
	eng := New()
	eng.Respond("GetLicenseKey", Response{Texts: []string{strings.Repeat("k", 8)}})

	// Eight units plus the terminator need nine.
	buf := wire.NewBuffer(8)
	assert.Equal(t, int32(codeBufferSize), eng.Library().GetLicenseKey(buf.Ptr(), buf.Cap()))
	assert.Equal(t, "", buf.String())

	buf = wire.NewBuffer(9)
	assert.Equal(t, int32(0), eng.Library().GetLicenseKey(buf.Ptr(), buf.Cap()))
}

func TestEngine_ScriptedError(t *testing.T) {
	eng := New()
	eng.RespondCode("GetLicenseUserEmail", 87)

	buf := wire.NewBuffer(wire.ShortCapacity)
	assert.Equal(t, int32(87), eng.Library().GetLicenseUserEmail(buf.Ptr(), buf.Cap()))
}

func TestEngine_RecordsArguments(t *testing.T) {
	eng := New()
	key, value := wire.Encode("tier"), wire.Encode("gold")
	eng.Library().SetActivationMetadata(key.Ptr(), value.Ptr())
	eng.Library().ActivateLocalTrial(30)

	assert.Equal(t, []Call{
		{Function: "SetActivationMetadata", Args: []string{"tier", "gold"}},
		{Function: "ActivateLocalTrial", Ints: []int64{30}},
	}, eng.Calls())
	assert.Len(t, eng.CallsTo("ActivateLocalTrial"), 1)
	assert.Empty(t, eng.CallsTo("Reset"))
}

func TestEngine_Fire(t *testing.T) {
	eng := New()
	assert.False(t, eng.Fire(0))

	var got []int32
	require.Equal(t, int32(0), eng.Library().SetLicenseCallback(func(code int32) {
		got = append(got, code)
	}))
	assert.True(t, eng.Fire(21))
	assert.Equal(t, []int32{21}, got)
}

func TestEngine_RejectedCallbackIsNotStored(t *testing.T) {
	eng := New()
	eng.RespondCode("SetLicenseCallback", 92)

	assert.Equal(t, int32(92), eng.Library().SetLicenseCallback(func(int32) {}))
	assert.False(t, eng.Fire(0))
}

func TestReadText(t *testing.T) {
	assert.Equal(t, "", readText(nil))
	text := wire.Encode("Acme Corp")
	assert.Equal(t, "Acme Corp", readText(text.Ptr()))
}
