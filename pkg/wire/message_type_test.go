package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMessageType(t *testing.T) {
	tests := []struct {
		id   uint32
		want MessageType
		name string
	}{
		{1, MsgHelloRequest, "HelloRequest"},
		{7, MsgPingRequest, "PingRequest"},
		{26, MsgSwitchStateResponse, "SwitchStateResponse"},
		{118, MsgUpdateCommandRequest, "UpdateCommandRequest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupMessageType(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestLookupUnknownMessageType(t *testing.T) {
	for _, id := range []uint32{0, 119, 5000, 1 << 20} {
		_, err := LookupMessageType(id)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownMessageType))

		var typed *UnknownMessageTypeError
		require.True(t, errors.As(err, &typed))
		assert.Equal(t, id, typed.ID)
	}
}

func TestMessageTypeStringUnknown(t *testing.T) {
	assert.Equal(t, "MessageType(999)", MessageType(999).String())
	assert.False(t, MessageType(999).IsKnown())
}

func TestEveryListResponseMapsToEntity(t *testing.T) {
	for _, e := range EntityTypes() {
		name := "ListEntities" + e.String() + "Response"
		found := false
		for mt, n := range messageTypeNames {
			if n != name {
				continue
			}
			found = true
			got, ok := EntityForListResponse(mt)
			require.True(t, ok, name)
			assert.Equal(t, e, got)
		}
		assert.True(t, found, "no list response for %s", e)
	}
}

func TestStateResponseMapping(t *testing.T) {
	e, ok := EntityForStateResponse(MsgSwitchStateResponse)
	require.True(t, ok)
	assert.Equal(t, EntitySwitch, e)

	_, ok = EntityForStateResponse(MsgPingResponse)
	assert.False(t, ok)

	// Camera images and events are not state updates.
	_, ok = EntityForStateResponse(MsgCameraImageResponse)
	assert.False(t, ok)
}

func TestCommandRequestFor(t *testing.T) {
	mt, ok := CommandRequestFor(EntitySwitch)
	require.True(t, ok)
	assert.Equal(t, MsgSwitchCommandRequest, mt)

	_, ok = CommandRequestFor(EntitySensor)
	assert.False(t, ok)
	_, ok = CommandRequestFor(EntityBinarySensor)
	assert.False(t, ok)
}

func TestControlMessagesAreNotEntityMessages(t *testing.T) {
	for _, mt := range []MessageType{
		MsgHelloResponse, MsgConnectResponse, MsgDisconnectRequest, MsgPingRequest,
		MsgListEntitiesDoneResponse, MsgGetTimeRequest, MsgSubscribeLogsResponse,
	} {
		_, ok := EntityForStateResponse(mt)
		assert.False(t, ok, mt.String())
		_, ok = EntityForListResponse(mt)
		assert.False(t, ok, mt.String())
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "RGB_COLD_WARM_WHITE", ColorModeRGBColdWarmWhite.String())
	assert.Equal(t, "JAMMED", LockStateJammed.String())
	assert.Equal(t, "DIAGNOSTIC", EntityCategoryDiagnostic.String())
	assert.Equal(t, "TOTAL_INCREASING", StateClassTotalIncreasing.String())
	assert.Equal(t, "UNKNOWN", LockState(42).String())
}

func TestColorModeCapabilities(t *testing.T) {
	assert.True(t, ColorModeRGBWhite.Has(CapabilityRGB))
	assert.True(t, ColorModeRGBWhite.Has(CapabilityWhite))
	assert.True(t, ColorModeRGBWhite.Has(CapabilityBrightness))
	assert.False(t, ColorModeRGBWhite.Has(CapabilityColorTemperature))
	assert.True(t, ColorModeColdWarmWhite.Has(CapabilityColdWarmWhite))
	assert.False(t, ColorModeOnOff.Has(CapabilityBrightness))
}
