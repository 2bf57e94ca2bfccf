package log

import "testing"

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{DirectionIn.String(), "IN"},
		{DirectionOut.String(), "OUT"},
		{Direction(9).String(), "UNKNOWN"},
		{LayerTransport.String(), "TRANSPORT"},
		{LayerWire.String(), "WIRE"},
		{LayerSession.String(), "SESSION"},
		{Layer(9).String(), "UNKNOWN"},
		{CategoryMessage.String(), "MESSAGE"},
		{CategoryControl.String(), "CONTROL"},
		{CategoryState.String(), "STATE"},
		{CategoryError.String(), "ERROR"},
		{CategoryHandshake.String(), "HANDSHAKE"},
		{Category(9).String(), "UNKNOWN"},
		{StateEntityConnection.String(), "CONNECTION"},
		{StateEntitySession.String(), "SESSION"},
		{StateEntityDevice.String(), "DEVICE"},
		{ControlMsgPing.String(), "PING"},
		{ControlMsgPong.String(), "PONG"},
		{ControlMsgDisconnect.String(), "DISCONNECT"},
		{ControlMsgGetTime.String(), "GET_TIME"},
		{HandshakeClientHello.String(), "CLIENT_HELLO"},
		{HandshakeServerHello.String(), "SERVER_HELLO"},
		{HandshakeComplete.String(), "COMPLETE"},
		{HandshakeRejected.String(), "REJECTED"},
		{HandshakeStep(9).String(), "UNKNOWN"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

// Values are persisted in capture files and must not change.
func TestEnumValuesStable(t *testing.T) {
	if DirectionIn != 0 || DirectionOut != 1 {
		t.Error("Direction values changed")
	}
	if LayerTransport != 0 || LayerWire != 1 || LayerSession != 2 {
		t.Error("Layer values changed")
	}
	if CategoryMessage != 0 || CategoryControl != 1 || CategoryState != 2 || CategoryError != 3 || CategoryHandshake != 4 {
		t.Error("Category values changed")
	}
	if StateEntityConnection != 0 || StateEntitySession != 1 || StateEntityDevice != 2 {
		t.Error("StateEntity values changed")
	}
}
