package mqtt

import "errors"

var (
	// ErrConnectionFailed is returned when the broker cannot be reached.
	ErrConnectionFailed = errors.New("mqtt: connection failed")

	// ErrPublishFailed is returned when a publish is not acknowledged.
	ErrPublishFailed = errors.New("mqtt: publish failed")

	// ErrSubscribeFailed is returned when a subscription is refused.
	ErrSubscribeFailed = errors.New("mqtt: subscribe failed")

	// ErrInvalidTopic is returned for command topics outside the layout.
	ErrInvalidTopic = errors.New("mqtt: invalid topic")

	// ErrInvalidPayload is returned for command payloads that do not decode.
	ErrInvalidPayload = errors.New("mqtt: invalid payload")
)
