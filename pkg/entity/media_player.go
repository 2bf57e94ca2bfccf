package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// MediaPlayer translates speakers and other media players.
type MediaPlayer struct{}

func (MediaPlayer) EntityType() wire.EntityType { return wire.EntityMediaPlayer }

func (MediaPlayer) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesMediaPlayerResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 2)
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (MediaPlayer) State(payload []byte) (Update, error) {
	var m wire.MediaPlayerStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{Key: m.Key, Attributes: []hub.Attribute{
		hub.Media(mediaState(m.State)),
		hub.Volume(float64(m.Volume)),
		hub.Muted(m.Muted),
	}}, nil
}

func mediaState(s wire.MediaPlayerState) hub.MediaState {
	switch s {
	case wire.MediaPlayerStateIdle:
		return hub.MediaIdle
	case wire.MediaPlayerStatePlaying:
		return hub.MediaPlaying
	case wire.MediaPlayerStatePaused:
		return hub.MediaPaused
	default:
		return hub.MediaUnknown
	}
}

// Command sends one playback command. A later MediaState or Muted
// attribute overrides an earlier one.
func (MediaPlayer) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.MediaPlayerCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		switch a.Kind {
		case hub.KindVolume:
			req.HasVolume = true
			req.Volume = float32(a.Float)
		case hub.KindMuted:
			req.HasCommand = true
			req.Command = wire.MediaPlayerUnmute
			if a.Bool {
				req.Command = wire.MediaPlayerMute
			}
		case hub.KindMediaState:
			req.HasCommand = true
			switch a.MediaState() {
			case hub.MediaPlaying:
				req.Command = wire.MediaPlayerPlay
			case hub.MediaPaused:
				req.Command = wire.MediaPlayerPause
			default:
				req.Command = wire.MediaPlayerStop
			}
		case hub.KindText:
			req.HasMediaURL = true
			req.MediaURL = a.Text
		default:
			ignored = append(ignored, a)
		}
	}
	return req, ignored, nil
}
