package inspect

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"
)

// ErrNoVideoTrack is returned by ProbeVideoTrack when the movie has no
// visual sample entry.
var ErrNoVideoTrack = errors.New("no video track found")

// VideoTrack describes the first video track of an MP4 file.
type VideoTrack struct {
	TrackID uint32
	Codec   string
	Width   int
	Height  int
}

// ProbeVideoTrack parses the moov box of an MP4 file, progressive or
// fragmented, and returns its first video track.
func ProbeVideoTrack(data []byte) (VideoTrack, error) {
	file, err := mp4.DecodeFile(bytes.NewReader(data))
	if err != nil {
		return VideoTrack{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := file.Moov
	if moov == nil && file.Init != nil {
		moov = file.Init.Moov
	}
	if moov == nil {
		return VideoTrack{}, fmt.Errorf("no moov box found")
	}

	for _, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
			continue
		}
		for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
			if entry, ok := child.(*mp4.VisualSampleEntryBox); ok {
				track := VideoTrack{
					Codec:  entry.Type(),
					Width:  int(entry.Width),
					Height: int(entry.Height),
				}
				if trak.Tkhd != nil {
					track.TrackID = trak.Tkhd.TrackID
				}
				return track, nil
			}
		}
	}
	return VideoTrack{}, ErrNoVideoTrack
}
