package provider

import (
	"errors"
	"strings"
)

type Format string

const (
	FormatMP3 Format = "mp3"
	FormatWAV Format = "wav"
	FormatOGG Format = "ogg"
	FormatAAC Format = "aac"
)

func ParseFormat(val string) (Format, error) {
	switch strings.ToLower(val) {
	case "", "mp3":
		return FormatMP3, nil

	case "wav":
		return FormatWAV, nil

	case "ogg":
		return FormatOGG, nil

	case "aac":
		return FormatAAC, nil
	}

	return "", errors.New("unknown audio format: " + val)
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatWAV:
		return "audio/wav"

	case FormatOGG:
		return "audio/ogg"

	case FormatAAC:
		return "audio/aac"

	default:
		return "audio/mpeg"
	}
}
