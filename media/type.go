// SPDX-License-Identifier: EPL-2.0

package media

import (
	"path/filepath"
	"strings"
)

// Type is the media type of a file, derived from its suffix.
type Type int

const (
	TypeUnsupported Type = iota
	TypeWAV
	TypeMP3
	TypeOGG
	TypeAIFF
	TypeMP4
	TypeMKV
	TypeTS
)

// Kind groups types into audio and video.
type Kind int

const (
	KindUnknown Kind = iota
	KindAudio
	KindVideo
)

var suffixes = map[string]Type{
	".wav":   TypeWAV,
	".wave":  TypeWAV,
	".mp3":   TypeMP3,
	".ogg":   TypeOGG,
	".oga":   TypeOGG,
	".aif":   TypeAIFF,
	".aiff":  TypeAIFF,
	".mp4":   TypeMP4,
	".mpeg4": TypeMP4,
	".mkv":   TypeMKV,
	".ts":    TypeTS,
}

// Classify maps the suffix of path to a Type. Matching ignores case.
func Classify(path string) Type {
	t, ok := suffixes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return TypeUnsupported
	}

	return t
}

// String returns the format key used by the prober registry.
func (t Type) String() string {
	switch t {
	case TypeWAV:
		return "wav"
	case TypeMP3:
		return "mp3"
	case TypeOGG:
		return "ogg"
	case TypeAIFF:
		return "aiff"
	case TypeMP4:
		return "mp4"
	case TypeMKV:
		return "mkv"
	case TypeTS:
		return "ts"
	default:
		return "unsupported"
	}
}

func (t Type) Kind() Kind {
	switch t {
	case TypeWAV, TypeMP3, TypeOGG, TypeAIFF:
		return KindAudio
	case TypeMP4, TypeMKV, TypeTS:
		return KindVideo
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}
