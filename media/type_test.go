// SPDX-License-Identifier: EPL-2.0

package media

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantType Type
		wantKind Kind
	}{
		{name: "wav", path: "take.wav", wantType: TypeWAV, wantKind: KindAudio},
		{name: "upper case wav", path: "/tmp/TAKE.WAV", wantType: TypeWAV, wantKind: KindAudio},
		{name: "mp3", path: "a/b/c.mp3", wantType: TypeMP3, wantKind: KindAudio},
		{name: "ogg", path: "voice.ogg", wantType: TypeOGG, wantKind: KindAudio},
		{name: "aif", path: "voice.aif", wantType: TypeAIFF, wantKind: KindAudio},
		{name: "aiff", path: "voice.aiff", wantType: TypeAIFF, wantKind: KindAudio},
		{name: "mp4", path: "lecture.mp4", wantType: TypeMP4, wantKind: KindVideo},
		{name: "mpeg4", path: "lecture.mpeg4", wantType: TypeMP4, wantKind: KindVideo},
		{name: "mkv", path: "lecture.mkv", wantType: TypeMKV, wantKind: KindVideo},
		{name: "ts upper case", path: "camera.TS", wantType: TypeTS, wantKind: KindVideo},
		{name: "no suffix", path: "README", wantType: TypeUnsupported, wantKind: KindUnknown},
		{name: "unknown suffix", path: "notes.txt", wantType: TypeUnsupported, wantKind: KindUnknown},
		{name: "dot in directory", path: "dir.wav/file", wantType: TypeUnsupported, wantKind: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.path)
			if got != tt.wantType {
				t.Errorf("Classify(%q) = %v, want %v", tt.path, got, tt.wantType)
			}
			if got.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got.Kind(), tt.wantKind)
			}
		})
	}
}

func TestType_String(t *testing.T) {
	t.Parallel()

	want := map[Type]string{
		TypeUnsupported: "unsupported",
		TypeWAV:         "wav",
		TypeMP3:         "mp3",
		TypeOGG:         "ogg",
		TypeAIFF:        "aiff",
		TypeMP4:         "mp4",
		TypeMKV:         "mkv",
		TypeTS:          "ts",
		Type(99):        "unsupported",
	}

	for typ, s := range want {
		if typ.String() != s {
			t.Errorf("Type(%d).String() = %q, want %q", int(typ), typ.String(), s)
		}
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	if KindAudio.String() != "audio" || KindVideo.String() != "video" || KindUnknown.String() != "unknown" {
		t.Error("unexpected Kind names")
	}
}
