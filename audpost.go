// SPDX-License-Identifier: EPL-2.0

package audpost

import (
	"github.com/ik5/audpost/audio"
	"github.com/ik5/audpost/cancellation"
	"github.com/ik5/audpost/media"
	"github.com/ik5/audpost/syncer"
)

// CancelNoise removes the noise recorded in auxPath from mainPath and writes
// the result to outPath.
//
// The auxiliary recording is bitwise inverted and mixed with the main one,
// chunk by chunk. Both inputs must be PCM WAV files; the output is as long
// as the shorter input.
//
// Parameters:
//   - mainPath: recording that carries the wanted signal plus noise
//   - auxPath: recording of the noise alone
//   - outPath: destination .wav file, created or truncated
//   - opts: cancellation options (ratio, chunk size, output format, ...)
//
// Returns:
//   - *media.Descriptor: descriptor of the written file
//   - error: audio.ErrFileNotFound, audio.ErrUnsupportedFormat,
//     audio.ErrUnsupportedMediaType or a processing error
//
// Example:
//
//	out, err := audpost.CancelNoise("lecture.wav", "room.wav", "clean.wav",
//	    cancellation.WithRatio(1.2))
func CancelNoise(mainPath, auxPath, outPath string, opts ...cancellation.Option) (*media.Descriptor, error) {
	c, err := cancellation.New(opts...)
	if err != nil {
		return nil, err
	}

	main, aux, err := openPair(mainPath, auxPath)
	if err != nil {
		return nil, err
	}

	return c.Process(main, aux, outPath)
}

// FrameLag returns how many frames path2 trails path1, negative when it
// leads. Only the first chunkSize frames of each file are compared; zero
// selects syncer.DefaultChunkSize.
func FrameLag(path1, path2 string, chunkSize int) (int, error) {
	s, d1, d2, err := prepareSync(path1, path2, chunkSize)
	if err != nil {
		return 0, err
	}

	return s.FrameLag(d1, d2)
}

// SecondsLag is FrameLag converted to seconds at the frame rate of path1.
func SecondsLag(path1, path2 string, chunkSize int) (float64, error) {
	s, d1, d2, err := prepareSync(path1, path2, chunkSize)
	if err != nil {
		return 0, err
	}

	return s.SecondsLag(d1, d2)
}

// Align writes to outPath whichever of path1 and path2 starts earlier,
// preceded by enough silence to line it up with the other one.
func Align(path1, path2, outPath string, chunkSize int) (*media.Descriptor, error) {
	s, d1, d2, err := prepareSync(path1, path2, chunkSize)
	if err != nil {
		return nil, err
	}

	return s.Process(d1, d2, outPath)
}

// Inspect returns the header metadata of any supported audio file.
func Inspect(path string) (audio.Info, error) {
	d, err := media.OpenAudio(path)
	if err != nil {
		return audio.Info{}, err
	}

	return d.Info()
}

func openPair(path1, path2 string) (d1, d2 *media.Descriptor, err error) {
	if d1, err = media.OpenAudio(path1); err != nil {
		return nil, nil, err
	}
	if d2, err = media.OpenAudio(path2); err != nil {
		return nil, nil, err
	}

	return d1, d2, nil
}

func prepareSync(path1, path2 string, chunkSize int) (*syncer.Synchronizer, *media.Descriptor, *media.Descriptor, error) {
	s, err := syncer.New(chunkSize)
	if err != nil {
		return nil, nil, nil, err
	}

	d1, d2, err := openPair(path1, path2)
	if err != nil {
		return nil, nil, nil, err
	}

	return s, d1, d2, nil
}
