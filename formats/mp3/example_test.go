// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audpost/audio"
	"github.com/ik5/audpost/formats/mp3"
)

// ExampleProber_Probe shows how to read MP3 metadata.
func ExampleProber_Probe() {
	f, err := os.Open("input.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	info, err := mp3.Prober{}.Probe(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d channels, %d frames\n", info.SampleRate, info.Channels, info.Frames)
}

// Example_registry registers the MP3 prober under its format key.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("mp3", mp3.Prober{})

	_, ok := registry.Get("mp3")
	fmt.Println(ok)

	// Output:
	// true
}
