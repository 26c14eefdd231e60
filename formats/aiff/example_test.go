// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audpost/formats/aiff"
)

// ExampleProber_Probe shows how to read AIFF metadata.
func ExampleProber_Probe() {
	f, err := os.Open("input.aif")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	info, err := aiff.Prober{}.Probe(f)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d Hz, %d-byte samples, %d channels\n", info.SampleRate, info.SampleWidth, info.Channels)
}
