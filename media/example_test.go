// SPDX-License-Identifier: EPL-2.0

package media_test

import (
	"fmt"

	"github.com/ik5/audpost/media"
)

func ExampleClassify() {
	for _, path := range []string{"take.wav", "camera.TS", "notes.txt"} {
		t := media.Classify(path)
		fmt.Println(path, t, t.Kind())
	}

	// Output:
	// take.wav wav audio
	// camera.TS ts video
	// notes.txt unsupported unknown
}
