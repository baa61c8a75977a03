// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/audsig/audio"
	"github.com/ik5/audsig/formats/vorbis"
)

// ExampleDecoder_Decode mixes an Ogg Vorbis file down to mono.
func ExampleDecoder_Decode() {
	f, err := os.Open("input.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	mono, err := audio.ReadAll(audio.NewMonoMixer(src))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d mono frames at %d Hz\n", len(mono), src.SampleRate())
}
