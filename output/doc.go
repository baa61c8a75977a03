// SPDX-License-Identifier: EPL-2.0

// Package output plays a signal through the system audio device using
// github.com/ebitengine/oto/v3.
//
// The device pulls bytes from a Reader on its own goroutine. The Reader
// owns the signal for that time and is the only caller of Sample; other
// goroutines steer playback through the signal.StopControl returned by
// Device.Control. Pausing keeps the device fed with silence. Stopping ends
// the stream and lets Wait return.
//
//	stop := signal.NewStop[frame.Stereo](signal.NewCycle(buf))
//	dev, err := output.Open(ctx, 48000, stop, output.Options{})
//	if err != nil {
//	    return err
//	}
//	defer dev.Close()
//
//	dev.Control().Pause()
package output
