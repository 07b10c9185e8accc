//go:build tinygo

// Build for the board with the multicore scheduler so the second half of the
// frame renders on core 1:
//
//	tinygo flash -target=pico -scheduler=cores .
package main

import (
	"duoray/app"
	"duoray/hal"
)

func main() {
	app.Run(hal.New())
}
