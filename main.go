package main

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/chippy8vm/chippy8/cmd"
)

func main() {
	// pixelgl needs to own the main OS thread, so cobra's command
	// execution runs inside pixelgl.Run rather than directly in main.
	pixelgl.Run(cmd.Execute)
}
