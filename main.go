package main

import "github.com/mouse-blink/gpcobf/cmd"

func main() {
	cmd.Execute()
}
