package main

import "github.com/tonelab/harmonia/cmd"

func main() {
	cmd.Execute()
}
