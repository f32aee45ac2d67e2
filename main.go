package main

import "github.com/RyanBlaney/fourier-explorer/cmd"

func main() {
	cmd.Execute()
}
