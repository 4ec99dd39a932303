package main

import "seqprep/internal/cli"

func main() {
	cli.Execute()
}
