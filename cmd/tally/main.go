package main

import "git.sr.ht/~jakintosh/tally/internal/cli"

func main() {
	cli.Execute()
}
