package main

import "github.com/kamusis/refsearch/cmd"

func main() {
	cmd.Execute()
}
