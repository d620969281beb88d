package main

import "github.com/mabhi256/gvasdiag/cmd"

func main() {
	cmd.Execute()
}
