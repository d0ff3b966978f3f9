package main

import "github.com/cmccomb/structural-shapes/cmd"

func main() {
	cmd.Execute()
}
