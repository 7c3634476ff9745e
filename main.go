package main

import "github.com/ksolomon/jobtrack/cmd"

func main() {
	cmd.Execute()
}
