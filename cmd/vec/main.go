package main

import "github.com/npillmayer/linalg/cmd"

func main() {
	cmd.Execute()
}
