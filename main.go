package main

import "github.com/coreframe/macui-agent/cmd"

func main() {
	cmd.Execute()
}
