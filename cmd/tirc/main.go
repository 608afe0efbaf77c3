package main

import "github.com/isaacphi/tirc/internal/ui/cli"

func main() {
	cli.Execute()
}
