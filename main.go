package main

import "github.com/bendaprile/recifree-cli/cmd"

func main() {
	cmd.Execute()
}
