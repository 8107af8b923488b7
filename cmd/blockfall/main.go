package main

import "github.com/chiselstrike/blockfall/internal/cmd"

func main() {
	cmd.Execute()
}
