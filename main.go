package main

import "github.com/pokeql/pokeql/cmd"

func main() {
	cmd.Execute()
}
