package main

import "movie-manager/cmd"

func main() {
	cmd.Execute()
}
