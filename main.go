package main

import "Ballast/cmd"

func main() {
	cmd.Execute()
}
