package main

import "fmebackup/cmd"

func main() {
	cmd.Execute()
}
