package main

import "translations-manager/cmd"

func main() {
	cmd.Execute()
}
