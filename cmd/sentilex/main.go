package main

import "sentilex/internal/cli"

func main() {
	cli.Execute()
}
