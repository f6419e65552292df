package main

import "github.com/gerunddev/notemark/internal/cli"

func main() {
	cli.Execute()
}
