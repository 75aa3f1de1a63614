package main

import "github.com/griffedoc/griffedoc/cmd"

func main() {
	cmd.Execute()
}
