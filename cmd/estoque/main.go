package main

import "github.com/rtimportacoes/estoque/cmd/estoque/commands"

func main() {
	commands.Execute()
}
