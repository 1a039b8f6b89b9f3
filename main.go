package main

import "github.com/Mutie886/aims-directory-generator/cmd"

func main() {
	cmd.Execute()
}
