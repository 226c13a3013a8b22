package main

import "github.com/structeng/boltconn/cmd"

func main() {
	cmd.Execute()
}
