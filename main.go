package main

import "github.com/lwp3877/meetpin-server/cmd/server"

func main() {
	server.NewServer().Run()
}
