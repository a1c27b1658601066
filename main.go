package main

import "github.com/beeckusu/project-music-ear-training-sub000/cmd"

func main() {
	cmd.Execute()
}
