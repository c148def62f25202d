package main

import (
	"github.com/mj1618/desktop-blur/cmd"
	_ "github.com/mj1618/desktop-blur/internal/platform/windows"
)

func main() {
	cmd.Execute()
}
