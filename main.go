package main

import (
	"github.com/movieflix-cli/movieflix/cmd"
	"github.com/movieflix-cli/movieflix/config"
	"github.com/movieflix-cli/movieflix/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
