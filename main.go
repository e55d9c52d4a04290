package main

import (
	"github.com/zenith-max/Wellmed/config"
	"github.com/zenith-max/Wellmed/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
