package main

import (
	"github.com/GlobisHR/site_service/config"
	"github.com/GlobisHR/site_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
