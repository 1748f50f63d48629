// Package main - entry point for the port-proforma server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"port-proforma/api"
	"port-proforma/core/exchange"
	"port-proforma/core/rates"
	"port-proforma/internal/config"
	"port-proforma/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "Config file path")
	addr := flag.String("addr", "", "Server address (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
		config.Set(cfg)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	card := rates.Default()
	fx := exchange.Rates{
		USDToEUR: cfg.Rates.DefaultUSDToEUR,
		USDToTRY: cfg.Rates.DefaultUSDToTRY,
	}
	if cfg.Rates.OverridesPath != "" {
		overrides, err := rates.LoadOverrides(cfg.Rates.OverridesPath)
		if err != nil {
			log.Fatal(err)
		}
		card = overrides.Apply(card)
		if r := overrides.Rates(); r != nil {
			fx = *r
		}
	}

	apiServer := api.NewServer(version, api.NewHandler(card, fx))

	listen := cfg.Server.Address
	if *addr != "" {
		listen = *addr
	}

	fmt.Printf("port-proforma server v%s (tariff %s)\n", version, card.Version)
	fmt.Printf("   API: http://localhost%s\n", listen)

	if err := http.ListenAndServe(listen, apiServer); err != nil {
		log.Fatal(err)
	}
}
