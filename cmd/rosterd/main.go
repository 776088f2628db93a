package main

import (
	"log"

	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/di"
	"github.com/baileyYOKE/subway-deal-dash-sub000/internal/structures"
)

func main() {
	flags := structures.ParseFlags()
	if _, err := di.InitApp(flags); err != nil {
		log.Fatalf("failed to start: %v", err)
	}
}
