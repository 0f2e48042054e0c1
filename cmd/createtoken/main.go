package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Shin-da/ojt-tracking-system-sub000/config"
	"github.com/Shin-da/ojt-tracking-system-sub000/security"
)

func main() {
	config.Load()

	token, err := security.CreateIdentityToken(&security.TraineeIdentity{
		ID:       1,
		Username: "dev",
	}, []byte(config.Cfg.JWTSecret), time.Hour)
	if err != nil {
		log.Fatalf("failed to create token: %v", err)
	}

	fmt.Println(token)
}
