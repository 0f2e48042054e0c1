package main

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Shin-da/ojt-tracking-system-sub000/config"
	"github.com/Shin-da/ojt-tracking-system-sub000/core"
	"github.com/Shin-da/ojt-tracking-system-sub000/model"
	"github.com/Shin-da/ojt-tracking-system-sub000/store"
	"github.com/Shin-da/ojt-tracking-system-sub000/utils"
)

type SeedFile struct {
	RequiredHours float64 `yaml:"required_hours"`
	Holidays      []struct {
		Date string `yaml:"date"`
		Name string `yaml:"name"`
	} `yaml:"holidays"`
	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"admin"`
}

// Creates missing tables, then optionally applies a YAML seed file:
//
//	go run ./cmd/seed [seed.yaml]
func main() {
	config.Load()

	dm, err := core.New(config.Cfg.GetDSN(), 5, core.LogLevelInfo)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer dm.Close()

	models := []interface{}{
		&model.TimeLog{},
		&model.Setting{},
		&model.Holiday{},
		&model.Task{},
		&model.Report{},
		&model.Document{},
		&model.User{},
	}

	for _, m := range models {
		if !dm.DB.Migrator().HasTable(m) {
			if err := dm.DB.Migrator().CreateTable(m); err != nil {
				log.Fatalf("failed to create table for %T: %v", m, err)
			}
		}
	}

	if len(os.Args) < 2 {
		return
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	if seed.RequiredHours > 0 {
		if err := store.NewSettingStore(dm.DB).SetRequiredHours(seed.RequiredHours); err != nil {
			log.Fatalf("failed to seed required_hours: %v", err)
		}
	}

	holidays := store.NewHolidayStore(dm.DB)
	for _, h := range seed.Holidays {
		date, err := utils.ParseDate(h.Date)
		if err != nil {
			log.Fatalf("failed to parse holiday date: %v", err)
		}
		if _, err := holidays.Create(date, h.Name); err != nil {
			log.Printf("WARN: holiday %s not seeded: %v", h.Date, err)
		}
	}

	if seed.Admin.Username != "" {
		users := store.NewUserStore(dm.DB)
		if _, err := users.FindByUsername(seed.Admin.Username); err != nil {
			if _, err := users.Create(seed.Admin.Username, seed.Admin.Password); err != nil {
				log.Fatalf("failed to seed admin user: %v", err)
			}
		}
	}
}
