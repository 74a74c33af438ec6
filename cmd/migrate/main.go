package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/yuriblog/blog-backend/internal/config"
	"github.com/yuriblog/blog-backend/internal/migration"
	"github.com/yuriblog/blog-backend/internal/repository"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "configs/config.local.yaml", "config file path")
	reset := flag.Bool("reset", false, "drop every table before migrating")
	seed := flag.Bool("seed", false, "insert a welcome post into an empty database")
	dryRun := flag.Bool("dry-run", false, "list the tables that would be migrated")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	loaded := config.LoadDotEnv()
	if len(loaded) == 0 {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logLevel := gormlogger.Warn
	if *verbose {
		logLevel = gormlogger.Info
	}

	db, err := repository.Open(cfg.Database, logLevel)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying DB: %v", err)
	}
	defer sqlDB.Close()

	if *dryRun {
		for _, model := range migration.Models() {
			stmt := db.Model(model).Statement
			if err := stmt.Parse(model); err != nil {
				log.Fatalf("Failed to parse %T: %v", model, err)
			}
			fmt.Printf("[dry-run] would migrate %s\n", stmt.Schema.Table)
		}
		return
	}

	if *reset {
		log.Println("Dropping tables...")
		if err := migration.Drop(db); err != nil {
			log.Fatalf("Drop failed: %v", err)
		}
	}

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Schema up to date")

	if *seed {
		if err := migration.Seed(db); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		log.Println("Seed data inserted")
	}
}
