// Command seedcodes inserts or replaces access directory rows. Access codes
// are provisioned out of band; the API has no endpoint for it.
//
//	seedcodes -code COACH-123 -name "Jane" -commission 2.5
//	seedcodes -code SUPER-1 -role admin
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"nakram/coach-builder/internal/config"
	"nakram/coach-builder/internal/domain"
	"nakram/coach-builder/internal/repository/mongo"
)

func main() {
	code := flag.String("code", "", "access code to seed (required)")
	role := flag.String("role", string(domain.RoleCoach), "coach or admin")
	name := flag.String("name", "", "coach display name")
	commission := flag.Float64("commission", 0, "commission credited per logged plan (0 uses the server default)")
	flag.Parse()

	if *code == "" {
		log.Fatal("FATAL: -code is required")
	}
	if *role != string(domain.RoleCoach) && *role != string(domain.RoleAdmin) {
		log.Fatalf("FATAL: unknown role %q", *role)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()

	repo := mongo.NewMongoAccessCodeRepository(dbClient.Database(cfg.Database.Name))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ac := &domain.AccessCode{
		Code:                 *code,
		Role:                 domain.Role(*role),
		CoachName:            *name,
		CommissionPerWorkout: *commission,
	}
	if err := repo.Upsert(ctx, ac); err != nil {
		log.Fatalf("FATAL: Upsert failed: %v", err)
	}

	log.Printf("Seeded %s row for code %s", ac.Role, ac.Code)
}
