package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"counpaign/internal/config"
	"counpaign/internal/logging"
	"counpaign/internal/models"
	"counpaign/internal/repositories"
	"counpaign/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.L().WithError(err).Fatal("load configuration")
	}
	log := logging.Setup(cfg.LogLevel, cfg.IsProduction())

	adminEmail := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminPhone := strings.TrimSpace(os.Getenv("ADMIN_PHONE"))

	if adminEmail == "" || adminPassword == "" || adminPhone == "" {
		log.Fatal("ADMIN_EMAIL, ADMIN_PASSWORD, and ADMIN_PHONE must be set in environment")
	}

	db, err := repositories.InitDB(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("initialize database")
	}
	defer func() {
		if err := repositories.Close(db); err != nil {
			log.WithError(err).Warn("close database connection")
		}
	}()

	ctx := context.Background()
	customers := repositories.NewStore(db).Customers()

	_, err = customers.GetByEmail(ctx, adminEmail)
	if err == nil {
		log.Info("admin account already exists")
		return
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		log.WithError(err).Fatal("look up admin account")
	}

	hashedPassword, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.WithError(err).Fatal("hash password")
	}

	admin := &models.Customer{
		Name:        "Admin",
		Surname:     "Counpaign",
		Email:       adminEmail,
		PhoneNumber: adminPhone,
		Password:    hashedPassword,
		Role:        models.RoleAdmin,
	}
	if err := customers.Create(ctx, admin); err != nil {
		log.WithError(err).Fatal("create admin account")
	}

	log.WithField("customer_id", admin.ID).Info("admin account created")
}
