// Command seed loads a YAML fixture of businesses, campaigns and
// participations into the database. Running it twice is safe.
package main

import (
	"context"
	"flag"

	"counpaign/internal/config"
	"counpaign/internal/logging"
	"counpaign/internal/repositories"
	"counpaign/internal/services/importer"

	"github.com/sirupsen/logrus"
)

func main() {
	file := flag.String("file", "fixtures.yaml", "path to the YAML fixture")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.L().WithError(err).Fatal("load configuration")
	}
	log := logging.Setup(cfg.LogLevel, cfg.IsProduction())

	fixture, err := importer.LoadFile(*file)
	if err != nil {
		log.WithError(err).WithField("file", *file).Fatal("read fixture")
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

	counts, err := importer.New(repositories.NewStore(db)).Import(context.Background(), *fixture)
	if err != nil {
		log.WithError(err).Fatal("import fixture")
	}
	log.WithFields(logrus.Fields{
		"file":   *file,
		"counts": counts,
	}).Info("fixture imported")
}
