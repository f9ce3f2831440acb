package database

import (
	"fmt"

	"jobportal/config"
	"jobportal/logging"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"xorm.io/xorm"
)

var DB Database

// DataSource describes how to open the database and which types it maps.
type DataSource struct {
	Conf     config.DatabaseConfiguration
	Entities []interface{}
}

func NewDataSource(conf config.DatabaseConfiguration) DataSource {
	return DataSource{Conf: conf, Entities: Entities()}
}

type Database struct {
	Engine *xorm.Engine
	Source DataSource
}

// Init opens the engine and brings the schema up to date: by Sync2 when the
// data source asks for synchronisation, by the configured migrations otherwise.
func (d *Database) Init(ds DataSource) error {
	d.Source = ds

	if err := d.CreateEngine(); err != nil {
		return err
	}

	if ds.Conf.Synchronize {
		return d.SyncDatabase()
	}

	if len(ds.Conf.Migrations) == 0 {
		return nil
	}

	_, err := d.Migrate(Up)
	return err
}

func (d *Database) CreateEngine() error {
	conf := d.Source.Conf
	logger := logging.WithComponent("database")

	engine, err := xorm.NewEngine(string(conf.Type), conf.DSN())
	if err != nil {
		return fmt.Errorf("creating %s engine: %w", conf.Type, err)
	}

	engine.SetLogger(NewLogger(logger))
	engine.ShowSQL(conf.Logging)

	if conf.Type == config.SQLite {
		// each sqlite connection to :memory: is its own database
		engine.SetMaxOpenConns(1)
	}

	if err := engine.Ping(); err != nil {
		engine.Close()
		return fmt.Errorf("connecting to %s database %q: %w", conf.Type, conf.Name, err)
	}

	logger.Info().
		Str("type", string(conf.Type)).
		Str("address", conf.Address()).
		Str("database", conf.Name).
		Msg("database connected")

	d.Engine = engine
	return nil
}

func (d *Database) SyncDatabase() error {
	if err := d.Engine.Sync2(d.Source.Entities...); err != nil {
		return fmt.Errorf("syncing entities: %w", err)
	}

	logger := logging.WithComponent("database")
	logger.Info().
		Int("entities", len(d.Source.Entities)).
		Msg("schema synchronised")

	return nil
}

func (d *Database) Close() error {
	if d.Engine == nil {
		return nil
	}
	return d.Engine.Close()
}
