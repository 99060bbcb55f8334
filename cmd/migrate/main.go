package main

import (
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"pokersim/pkg/db"
)

func main() {
	if !db.Enabled() {
		logrus.Fatal(db.ErrDisabled)
	}

	waitForDB()
	if err := db.Migrate(); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}

func waitForDB() {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh := func() *sql.DB {
				defer func() { _ = recover() }()
				return db.Instance()
			}()

			if dbh != nil {
				return
			}

			time.Sleep(time.Millisecond * 500)
		}
	}
}
