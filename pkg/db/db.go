package db

import (
	"github.com/asdine/storm"
)

// DB is opened by main before any handler runs.
var DB *storm.DB
