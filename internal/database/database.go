// Package database is the SQLite backed profile store, trust group service,
// credential store and admin user table.
package database

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	// sqlite3 dialect
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Profile stores one EAP profile. Nullable columns keep unset fields apart
// from empty ones; the Has* flags do the same for the child lists.
type Profile struct {
	ID        string `gorm:"primary_key"`
	CreatedAt time.Time

	SSID            *string `gorm:"column:ssid;index"`
	UserDefinedName *string
	DomainName      *string
	OuterIdentity   *string

	// AcceptEAPTypes holds the comma separated type codes in preference order
	AcceptEAPTypes          *string `gorm:"column:accept_eap_types"`
	SecurityType            *string
	TTLSInnerAuthentication *string `gorm:"column:ttls_inner_authentication"`

	HasTrustedServerNames  bool
	HasTrustedCertificates bool
	TrustedServerNames     []ProfileServerName
	TrustedCertificates    []ProfileCertificate
}

// ProfileServerName is one trusted server name of a profile
type ProfileServerName struct {
	ID        uint   `gorm:"primary_key"`
	ProfileID string `gorm:"index;not null"`
	Position  int
	Name      string
}

// ProfileCertificate is one pinned DER certificate of a profile
type ProfileCertificate struct {
	ID        uint   `gorm:"primary_key"`
	ProfileID string `gorm:"index;not null"`
	Position  int
	DER       []byte `gorm:"column:der"`
}

// TrustGroup stores an application trust group and its anchor
type TrustGroup struct {
	gorm.Model
	Name              *string `gorm:"unique_index"`
	AnchorLabel       *string
	AnchorFingerprint *string
	AnchorDER         []byte `gorm:"column:anchor_der"`
}

// Credential stores the EAP username and password for an SSID
type Credential struct {
	gorm.Model
	SSID     string `gorm:"column:ssid;index;not null"`
	Username string `gorm:"not null"`
	Password string
	Kind     string
	Comment  *string
	Service  string
}

// User is an administrator of the web API
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null"`
	Password []byte
}

// Database wraps the gorm connection shared by every store in this package
type Database struct {
	DB  *gorm.DB
	log *zap.Logger
}

// Open opens (creating if needed) the SQLite database at path and migrates
// the schema. Use ":memory:" for a private in-memory database.
func Open(path string, log *zap.Logger) (*Database, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("database")

	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", path)
	}

	// SQLite allows a single writer; an in-memory database also only exists
	// on the connection that created it.
	db.DB().SetMaxOpenConns(1)

	db.SetLogger(gormLogger{log: log.Sugar()})
	db.LogMode(log.Core().Enabled(zap.DebugLevel))

	err = db.AutoMigrate(
		&Profile{},
		&ProfileServerName{},
		&ProfileCertificate{},
		&TrustGroup{},
		&Credential{},
		&User{},
	).Error
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	log.Info("opened database", zap.String("path", path))
	return &Database{DB: db, log: log}, nil
}

// Close closes the database
func (d *Database) Close() error {
	return d.DB.Close()
}

// gormLogger sends gorm's SQL log to zap at debug level
type gormLogger struct {
	log *zap.SugaredLogger
}

func (l gormLogger) Print(v ...interface{}) {
	l.log.Debug(fmt.Sprint(gorm.LogFormatter(v...)...))
}
