package database

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"github.com/blast007/wifi-eap-profiles/pkg/profilestore"
)

// ProfileStore implements profilestore.Store on the database
type ProfileStore struct {
	db *Database
}

// Profiles returns the profile store backed by this database
func (d *Database) Profiles() *ProfileStore {
	return &ProfileStore{db: d}
}

// Open checks the database is reachable and returns a connection to it
func (s *ProfileStore) Open() (profilestore.Conn, error) {
	if err := s.db.DB.DB().Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to reach profile database")
	}
	return &profileConn{db: s.db.DB}, nil
}

type profileConn struct {
	db     *gorm.DB
	closed bool
}

func (c *profileConn) check() error {
	if c.closed {
		return errors.New("profile store connection is closed")
	}
	return nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func (c *profileConn) List() ([]profilestore.Record, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	var rows []Profile
	err := c.db.
		Preload("TrustedServerNames", orderByPosition).
		Preload("TrustedCertificates", orderByPosition).
		Order("rowid").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch profiles")
	}

	records := make([]profilestore.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (c *profileConn) Create(props profilestore.Properties) (string, error) {
	if err := c.check(); err != nil {
		return "", err
	}

	row, err := profileFromProperties(props)
	if err != nil {
		return "", err
	}
	row.ID = uuid.New().String()

	if err := c.db.Create(row).Error; err != nil {
		return "", errors.Wrap(err, "failed to create profile")
	}
	return row.ID, nil
}

func (c *profileConn) Remove(id string) error {
	if err := c.check(); err != nil {
		return err
	}

	return c.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", id).Delete(&ProfileServerName{}).Error; err != nil {
			return errors.Wrap(err, "failed to remove trusted server names")
		}
		if err := tx.Where("profile_id = ?", id).Delete(&ProfileCertificate{}).Error; err != nil {
			return errors.Wrap(err, "failed to remove trusted certificates")
		}
		res := tx.Where("id = ?", id).Delete(&Profile{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "failed to remove profile")
		}
		if res.RowsAffected == 0 {
			return profilestore.ErrNotFound
		}
		return nil
	})
}

func (c *profileConn) Close() error {
	c.closed = true
	return nil
}

func (row *Profile) record() (profilestore.Record, error) {
	props := profilestore.Properties{}

	setString := func(key string, value *string) {
		if value != nil {
			props[key] = *value
		}
	}
	setString(profilestore.PropertySSID, row.SSID)
	setString(profilestore.PropertyUserDefinedName, row.UserDefinedName)
	setString(profilestore.PropertyDomainName, row.DomainName)
	setString(profilestore.PropertyOuterIdentity, row.OuterIdentity)
	setString(profilestore.PropertySecurityType, row.SecurityType)
	setString(profilestore.PropertyTTLSInnerAuthentication, row.TTLSInnerAuthentication)

	if row.AcceptEAPTypes != nil {
		codes, err := decodeCodes(*row.AcceptEAPTypes)
		if err != nil {
			return profilestore.Record{}, errors.Wrapf(err, "profile %s", row.ID)
		}
		props[profilestore.PropertyAcceptEAPTypes] = codes
	}
	if row.HasTrustedServerNames {
		names := make([]string, 0, len(row.TrustedServerNames))
		for _, n := range row.TrustedServerNames {
			names = append(names, n.Name)
		}
		props[profilestore.PropertyTLSTrustedServerNames] = names
	}
	if row.HasTrustedCertificates {
		certs := make([][]byte, 0, len(row.TrustedCertificates))
		for _, c := range row.TrustedCertificates {
			certs = append(certs, c.DER)
		}
		props[profilestore.PropertyTLSTrustedCertificates] = certs
	}

	return profilestore.Record{ID: row.ID, Properties: props}, nil
}

func profileFromProperties(props profilestore.Properties) (*Profile, error) {
	row := &Profile{}

	var err error
	fields := []struct {
		key string
		dst **string
	}{
		{profilestore.PropertySSID, &row.SSID},
		{profilestore.PropertyUserDefinedName, &row.UserDefinedName},
		{profilestore.PropertyDomainName, &row.DomainName},
		{profilestore.PropertyOuterIdentity, &row.OuterIdentity},
		{profilestore.PropertySecurityType, &row.SecurityType},
		{profilestore.PropertyTTLSInnerAuthentication, &row.TTLSInnerAuthentication},
	}
	for _, f := range fields {
		if *f.dst, err = stringProperty(props, f.key); err != nil {
			return nil, err
		}
	}

	if v, ok := props[profilestore.PropertyAcceptEAPTypes]; ok {
		codes, ok := v.([]int)
		if !ok {
			return nil, errors.Errorf("property %s has unexpected type %T", profilestore.PropertyAcceptEAPTypes, v)
		}
		encoded := encodeCodes(codes)
		row.AcceptEAPTypes = &encoded
	}
	if v, ok := props[profilestore.PropertyTLSTrustedServerNames]; ok {
		names, ok := v.([]string)
		if !ok {
			return nil, errors.Errorf("property %s has unexpected type %T", profilestore.PropertyTLSTrustedServerNames, v)
		}
		row.HasTrustedServerNames = true
		for i, name := range names {
			row.TrustedServerNames = append(row.TrustedServerNames, ProfileServerName{Position: i, Name: name})
		}
	}
	if v, ok := props[profilestore.PropertyTLSTrustedCertificates]; ok {
		certs, ok := v.([][]byte)
		if !ok {
			return nil, errors.Errorf("property %s has unexpected type %T", profilestore.PropertyTLSTrustedCertificates, v)
		}
		row.HasTrustedCertificates = true
		for i, der := range certs {
			row.TrustedCertificates = append(row.TrustedCertificates, ProfileCertificate{Position: i, DER: der})
		}
	}

	return row, nil
}

func stringProperty(props profilestore.Properties, key string) (*string, error) {
	v, ok := props[key]
	if !ok {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, errors.Errorf("property %s has unexpected type %T", key, v)
	}
	return &s, nil
}

func encodeCodes(codes []int) string {
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, strconv.Itoa(code))
	}
	return strings.Join(parts, ",")
}

func decodeCodes(s string) ([]int, error) {
	codes := []int{}
	if s == "" {
		return codes, nil
	}
	for _, part := range strings.Split(s, ",") {
		code, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid eap type code %q", part)
		}
		codes = append(codes, code)
	}
	return codes, nil
}
