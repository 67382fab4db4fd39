package database

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/blast007/wifi-eap-profiles/pkg/eap"
)

// SaveCredential stores c, replacing any credential with the same SSID,
// username, service and kind. Empty Kind and Service get their defaults.
func (d *Database) SaveCredential(c eap.Credential) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Kind == "" {
		c.Kind = eap.DefaultCredentialKind
	}
	if c.Service == "" {
		c.Service = eap.CredentialService(c.SSID)
	}

	err := d.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().
			Where("ssid = ? AND username = ? AND service = ? AND kind = ?", c.SSID, c.Username, c.Service, c.Kind).
			Delete(&Credential{}).Error
		if err != nil {
			return errors.Wrap(err, "failed to remove previous credential")
		}
		return tx.Create(&Credential{
			SSID:     c.SSID,
			Username: c.Username,
			Password: c.Password,
			Kind:     c.Kind,
			Comment:  c.Comment,
			Service:  c.Service,
		}).Error
	})
	if err != nil {
		return errors.Wrapf(err, "failed to save credential for %s", c.SSID)
	}

	d.log.Info("saved credential", zap.String("ssid", c.SSID), zap.String("username", c.Username))
	return nil
}

// Credentials returns the credentials saved for ssid, oldest first
func (d *Database) Credentials(ssid string) ([]eap.Credential, error) {
	var rows []Credential
	if err := d.DB.Where("ssid = ?", ssid).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to fetch credentials for %s", ssid)
	}

	creds := make([]eap.Credential, 0, len(rows))
	for _, row := range rows {
		creds = append(creds, eap.Credential{
			SSID:     row.SSID,
			Username: row.Username,
			Password: row.Password,
			Kind:     row.Kind,
			Comment:  row.Comment,
			Service:  row.Service,
		})
	}
	return creds, nil
}

// DeleteCredentials removes every credential saved for ssid and returns how many there were
func (d *Database) DeleteCredentials(ssid string) (int64, error) {
	res := d.DB.Unscoped().Where("ssid = ?", ssid).Delete(&Credential{})
	if res.Error != nil {
		return 0, errors.Wrapf(res.Error, "failed to delete credentials for %s", ssid)
	}
	return res.RowsAffected, nil
}
