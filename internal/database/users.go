package database

import (
	argon2 "github.com/andskur/argon2-hashing"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// ErrUserExists is returned when adding a username that is already taken
var ErrUserExists = errors.New("user already exists")

// AddUser creates an administrator with an argon2 hash of password
func (d *Database) AddUser(username, password string) error {
	if username == "" || password == "" {
		return errors.New("username and password are required")
	}

	var count int
	if err := d.DB.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to look up user")
	}
	if count > 0 {
		return ErrUserExists
	}

	hash, err := argon2.GenerateFromPassword([]byte(password), argon2.DefaultParams)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	if err := d.DB.Create(&User{Username: username, Password: hash}).Error; err != nil {
		return errors.Wrap(err, "failed to create user")
	}
	return nil
}

// CheckPassword reports whether password matches the stored hash for
// username. Unknown users and wrong passwords return false with no error;
// an error means the hash could not be processed.
func (d *Database) CheckPassword(username, password string) (bool, error) {
	var user User
	err := d.DB.Where("username = ?", username).First(&user).Error
	if gorm.IsRecordNotFoundError(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to look up user")
	}

	err = argon2.CompareHashAndPassword(user.Password, []byte(password))
	switch err {
	case nil:
		return true, nil
	case argon2.ErrMismatchedHashAndPassword:
		return false, nil
	}
	return false, err
}
