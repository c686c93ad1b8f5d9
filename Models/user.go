package Models

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	gorm.Model
	Username string `gorm:"size:255;not null;unique" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
	Name     string `gorm:"size:255" json:"name"`
	Role     string `gorm:"size:32;not null" json:"role"`
}

func (user *User) PrepareGive() {
	user.Password = ""
}

func (user *User) BeforeSave() error {

	//turn password into hash
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	//remove spaces in username
	user.Username = html.EscapeString(strings.TrimSpace(user.Username))

	return nil
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// Authenticate checks the credentials against the users table. Any mismatch,
// unknown username included, yields the same ErrAuthentication.
func (s *Store) Authenticate(username, password string) (User, error) {
	var user User

	if err := s.DB.Model(User{}).Where("username = ?", username).Take(&user).Error; err != nil {
		return User{}, ErrAuthentication
	}

	if err := VerifyPassword(password, user.Password); err != nil {
		return User{}, ErrAuthentication
	}

	user.PrepareGive()
	return user, nil
}

func (s *Store) GetUserByID(uid uint) (User, error) {
	var user User

	if err := s.DB.First(&user, uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("%w: user %d", ErrNotFound, uid)
		}
		return user, err
	}

	user.PrepareGive()
	return user, nil
}

// RegisterUser creates a staff or admin account with the password hashed at
// rest.
func (s *Store) RegisterUser(username, password, name, role string) (User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return User{}, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if role != RoleAdmin && role != RoleStaff {
		return User{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	var count int64
	if err := s.DB.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return User{}, err
	}
	if count > 0 {
		return User{}, fmt.Errorf("%w: username %q already taken", ErrValidation, username)
	}

	user := User{Username: username, Password: password, Name: name, Role: role}
	if err := user.BeforeSave(); err != nil {
		return User{}, err
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return User{}, err
	}

	user.PrepareGive()
	return user, nil
}
